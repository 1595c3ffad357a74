package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/server"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

type stubAnalyzer struct {
	analysis *domain.GuardianAnalysis
	err      error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, description string) (*domain.GuardianAnalysis, error) {
	return s.analysis, s.err
}

type stubGateway struct {
	result  *domain.MintRequestResult
	records []domain.PaymentRequest
	err     error
}

func (s *stubGateway) CreateMintRequest(ctx context.Context, amount string, destination common.Address, ttlHours int) (*domain.MintRequestResult, error) {
	return s.result, s.err
}

func (s *stubGateway) TransactionHistory(ctx context.Context, params usecase.HistoryParams) ([]domain.PaymentRequest, error) {
	return s.records, s.err
}

type stubStore struct {
	hash string
	url  string
	err  error
}

func (s *stubStore) PinJSON(ctx context.Context, metadata *domain.CampaignMetadata) (string, error) {
	return s.hash, s.err
}

func (s *stubStore) PinFile(ctx context.Context, name string, r io.Reader) (string, string, error) {
	return s.hash, s.url, s.err
}

func (s *stubStore) FetchMetadata(ctx context.Context, hash string) (*domain.CampaignMetadata, error) {
	return nil, s.err
}

func testRouter(analyzer usecase.RiskAnalyzer, gateway usecase.PaymentGateway, store usecase.MetadataStore) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.RuntimeConfig{ListenAddr: ":0"}

	srv := server.NewServer(
		cfg,
		log,
		usecase.NewAnalyzeDescription(analyzer, log),
		usecase.NewRequestPayment(gateway, log),
		usecase.NewPaymentHistory(gateway, log),
		store,
	)
	return srv.Router()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGuardianRoute(t *testing.T) {
	t.Run("missing description is a 400", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{})
		rec := doJSON(t, router, http.MethodPost, "/api/guardian", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns the analysis", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{analysis: &domain.GuardianAnalysis{
			CredibilityScore: 70,
			RiskLevel:        domain.RiskLow,
			Summary:          "ok",
			Suggestions:      []string{"s1", "s2"},
		}}, &stubGateway{}, &stubStore{})

		rec := doJSON(t, router, http.MethodPost, "/api/guardian", map[string]string{"description": "A detailed plan..."})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"credibilityScore":70`)
	})

	t.Run("scorer transport failure is a 500", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{err: errors.New("unreachable")}, &stubGateway{}, &stubStore{})
		rec := doJSON(t, router, http.MethodPost, "/api/guardian", map[string]string{"description": "x"})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMintRequestRoute(t *testing.T) {
	campaign := "0x1111111111111111111111111111111111111111"

	t.Run("missing fields are a 400", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{})

		rec := doJSON(t, router, http.MethodPost, "/api/idrx/mint-request", map[string]string{"amount": "100"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/idrx/mint-request", map[string]string{"campaignAddress": campaign})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid address is a 400", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{})
		rec := doJSON(t, router, http.MethodPost, "/api/idrx/mint-request", map[string]string{
			"amount":          "100",
			"campaignAddress": "not-an-address",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("creates the request", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{result: &domain.MintRequestResult{
			PaymentURL: "https://pay.example/INV-1",
			Reference:  "INV-1",
			Amount:     "100",
		}}, &stubStore{})

		rec := doJSON(t, router, http.MethodPost, "/api/idrx/mint-request", map[string]string{
			"amount":          "100",
			"campaignAddress": campaign,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "INV-1")
	})
}

func TestUploadMetadataRoute(t *testing.T) {
	t.Run("incomplete metadata is a 400", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{})
		rec := doJSON(t, router, http.MethodPost, "/api/ipfs/upload-metadata", map[string]string{"name": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pins and returns the hash", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{hash: "QmPinned"})
		rec := doJSON(t, router, http.MethodPost, "/api/ipfs/upload-metadata", map[string]string{
			"name":        "Well Fund",
			"description": "Dig three wells",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "QmPinned")
	})
}

func TestUploadImageRoute(t *testing.T) {
	t.Run("missing file is a 400", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{})
		req := httptest.NewRequest(http.MethodPost, "/api/ipfs/upload-image", strings.NewReader(""))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pins the uploaded file", func(t *testing.T) {
		router := testRouter(&stubAnalyzer{}, &stubGateway{}, &stubStore{hash: "QmImage", url: "https://gw/ipfs/QmImage"})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", "well.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/ipfs/upload-image", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "QmImage")
	})
}
