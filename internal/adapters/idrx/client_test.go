package idrx_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/adapters/idrx"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

const testSecret = "dmVyaWZ1bmQtdGVzdC1zZWNyZXQtMDEyMzQ1Njc4OQ=="

func testClient(baseURL string) *idrx.Client {
	cfg := &config.RuntimeConfig{
		IDRX: config.IDRXConfig{
			BaseURL:        baseURL,
			APIKey:         "test-key",
			SecretKey:      testSecret,
			NetworkChainID: "4202",
		},
	}
	return idrx.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateMintRequest(t *testing.T) {
	destination := common.HexToAddress("0x1111111111111111111111111111111111111111")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/mint-request", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("idrx-api-key"))
		assert.NotEmpty(t, r.Header.Get("idrx-api-sig"))
		assert.NotEmpty(t, r.Header.Get("idrx-api-ts"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "100", payload["toBeMinted"])
		assert.Equal(t, destination.Hex(), payload["destinationWalletAddress"])
		assert.Equal(t, float64(24), payload["expiryPeriod"])
		assert.Equal(t, "4202", payload["networkChainId"])
		assert.Equal(t, "donation", payload["requestType"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"statusCode": 201,
			"message": "success",
			"data": {"reference": "INV-42", "paymentUrl": "https://pay.example/INV-42", "toBeMinted": "100"}
		}`))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).CreateMintRequest(context.Background(), "100", destination, 24)
	require.NoError(t, err)
	assert.Equal(t, "INV-42", result.Reference)
	assert.Equal(t, "https://pay.example/INV-42", result.PaymentURL)
	assert.Equal(t, "100", result.Amount)
}

func TestTransactionHistory(t *testing.T) {
	t.Run("query parameters are forwarded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/user-transaction-history", r.URL.Path)
			assert.Equal(t, "MINT", r.URL.Query().Get("transactionType"))
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "5", r.URL.Query().Get("take"))

			_, _ = w.Write([]byte(`{
				"statusCode": 200,
				"message": "success",
				"data": {"records": [{"reference": "INV-1", "paymentStatus": "PAID"}]}
			}`))
		}))
		defer srv.Close()

		records, err := testClient(srv.URL).TransactionHistory(context.Background(), usecase.HistoryParams{
			TransactionType: "MINT",
			Page:            2,
			Take:            5,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "INV-1", records[0].Reference)
		assert.Equal(t, domain.PaymentPaid, records[0].PaymentStatus)
	})

	t.Run("non-success status becomes a gateway error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := testClient(srv.URL).TransactionHistory(context.Background(), usecase.HistoryParams{})
		var gatewayErr *domain.GatewayError
		require.ErrorAs(t, err, &gatewayErr)
		assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)
	})
}
