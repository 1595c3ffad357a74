package idrx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// Client talks to the IDRX fiat-to-token gateway. Every request carries the
// API key plus a per-request HMAC signature and timestamp; the gateway owns
// all payment and mint state, this client only creates and reads records.
type Client struct {
	cfg  config.IDRXConfig
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a gateway client from the runtime configuration.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg.IDRX,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type mintRequestPayload struct {
	ToBeMinted               string `json:"toBeMinted"`
	DestinationWalletAddress string `json:"destinationWalletAddress"`
	ExpiryPeriod             int    `json:"expiryPeriod"`
	NetworkChainID           string `json:"networkChainId"`
	RequestType              string `json:"requestType"`
}

type mintRequestResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       struct {
		Reference  string `json:"reference"`
		PaymentURL string `json:"paymentUrl"`
		ToBeMinted string `json:"toBeMinted"`
	} `json:"data"`
}

type historyResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       struct {
		Records []domain.PaymentRequest `json:"records"`
	} `json:"data"`
}

// CreateMintRequest opens a payment request for the given token amount. The
// returned payment URL is where the payer settles the fiat leg; minting to
// the destination address happens gateway-side after payment.
func (c *Client) CreateMintRequest(ctx context.Context, amount string, destination common.Address, ttlHours int) (*domain.MintRequestResult, error) {
	payload := mintRequestPayload{
		ToBeMinted:               amount,
		DestinationWalletAddress: destination.Hex(),
		ExpiryPeriod:             ttlHours,
		NetworkChainID:           c.cfg.NetworkChainID,
		RequestType:              "donation",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mint request: %w", err)
	}

	var resp mintRequestResponse
	if err := c.do(ctx, http.MethodPost, "/transaction/mint-request", body, &resp); err != nil {
		return nil, err
	}

	return &domain.MintRequestResult{
		PaymentURL: resp.Data.PaymentURL,
		Reference:  resp.Data.Reference,
		Amount:     resp.Data.ToBeMinted,
	}, nil
}

// TransactionHistory queries the gateway's transaction records for the
// configured API key. Filtering beyond what the query parameters support is
// the caller's job.
func (c *Client) TransactionHistory(ctx context.Context, params usecase.HistoryParams) ([]domain.PaymentRequest, error) {
	q := url.Values{}
	if params.TransactionType != "" {
		q.Set("transactionType", params.TransactionType)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Take > 0 {
		q.Set("take", strconv.Itoa(params.Take))
	}
	if params.UserMintStatus != "" {
		q.Set("userMintStatus", string(params.UserMintStatus))
	}
	if params.PaymentStatus != "" {
		q.Set("paymentStatus", string(params.PaymentStatus))
	}
	if params.MerchantOrderID != "" {
		q.Set("merchantOrderId", params.MerchantOrderID)
	}
	if params.Reference != "" {
		q.Set("reference", params.Reference)
	}
	if params.TxHash != "" {
		q.Set("txHash", params.TxHash)
	}
	if params.OrderByDate != "" {
		q.Set("orderByDate", params.OrderByDate)
	}

	path := "/transaction/user-transaction-history"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Records, nil
}

// do signs and executes one request. The signature covers the timestamp,
// method, path including query, and the body when present.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	timestamp := GenerateTimestamp()
	sig, err := CreateSignature(method, path, string(body), timestamp, c.cfg.SecretKey)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("idrx-api-key", c.cfg.APIKey)
	req.Header.Set("idrx-api-sig", sig)
	req.Header.Set("idrx-api-ts", timestamp)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("gateway request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.GatewayError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.PaymentGateway = (*Client)(nil)
