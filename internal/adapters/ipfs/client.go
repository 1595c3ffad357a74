package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

const pinataAPIURL = "https://api.pinata.cloud"

// Client pins campaign metadata and images through Pinata and resolves
// pinned content through the configured gateway. Pinning failures are fatal
// to the calling flow; there is no retry here.
type Client struct {
	cfg  config.PinataConfig
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a pinning client from the runtime configuration.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg.Pinata,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: log,
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// PinJSON pins the metadata document and returns its content hash.
func (c *Client) PinJSON(ctx context.Context, metadata *domain.CampaignMetadata) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"pinataContent": metadata,
		"pinataMetadata": map[string]string{
			"name": "campaign-" + metadata.Name,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode metadata: %v", domain.ErrStorage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pinataAPIURL+"/pinning/pinJSONToIPFS", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)
	req.Header.Set("Content-Type", "application/json")

	hash, err := c.pin(req)
	if err != nil {
		return "", err
	}
	c.log.Debug("metadata pinned", "hash", hash)
	return hash, nil
}

// PinFile pins an arbitrary file (campaign images) and returns both the hash
// and a gateway URL suitable for embedding in metadata.
func (c *Client) PinFile(ctx context.Context, name string, r io.Reader) (string, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", "", fmt.Errorf("%w: failed to read file: %v", domain.ErrStorage, err)
	}
	if err := mw.Close(); err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pinataAPIURL+"/pinning/pinFileToIPFS", &buf)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	hash, err := c.pin(req)
	if err != nil {
		return "", "", err
	}
	c.log.Debug("file pinned", "name", name, "hash", hash)
	return hash, c.gatewayURL(hash), nil
}

// FetchMetadata resolves a pinned metadata document through the gateway.
func (c *Client) FetchMetadata(ctx context.Context, hash string) (*domain.CampaignMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gatewayURL(hash), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gateway unreachable: %v", domain.ErrStorage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway returned %s for %s", domain.ErrStorage, resp.Status, hash)
	}

	var metadata domain.CampaignMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("%w: malformed metadata at %s: %v", domain.ErrStorage, hash, err)
	}
	return &metadata, nil
}

func (c *Client) pin(req *http.Request) (string, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: pinning service unreachable: %v", domain.ErrStorage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: pinning failed with %s: %s", domain.ErrStorage, resp.Status, string(body))
	}

	var result pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: malformed pinning response: %v", domain.ErrStorage, err)
	}
	return result.IpfsHash, nil
}

func (c *Client) gatewayURL(hash string) string {
	return c.cfg.GatewayURL + "/ipfs/" + hash
}

// Ensure the adapter implements the interface
var _ usecase.MetadataStore = (*Client)(nil)
