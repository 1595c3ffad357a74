package guardian

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// Client scores campaign descriptions with a Gemini model. The model is an
// untrusted narrator: anything it returns is parsed strictly, and any
// malformed output collapses to a fixed neutral fallback so the creation
// flow never blocks on scorer quality.
type Client struct {
	cfg  config.GuardianConfig
	http *http.Client
	log  *slog.Logger
}

// NewClient creates a risk-analysis client from the runtime configuration.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg.Guardian,
		http: &http.Client{
			Timeout: 45 * time.Second,
		},
		log: log,
	}
}

const promptTemplate = `You are Guardian, a credibility analyst for crowdfunding campaigns.
Analyze the following campaign description and respond with ONLY a JSON object,
no prose and no markdown, with exactly these fields:
{
  "credibilityScore": <integer 0-100>,
  "riskLevel": "<Low|Medium|High>",
  "summary": "<one or two sentences assessing the campaign>",
  "suggestions": ["<improvement 1>", "<improvement 2>"]
}
Judge clarity of purpose, specificity of fund usage, verifiability of claims,
and signs of urgency manipulation or vagueness.

Campaign description:
%s`

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze scores one description. Transport failures are returned as errors;
// unusable model output is not an error and yields FallbackAnalysis().
func (c *Client) Analyze(ctx context.Context, description string) (*domain.GuardianAnalysis, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, description)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("risk analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("risk analysis service returned %s", resp.Status)
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}

	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		c.log.Warn("risk scorer returned no candidates, using fallback")
		return FallbackAnalysis(), nil
	}

	analysis, err := ParseAnalysis(gen.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		c.log.Warn("risk scorer output unusable, using fallback", "error", err)
		return FallbackAnalysis(), nil
	}
	return analysis, nil
}

// ParseAnalysis validates raw model output into a GuardianAnalysis. Markdown
// code fences around the JSON are tolerated; everything else is strict.
func ParseAnalysis(raw string) (*domain.GuardianAnalysis, error) {
	cleaned := StripCodeFences(raw)

	var analysis domain.GuardianAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}

	if analysis.CredibilityScore < 0 || analysis.CredibilityScore > 100 {
		return nil, fmt.Errorf("credibility score %d out of range", analysis.CredibilityScore)
	}
	switch analysis.RiskLevel {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		return nil, fmt.Errorf("unknown risk level %q", analysis.RiskLevel)
	}
	if analysis.Summary == "" {
		return nil, fmt.Errorf("missing summary")
	}
	if len(analysis.Suggestions) == 0 {
		return nil, fmt.Errorf("missing suggestions")
	}
	return &analysis, nil
}

// StripCodeFences removes a surrounding markdown code fence, with or without
// a json language tag, from model output.
func StripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// FallbackAnalysis is the neutral result used whenever the scorer's output
// cannot be trusted. It is deliberately non-committal.
func FallbackAnalysis() *domain.GuardianAnalysis {
	return &domain.GuardianAnalysis{
		CredibilityScore: 50,
		RiskLevel:        domain.RiskMedium,
		Summary:          "Automated analysis was unavailable for this campaign; exercise normal caution.",
		Suggestions: []string{
			"Provide specific details about how funds will be used",
			"Include verifiable information about the campaign organizer",
		},
	}
}

// Ensure the adapter implements the interface
var _ usecase.RiskAnalyzer = (*Client)(nil)
