package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/verifund-org/verifund-cli/internal/domain"
)

// AnalyzeDescription scores a campaign description without publishing
// anything. Used by the create flow preview and the backend route.
type AnalyzeDescription struct {
	analyzer RiskAnalyzer
	log      *slog.Logger
}

// NewAnalyzeDescription creates a new AnalyzeDescription use case.
func NewAnalyzeDescription(analyzer RiskAnalyzer, log *slog.Logger) *AnalyzeDescription {
	return &AnalyzeDescription{analyzer: analyzer, log: log}
}

// Run sends the description to the scorer. The implementation already
// degrades malformed scorer output into the fixed fallback, so an error
// here means the scorer was unreachable.
func (uc *AnalyzeDescription) Run(ctx context.Context, description string) (*domain.GuardianAnalysis, error) {
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	return uc.analyzer.Analyze(ctx, description)
}
