package render

import (
	"github.com/fatih/color"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// Color styles shared across the renderers.
var (
	headerStyle       = color.New(color.Bold, color.FgHiWhite)
	addressStyle      = color.New(color.Faint)
	activeStyle       = color.New(color.FgGreen)
	successfulStyle   = color.New(color.FgCyan)
	failedStyle       = color.New(color.FgRed)
	verifiedStyle     = color.New(color.FgGreen)
	notVerifiedStyle  = color.New(color.Faint)
	amountStyle       = color.New(color.Bold)
	warnStyle         = color.New(color.FgYellow)
	riskLowStyle      = color.New(color.FgGreen)
	riskMediumStyle   = color.New(color.FgYellow)
	riskHighStyle     = color.New(color.FgRed)
	txHashStyle       = color.New(color.FgCyan)
	suggestionStyle   = color.New(color.Faint)
	sectionTitleStyle = color.New(color.Bold)
)

// StatusLabel renders a campaign status with its color.
func StatusLabel(status domain.CampaignStatus) string {
	switch status {
	case domain.StatusActive:
		return activeStyle.Sprint("Active")
	case domain.StatusSuccessful:
		return successfulStyle.Sprint("Successful")
	default:
		return failedStyle.Sprint("Failed")
	}
}

// RiskLabel renders a risk level with its color.
func RiskLabel(level domain.RiskLevel) string {
	switch level {
	case domain.RiskLow:
		return riskLowStyle.Sprint("Low")
	case domain.RiskHigh:
		return riskHighStyle.Sprint("High")
	default:
		return riskMediumStyle.Sprint("Medium")
	}
}

// FormatError formats an error message with the error icon.
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("✗ %s", message)
}

// FormatSuccess formats a success message with the success icon.
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✓ %s", message)
}

// FormatWarning formats a warning message with the warning icon.
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠ %s", message)
}
