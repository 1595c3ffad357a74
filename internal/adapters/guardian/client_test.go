package guardian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

func TestParseAnalysis(t *testing.T) {
	valid := `{
		"credibilityScore": 82,
		"riskLevel": "Low",
		"summary": "Clear purpose and verifiable details.",
		"suggestions": ["Add a budget breakdown", "Link the organization's registry entry"]
	}`

	t.Run("plain json", func(t *testing.T) {
		analysis, err := ParseAnalysis(valid)
		require.NoError(t, err)
		assert.Equal(t, 82, analysis.CredibilityScore)
		assert.Equal(t, domain.RiskLow, analysis.RiskLevel)
		assert.Len(t, analysis.Suggestions, 2)
	})

	t.Run("json wrapped in code fences", func(t *testing.T) {
		analysis, err := ParseAnalysis("```json\n" + valid + "\n```")
		require.NoError(t, err)
		assert.Equal(t, 82, analysis.CredibilityScore)

		analysis, err = ParseAnalysis("```\n" + valid + "\n```")
		require.NoError(t, err)
		assert.Equal(t, 82, analysis.CredibilityScore)
	})

	t.Run("rejects malformed output", func(t *testing.T) {
		cases := map[string]string{
			"not json":           "the campaign looks fine to me",
			"score out of range": `{"credibilityScore": 150, "riskLevel": "Low", "summary": "x", "suggestions": ["y"]}`,
			"unknown risk level": `{"credibilityScore": 50, "riskLevel": "Extreme", "summary": "x", "suggestions": ["y"]}`,
			"missing summary":    `{"credibilityScore": 50, "riskLevel": "Low", "suggestions": ["y"]}`,
			"no suggestions":     `{"credibilityScore": 50, "riskLevel": "Low", "summary": "x", "suggestions": []}`,
		}
		for name, raw := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := ParseAnalysis(raw)
				assert.Error(t, err)
			})
		}
	})
}

func TestFallbackAnalysis(t *testing.T) {
	fallback := FallbackAnalysis()
	assert.Equal(t, 50, fallback.CredibilityScore)
	assert.Equal(t, domain.RiskMedium, fallback.RiskLevel)
	assert.NotEmpty(t, fallback.Summary)
	assert.Len(t, fallback.Suggestions, 2)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
}
