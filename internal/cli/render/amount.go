package render

import (
	"math/big"
	"strings"

	"github.com/verifund-org/verifund-cli/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a base-unit amount as a human decimal with thousands
// grouping on the integer part. The fractional part keeps the canonical
// trimmed form.
func FormatAmount(v *big.Int, decimals uint8) string {
	canonical := domain.FormatBaseUnits(v, decimals)

	neg := strings.HasPrefix(canonical, "-")
	canonical = strings.TrimPrefix(canonical, "-")

	intPart, fracPart, hasFrac := strings.Cut(canonical, ".")
	grouped := groupDigits(intPart)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupDigits(digits string) string {
	if n, ok := new(big.Int).SetString(digits, 10); ok && n.IsInt64() {
		return amountPrinter.Sprintf("%d", n.Int64())
	}
	// Past int64 range, group manually.
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	return strings.Join(append([]string{digits}, parts...), ",")
}
