package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// PaymentsRenderer renders payment-gateway records.
type PaymentsRenderer struct {
	out io.Writer
}

// NewPaymentsRenderer creates a new payments renderer.
func NewPaymentsRenderer(out io.Writer) *PaymentsRenderer {
	return &PaymentsRenderer{out: out}
}

// RenderMintRequest renders a freshly created mint request.
func (r *PaymentsRenderer) RenderMintRequest(result *domain.MintRequestResult) error {
	fmt.Fprintln(r.out, FormatSuccess("Payment request created"))
	fmt.Fprintf(r.out, "  Reference:  %s\n", result.Reference)
	fmt.Fprintf(r.out, "  Amount:     %s\n", result.Amount)
	fmt.Fprintf(r.out, "  Pay at:     %s\n", txHashStyle.Sprint(result.PaymentURL))
	fmt.Fprintln(r.out, addressStyle.Sprint("  Tokens are minted to the campaign once the payment settles."))
	return nil
}

// RenderHistory renders the record listing.
func (r *PaymentsRenderer) RenderHistory(result *usecase.PaymentHistoryResult) error {
	if len(result.Records) == 0 {
		fmt.Fprintln(r.out, "No payment records found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Reference", "Amount", "Payment", "Mint", "Campaign", "Created"})

	for _, rec := range result.Records {
		t.AppendRow(table.Row{
			rec.Reference,
			rec.ToBeMinted,
			paymentStatusLabel(rec.PaymentStatus),
			mintStatusLabel(rec.UserMintStatus),
			shortAddress(rec.DestinationWalletAddress),
			rec.CreatedAt,
		})
	}

	t.Render()
	return nil
}

func paymentStatusLabel(s domain.PaymentStatus) string {
	switch s {
	case domain.PaymentPaid:
		return verifiedStyle.Sprint(string(s))
	case domain.PaymentExpired:
		return failedStyle.Sprint(string(s))
	default:
		return warnStyle.Sprint(string(s))
	}
}

func mintStatusLabel(s domain.MintStatus) string {
	switch s {
	case domain.MintMinted:
		return verifiedStyle.Sprint(string(s))
	case domain.MintFailed, domain.MintRejected:
		return failedStyle.Sprint(string(s))
	case domain.MintProcessing:
		return warnStyle.Sprint(string(s))
	default:
		return addressStyle.Sprint(string(s))
	}
}
