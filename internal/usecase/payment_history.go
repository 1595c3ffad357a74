package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

// PaymentHistoryParams selects which gateway records to fetch. Exactly one
// of Reference/Campaign may be set; with neither, a paged general listing
// is returned, newest first.
type PaymentHistoryParams struct {
	Reference string
	Campaign  *common.Address
	Page      int
	Take      int
}

// PaymentHistoryResult contains the matched gateway records.
type PaymentHistoryResult struct {
	Records []domain.PaymentRequest
}

// PaymentHistory queries the gateway's mint-request ledger. The gateway has
// no destination-address filter, so campaign scoping is a client-side
// post-filter over the fetched page.
type PaymentHistory struct {
	gateway PaymentGateway
	log     *slog.Logger
}

// NewPaymentHistory creates a new PaymentHistory use case.
func NewPaymentHistory(gateway PaymentGateway, log *slog.Logger) *PaymentHistory {
	return &PaymentHistory{gateway: gateway, log: log}
}

// Run fetches the matching records.
func (uc *PaymentHistory) Run(ctx context.Context, params PaymentHistoryParams) (*PaymentHistoryResult, error) {
	page, take := params.Page, params.Take
	if page <= 0 {
		page = 1
	}
	if take <= 0 {
		take = 10
	}

	if params.Reference != "" {
		records, err := uc.gateway.TransactionHistory(ctx, HistoryParams{
			TransactionType: "MINT",
			Page:            1,
			Take:            1,
			Reference:       params.Reference,
		})
		if err != nil {
			return nil, err
		}
		return &PaymentHistoryResult{Records: records}, nil
	}

	records, err := uc.gateway.TransactionHistory(ctx, HistoryParams{
		TransactionType: "MINT",
		Page:            page,
		Take:            take,
		OrderByDate:     "DESC",
	})
	if err != nil {
		return nil, err
	}

	if params.Campaign != nil {
		want := strings.ToLower(params.Campaign.Hex())
		records = lo.Filter(records, func(r domain.PaymentRequest, _ int) bool {
			return strings.ToLower(r.DestinationWalletAddress) == want
		})
	}

	return &PaymentHistoryResult{Records: records}, nil
}
