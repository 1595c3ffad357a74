package app

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/verifund-org/verifund-cli/internal/adapters/chain"
	"github.com/verifund-org/verifund-cli/internal/adapters/interactive"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
	"github.com/verifund-org/verifund-cli/internal/server"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// App is the main application container that holds all use cases.
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Shared dependencies
	Chain    *chain.Client
	Wallet   usecase.Wallet
	Selector usecase.CampaignSelector

	// Use cases
	ListCampaigns      *usecase.ListCampaigns
	GetCampaign        *usecase.GetCampaign
	CreateCampaign     *usecase.CreateCampaign
	Donate             *usecase.Donate
	Withdraw           *usecase.Withdraw
	Refund             *usecase.Refund
	UpdatePeakBalance  *usecase.UpdatePeakBalance
	SyncDonations      *usecase.SyncDonations
	RequestPayment     *usecase.RequestPayment
	PaymentHistory     *usecase.PaymentHistory
	AnalyzeDescription *usecase.AnalyzeDescription
	Balances           *usecase.Balances

	// Server (verifund serve)
	Server *server.Server
}

// NewApp creates a new application instance with all use cases.
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	chainClient *chain.Client,
	wallet usecase.Wallet,
	selector usecase.CampaignSelector,
	listCampaigns *usecase.ListCampaigns,
	getCampaign *usecase.GetCampaign,
	createCampaign *usecase.CreateCampaign,
	donate *usecase.Donate,
	withdraw *usecase.Withdraw,
	refund *usecase.Refund,
	updatePeakBalance *usecase.UpdatePeakBalance,
	syncDonations *usecase.SyncDonations,
	requestPayment *usecase.RequestPayment,
	paymentHistory *usecase.PaymentHistory,
	analyzeDescription *usecase.AnalyzeDescription,
	balances *usecase.Balances,
	srv *server.Server,
) (*App, error) {
	return &App{
		Config:             cfg,
		Logger:             log,
		Chain:              chainClient,
		Wallet:             wallet,
		Selector:           selector,
		ListCampaigns:      listCampaigns,
		GetCampaign:        getCampaign,
		CreateCampaign:     createCampaign,
		Donate:             donate,
		Withdraw:           withdraw,
		Refund:             refund,
		UpdatePeakBalance:  updatePeakBalance,
		SyncDonations:      syncDonations,
		RequestPayment:     requestPayment,
		PaymentHistory:     paymentHistory,
		AnalyzeDescription: analyzeDescription,
		Balances:           balances,
		Server:             srv,
	}, nil
}

// Close releases shared resources.
func (a *App) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
}

// ProvideApprover picks the transaction approver: interactive confirmation
// by default, pass-through when prompts are disabled.
func ProvideApprover(cfg *config.RuntimeConfig) usecase.TxApprover {
	if cfg.NonInteractive {
		return interactive.NewAutoApprover()
	}
	return interactive.NewPromptApprover()
}

// ProvideMinGasWei parses the configured native-balance floor.
func ProvideMinGasWei(cfg *config.RuntimeConfig) (*big.Int, error) {
	floor, ok := new(big.Int).SetString(cfg.MinGasWei, 10)
	if !ok || floor.Sign() < 0 {
		return nil, fmt.Errorf("invalid min_gas_wei %q", cfg.MinGasWei)
	}
	return floor, nil
}
