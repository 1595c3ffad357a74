//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/verifund-org/verifund-cli/internal/adapters/chain"
	"github.com/verifund-org/verifund-cli/internal/adapters/guardian"
	"github.com/verifund-org/verifund-cli/internal/adapters/idrx"
	"github.com/verifund-org/verifund-cli/internal/adapters/interactive"
	"github.com/verifund-org/verifund-cli/internal/adapters/ipfs"
	"github.com/verifund-org/verifund-cli/internal/config"
	"github.com/verifund-org/verifund-cli/internal/logging"
	"github.com/verifund-org/verifund-cli/internal/server"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// InitApp creates a fully wired App instance.
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.NewLogger,

		// Adapters
		chain.NewClient,
		chain.NewReaderAdapter,
		chain.NewWalletAdapter,
		idrx.NewClient,
		ipfs.NewClient,
		guardian.NewClient,
		interactive.NewCampaignPicker,
		ProvideApprover,
		ProvideMinGasWei,

		// Port bindings
		wire.Bind(new(usecase.ChainReader), new(*chain.ReaderAdapter)),
		wire.Bind(new(usecase.Wallet), new(*chain.WalletAdapter)),
		wire.Bind(new(usecase.PaymentGateway), new(*idrx.Client)),
		wire.Bind(new(usecase.MetadataStore), new(*ipfs.Client)),
		wire.Bind(new(usecase.RiskAnalyzer), new(*guardian.Client)),
		wire.Bind(new(usecase.CampaignSelector), new(*interactive.CampaignPicker)),

		// Use cases
		usecase.NewListCampaigns,
		usecase.NewGetCampaign,
		usecase.NewCreateCampaign,
		usecase.NewDonate,
		usecase.NewWithdraw,
		usecase.NewRefund,
		usecase.NewUpdatePeakBalance,
		usecase.NewSyncDonations,
		usecase.NewRequestPayment,
		usecase.NewPaymentHistory,
		usecase.NewAnalyzeDescription,
		usecase.NewBalances,

		// Server
		server.NewServer,

		// App
		NewApp,
	)
	return nil, nil
}
