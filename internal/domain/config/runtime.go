package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig is the complete resolved configuration, built once per
// process and injected into use cases. There is no module-level mutable
// state; everything callers need travels through this struct.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Chain settings
	Network *Network

	// Contract addresses
	FactoryAddress common.Address
	TokenAddress   common.Address
	BadgeAddress   common.Address // soul-bound verification registry

	// TransferLookbackBlocks bounds the Transfer-event scan used to infer
	// direct donations. Older history is deliberately not scanned; the
	// resulting undercount for long-lived campaigns is a documented
	// boundary, not a bug.
	TransferLookbackBlocks uint64

	// MinGasWei is the native-balance floor checked before submitting any
	// transaction.
	MinGasWei string

	// Signer settings. PrivateKey is read from the environment, never from
	// verifund.toml.
	PrivateKey   string
	KeystorePath string

	// External services
	IDRX     IDRXConfig
	Pinata   PinataConfig
	Guardian GuardianConfig

	// Server settings (verifund serve)
	ListenAddr string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
}

// Network is the chain endpoint configuration.
type Network struct {
	ChainID     uint64 `json:"chainId" toml:"chain_id"`
	Name        string `json:"name" toml:"name"`
	RPCURL      string `json:"rpcUrl" toml:"rpc_url"`
	ExplorerURL string `json:"explorerUrl,omitempty" toml:"explorer_url"`
}

// IDRXConfig holds the fiat-rail gateway settings. APIKey and SecretKey are
// server-held secrets: anything that signs requests must run on a trusted
// backend, never in a browser context.
type IDRXConfig struct {
	BaseURL        string
	APIKey         string
	SecretKey      string
	NetworkChainID string
}

// PinataConfig holds the metadata pinning service settings.
type PinataConfig struct {
	JWT        string
	GatewayURL string
}

// GuardianConfig holds the risk-analysis scorer settings.
type GuardianConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// HasSigner reports whether a signing credential is configured.
func (c *RuntimeConfig) HasSigner() bool {
	return c.PrivateKey != "" || c.KeystorePath != ""
}
