package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
)

// DefaultTransferLookbackBlocks bounds the direct-transfer scan when the
// project config does not override it. Roughly a week of blocks on the
// target chain; older donations made outside the donate path are not
// attributed. Known boundary, documented in verifund.toml.
const DefaultTransferLookbackBlocks uint64 = 50_000

// DefaultMinGasWei is 0.00001 native tokens, the floor the donation
// pre-flight check enforces before submitting anything.
const DefaultMinGasWei = "10000000000000"

// Provider creates the RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// Secrets come from the environment; a project-local .env is loaded
	// when present but never committed values in verifund.toml.
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	fileCfg, err := LoadVerifundConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	network, err := fileCfg.ResolveNetwork(v.GetString("network"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:            projectRoot,
		Network:                network,
		TransferLookbackBlocks: fileCfg.Donations.TransferLookbackBlocks,
		MinGasWei:              fileCfg.Donations.MinGasWei,
		ListenAddr:             fileCfg.Server.Listen,
		Debug:                  v.GetBool("debug"),
		NonInteractive:         v.GetBool("non_interactive"),
		JSON:                   v.GetBool("json"),
		Timeout:                v.GetDuration("timeout"),

		PrivateKey:   os.Getenv("VERIFUND_PRIVATE_KEY"),
		KeystorePath: os.Getenv("VERIFUND_KEYSTORE"),

		IDRX: config.IDRXConfig{
			BaseURL:        os.Getenv("IDRX_BASE_URL"),
			APIKey:         os.Getenv("IDRX_API_KEY"),
			SecretKey:      os.Getenv("IDRX_SECRET_KEY"),
			NetworkChainID: os.Getenv("IDRX_NETWORK_CHAIN_ID"),
		},
		Pinata: config.PinataConfig{
			JWT:        os.Getenv("PINATA_JWT"),
			GatewayURL: envOr("PINATA_GATEWAY_URL", "https://gateway.pinata.cloud"),
		},
		Guardian: config.GuardianConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   envOr("GEMINI_MODEL", "gemini-1.5-flash-latest"),
			BaseURL: envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
	}

	if cfg.TransferLookbackBlocks == 0 {
		cfg.TransferLookbackBlocks = DefaultTransferLookbackBlocks
	}
	if cfg.MinGasWei == "" {
		cfg.MinGasWei = DefaultMinGasWei
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8787"
	}

	if err := resolveContracts(cfg, fileCfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolveContracts(cfg *config.RuntimeConfig, fileCfg *VerifundConfig) error {
	for _, c := range []struct {
		name string
		raw  string
		dst  *common.Address
	}{
		{"factory", fileCfg.Contracts.Factory, &cfg.FactoryAddress},
		{"token", fileCfg.Contracts.Token, &cfg.TokenAddress},
		{"badge", fileCfg.Contracts.Badge, &cfg.BadgeAddress},
	} {
		if c.raw == "" {
			return fmt.Errorf("contracts.%s missing in verifund.toml", c.name)
		}
		if !common.IsHexAddress(c.raw) {
			return fmt.Errorf("contracts.%s: %q is not a valid address", c.name, c.raw)
		}
		*c.dst = common.HexToAddress(c.raw)
	}
	return nil
}

// FindProjectRoot walks up from the working directory until it finds
// verifund.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "verifund.toml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a verifund project (verifund.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance bound to the command's
// flags.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".verifund"))

	v.SetEnvPrefix("VERIFUND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
