package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
)

// VerifundConfig mirrors verifund.toml, the project-level configuration
// file. Secrets never live here; they come from the environment.
type VerifundConfig struct {
	DefaultNetwork string                     `toml:"default_network"`
	Networks       map[string]*config.Network `toml:"networks"`
	Contracts      ContractsConfig            `toml:"contracts"`
	Donations      DonationsConfig            `toml:"donations"`
	Server         ServerConfig               `toml:"server"`
}

// ContractsConfig holds the deployed platform contract addresses.
type ContractsConfig struct {
	Factory string `toml:"factory"`
	Token   string `toml:"token"`
	Badge   string `toml:"badge"`
}

// DonationsConfig tunes donation-related behavior.
type DonationsConfig struct {
	// TransferLookbackBlocks bounds the Transfer-event scan for direct
	// donations. 0 means the default.
	TransferLookbackBlocks uint64 `toml:"transfer_lookback_blocks"`
	// MinGasWei is the native balance floor for pre-flight gas checks.
	MinGasWei string `toml:"min_gas_wei"`
}

// ServerConfig configures `verifund serve`.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// LoadVerifundConfig reads verifund.toml from the project root.
func LoadVerifundConfig(projectRoot string) (*VerifundConfig, error) {
	path := filepath.Join(projectRoot, "verifund.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &VerifundConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read verifund.toml: %w", err)
	}

	var cfg VerifundConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse verifund.toml: %w", err)
	}

	return &cfg, nil
}

// ResolveNetwork picks the named network, falling back to the configured
// default.
func (c *VerifundConfig) ResolveNetwork(name string) (*config.Network, error) {
	if name == "" {
		name = c.DefaultNetwork
	}
	if name == "" {
		return nil, fmt.Errorf("no network specified and no default_network in verifund.toml")
	}
	network, ok := c.Networks[name]
	if !ok {
		return nil, fmt.Errorf("network %q not found in verifund.toml", name)
	}
	if network.Name == "" {
		network.Name = name
	}
	return network, nil
}
