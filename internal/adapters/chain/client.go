package chain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/verifund-org/verifund-cli/internal/domain/config"
)

// Client holds the RPC connection and the bound platform contracts. One
// instance is created per process and shared by the reader and wallet
// adapters; it carries no campaign state of its own.
type Client struct {
	eth *ethclient.Client
	cfg *config.RuntimeConfig
	log *slog.Logger

	factory *bind.BoundContract
	token   *bind.BoundContract
	badge   *bind.BoundContract
}

// NewClient dials the configured RPC endpoint and verifies the chain ID
// matches the selected network.
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured")
	}

	eth, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := eth.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if cfg.Network.ChainID != 0 && networkChainID.Uint64() != cfg.Network.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", cfg.Network.ChainID, networkChainID.Uint64())
	}

	c := &Client{
		eth: eth,
		cfg: cfg,
		log: log,
	}
	c.factory = bind.NewBoundContract(cfg.FactoryAddress, factoryABIParsed, eth, eth, eth)
	c.token = bind.NewBoundContract(cfg.TokenAddress, erc20ABIParsed, eth, eth, eth)
	c.badge = bind.NewBoundContract(cfg.BadgeAddress, badgeABIParsed, eth, eth, eth)

	return c, nil
}

// campaign binds the escrow contract at the given address.
func (c *Client) campaign(address common.Address) *bind.BoundContract {
	return bind.NewBoundContract(address, campaignABIParsed, c.eth, c.eth, c.eth)
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}
