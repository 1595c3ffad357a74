package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// WalletAdapter implements usecase.Wallet. It signs with a single local key,
// submits through the shared client, and blocks until each transaction is
// mined so callers can sequence dependent steps safely.
type WalletAdapter struct {
	*Client
	key      *ecdsa.PrivateKey
	from     common.Address
	chainID  *big.Int
	approver usecase.TxApprover
	log      *slog.Logger
}

// NewWalletAdapter builds the write adapter. A missing signer is not an
// error: the adapter reports Connected() == false and every write returns
// domain.ErrWalletNotConnected, so read-only commands still work.
func NewWalletAdapter(client *Client, approver usecase.TxApprover, log *slog.Logger) (*WalletAdapter, error) {
	w := &WalletAdapter{
		Client:   client,
		approver: approver,
		log:      log,
	}

	key, err := loadSigner(client.cfg.PrivateKey, client.cfg.KeystorePath)
	if err != nil {
		return nil, err
	}
	if key != nil {
		w.key = key
		w.from = crypto.PubkeyToAddress(key.PublicKey)
		w.chainID = new(big.Int).SetUint64(client.cfg.Network.ChainID)
		log.Debug("wallet connected", "address", w.from.Hex())
	}

	return w, nil
}

func loadSigner(privateKey, keystorePath string) (*ecdsa.PrivateKey, error) {
	if privateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return key, nil
	}
	if keystorePath != "" {
		raw, err := os.ReadFile(keystorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read keystore: %w", err)
		}
		decrypted, err := keystore.DecryptKey(raw, os.Getenv("VERIFUND_KEYSTORE_PASSWORD"))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
		}
		return decrypted.PrivateKey, nil
	}
	return nil, nil
}

func (w *WalletAdapter) Connected() bool {
	return w.key != nil
}

func (w *WalletAdapter) Address() (common.Address, error) {
	if w.key == nil {
		return common.Address{}, domain.ErrWalletNotConnected
	}
	return w.from, nil
}

// transact confirms, signs, submits, and waits for one transaction. Dependent
// calls (reset allowance, approve, donate) rely on this blocking behavior.
func (w *WalletAdapter) transact(ctx context.Context, contract *bind.BoundContract, summary, method string, args ...interface{}) (common.Hash, error) {
	if w.key == nil {
		return common.Hash{}, domain.ErrWalletNotConnected
	}
	if w.approver != nil {
		if err := w.approver.ApproveTransaction(summary); err != nil {
			return common.Hash{}, err
		}
	}

	opts, err := bind.NewKeyedTransactorWithChainID(w.key, w.chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to build transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return common.Hash{}, mapSendError(err)
	}
	w.log.Debug("transaction submitted", "method", method, "hash", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, w.eth, tx)
	if err != nil {
		return tx.Hash(), fmt.Errorf("failed waiting for transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return tx.Hash(), &domain.ContractRevertedError{Reason: method + " reverted on-chain"}
	}

	w.log.Debug("transaction mined", "method", method, "hash", tx.Hash().Hex(), "block", receipt.BlockNumber)
	return tx.Hash(), nil
}

// mapSendError normalizes RPC submission failures into domain errors. Geth
// and most providers prefix simulation failures with "execution reverted".
func mapSendError(err error) error {
	msg := err.Error()
	if idx := strings.Index(msg, "execution reverted"); idx >= 0 {
		reason := strings.TrimPrefix(msg[idx:], "execution reverted")
		reason = strings.TrimLeft(reason, ": ")
		return &domain.ContractRevertedError{Reason: reason}
	}
	if strings.Contains(msg, "insufficient funds") {
		return domain.ErrInsufficientGas
	}
	return fmt.Errorf("failed to send transaction: %w", err)
}

func (w *WalletAdapter) CreateCampaign(ctx context.Context, name string, target *big.Int, durationSec uint64, ipfsHash string) (common.Hash, error) {
	summary := fmt.Sprintf("create campaign %q", name)
	return w.transact(ctx, w.factory, summary, "createCampaign", name, target, new(big.Int).SetUint64(durationSec), ipfsHash)
}

func (w *WalletAdapter) Approve(ctx context.Context, spender common.Address, amount *big.Int) (common.Hash, error) {
	summary := fmt.Sprintf("approve %s to spend %s base units", spender.Hex(), amount)
	return w.transact(ctx, w.token, summary, "approve", spender, amount)
}

func (w *WalletAdapter) Donate(ctx context.Context, campaign common.Address, amount *big.Int) (common.Hash, error) {
	summary := fmt.Sprintf("donate %s base units to %s", amount, campaign.Hex())
	return w.transact(ctx, w.campaign(campaign), summary, "donate", amount)
}

func (w *WalletAdapter) Withdraw(ctx context.Context, campaign common.Address) (common.Hash, error) {
	summary := fmt.Sprintf("withdraw funds from %s", campaign.Hex())
	return w.transact(ctx, w.campaign(campaign), summary, "withdraw")
}

func (w *WalletAdapter) Refund(ctx context.Context, campaign common.Address) (common.Hash, error) {
	summary := fmt.Sprintf("claim refund from %s", campaign.Hex())
	return w.transact(ctx, w.campaign(campaign), summary, "refund")
}

func (w *WalletAdapter) UpdatePeakBalance(ctx context.Context, campaign common.Address) (common.Hash, error) {
	summary := fmt.Sprintf("checkpoint peak balance of %s", campaign.Hex())
	return w.transact(ctx, w.campaign(campaign), summary, "updatePeakBalance")
}

func (w *WalletAdapter) SyncIDRXDonations(ctx context.Context, campaign common.Address) (common.Hash, error) {
	summary := fmt.Sprintf("sync gateway donations on %s", campaign.Hex())
	return w.transact(ctx, w.campaign(campaign), summary, "syncIDRXDonations")
}

// Ensure the adapter implements the interface
var _ usecase.Wallet = (*WalletAdapter)(nil)
