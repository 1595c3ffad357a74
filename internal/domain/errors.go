package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrWalletNotConnected is returned when a state-changing operation is
	// attempted without a signer
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrInvalidAmount is returned when an amount string is not a
	// non-negative decimal representable within the token's precision
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAddress is returned when an address string is not a valid
	// hex address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInsufficientFunds is returned when the caller's token balance is
	// below the requested donation amount
	ErrInsufficientFunds = errors.New("insufficient token balance")

	// ErrInsufficientGas is returned when the caller's native balance is
	// below the minimum needed to pay for gas
	ErrInsufficientGas = errors.New("insufficient native balance for gas")

	// ErrTransactionRejected is returned when the user declines to sign
	ErrTransactionRejected = errors.New("transaction rejected by user")

	// ErrCampaignNotFound is returned when no campaign exists at an address
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrStorage is returned when the metadata store fails; failures are
	// fatal to the calling flow, never retried
	ErrStorage = errors.New("metadata storage error")
)

// ContractRevertedError carries the on-chain revert reason verbatim when the
// client surfaces one.
type ContractRevertedError struct {
	Reason string
}

func (e *ContractRevertedError) Error() string {
	if e.Reason == "" {
		return "transaction reverted"
	}
	return fmt.Sprintf("transaction reverted: %s", e.Reason)
}

// GatewayError is returned for non-success responses from the payment
// gateway. No automatic retry is attempted.
type GatewayError struct {
	StatusCode int
	Status     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error: %d %s", e.StatusCode, e.Status)
}
