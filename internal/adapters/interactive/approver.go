package interactive

import (
	"errors"

	"github.com/manifoldco/promptui"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// PromptApprover asks for confirmation before a transaction is signed.
type PromptApprover struct{}

// NewPromptApprover creates the interactive transaction approver.
func NewPromptApprover() *PromptApprover {
	return &PromptApprover{}
}

// ApproveTransaction prompts y/N. Anything but an explicit yes rejects.
func (a *PromptApprover) ApproveTransaction(summary string) error {
	prompt := promptui.Prompt{
		Label:     "Sign and send: " + summary,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return domain.ErrTransactionRejected
		}
		return err
	}
	return nil
}

// AutoApprover approves everything. Used in non-interactive mode and by the
// HTTP server, where there is no terminal to prompt on.
type AutoApprover struct{}

// NewAutoApprover creates the pass-through approver.
func NewAutoApprover() *AutoApprover {
	return &AutoApprover{}
}

func (AutoApprover) ApproveTransaction(string) error { return nil }

var (
	_ usecase.TxApprover = (*PromptApprover)(nil)
	_ usecase.TxApprover = (*AutoApprover)(nil)
)
