package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/verifund-org/verifund-cli/internal/domain"
	"github.com/verifund-org/verifund-cli/internal/usecase"
)

// CampaignPicker lets the user pick a campaign from a list when a command
// needs an address and none was supplied on the command line.
type CampaignPicker struct{}

// NewCampaignPicker creates the interactive campaign selector.
func NewCampaignPicker() *CampaignPicker {
	return &CampaignPicker{}
}

// SelectCampaign shows a fuzzy-searchable list of campaigns. A single
// candidate is returned directly without prompting.
func (p *CampaignPicker) SelectCampaign(_ context.Context, campaigns []*domain.Campaign, prompt string) (*domain.Campaign, error) {
	if len(campaigns) == 0 {
		return nil, domain.ErrCampaignNotFound
	}
	if len(campaigns) == 1 {
		return campaigns[0], nil
	}

	options := make([]string, len(campaigns))
	for i, c := range campaigns {
		options[i] = fmt.Sprintf("%s  [%s]  %s", c.Name, c.Status, c.Address.Hex())
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, type to filter, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		Searcher:          fuzzySearchFunc(options),
		StartInSearchMode: false,
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return campaigns[index], nil
}

// fuzzySearchFunc creates a promptui searcher over the rendered options.
func fuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the picker implements the interface
var _ usecase.CampaignSelector = (*CampaignPicker)(nil)
