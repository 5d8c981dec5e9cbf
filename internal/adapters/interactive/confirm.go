package interactive

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmAdapter prompts the operator for yes/no decisions.
type ConfirmAdapter struct{}

// NewConfirmAdapter creates a new ConfirmAdapter.
func NewConfirmAdapter() *ConfirmAdapter {
	return &ConfirmAdapter{}
}

// Confirm asks prompt and returns the operator's answer. promptui
// reports a declined confirm as ErrAbort; only a prompt that could not
// be read at all returns an error.
func (c *ConfirmAdapter) Confirm(prompt string) (bool, error) {
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return true, nil
}
