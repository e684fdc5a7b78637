package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerOptions configures RunPicker.
type PickerOptions struct {
	// Batch is how many names each draw produces.
	Batch int
	// Details are shown under the list.
	Details []Detail
}

// PickerResult holds the outcome of the picker session.
type PickerResult struct {
	// Picked is empty when the user quit without choosing.
	Picked []string
}

// RunPicker launches the interactive picker on stderr so stdout stays free
// for the picked names.
func RunPicker(g Generator, opts PickerOptions) (*PickerResult, error) {
	m := newModel(g, opts.Batch, opts.Details)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	fm := finalModel.(model)
	return &PickerResult{Picked: fm.picked}, nil
}
