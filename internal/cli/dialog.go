package cli

import (
	"errors"

	"github.com/Emilio24-dev/Laboratorio/internal/core"
	"github.com/charmbracelet/lipgloss"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogWarning
	dialogError
)

var (
	dialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginLeft(1)

	dialogColors = map[dialogKind]lipgloss.Color{
		dialogInfo:    lipgloss.Color("42"),
		dialogWarning: lipgloss.Color("214"),
		dialogError:   lipgloss.Color("196"),
	}

	dialogTitles = map[dialogKind]string{
		dialogInfo:    "✓ Success",
		dialogWarning: "! Warning",
		dialogError:   "✗ Error",
	}
)

// dialog is a modal message shown over a view until a key is pressed.
type dialog struct {
	kind dialogKind
	text string
}

func (d dialog) View() string {
	color := dialogColors[d.kind]
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(dialogTitles[d.kind])

	return dialogBox.BorderForeground(color).Render(title+"\n\n"+d.text) + "\n"
}

// dialogFor classifies err: rejected input is a warning, anything else an error.
func dialogFor(err error) dialog {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return dialog{kind: dialogWarning, text: err.Error()}
	}

	return dialog{kind: dialogError, text: err.Error()}
}
