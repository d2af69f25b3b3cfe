// Package layout frames full-screen views with a header and a key-hint
// footer.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/morsely/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16
)

// KeyHint is one key binding listed in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Screen describes the frame around a view's body.
type Screen struct {
	Title  string
	Status string
	Hints  []KeyHint
	Width  int
	Height int
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// Render draws header, body and footer filling the screen. Terminals below
// the minimum size get a resize notice instead.
func (s Screen) Render(body string) string {
	if IsTooSmall(s.Width, s.Height) {
		return s.tooSmall()
	}
	header := s.header()
	footer := s.footer()
	bodyHeight := max(0, s.Height-lipgloss.Height(header)-lipgloss.Height(footer))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(s.Width).Height(bodyHeight).Render(body),
		footer,
	)
}

func (s Screen) header() string {
	left := theme.Title.Render("Morsely") + lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(s.Title)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.Status)

	// Border and padding take four columns.
	gap := max(1, s.Width-4-lipgloss.Width(left)-lipgloss.Width(right))
	return bar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s Screen) footer() string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, len(s.Hints))
	for i, h := range s.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(s.Width).Render(strings.Join(parts, "   "))
}

func (s Screen) tooSmall() string {
	return lipgloss.NewStyle().
		Width(s.Width).
		Height(s.Height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small\n\nneed %d x %d, have %d x %d",
			MinWidth, MinHeight, s.Width, s.Height))
}
