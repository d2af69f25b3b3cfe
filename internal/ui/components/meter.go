package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/morsely/internal/ui/theme"
)

// Accuracy bands used to color meters.
const (
	GoodAccuracy = 90.0
	FairAccuracy = 70.0
)

// AccuracyMeter draws a percentage as a bar of block characters followed
// by the number, colored by band.
type AccuracyMeter struct {
	Label    string
	Accuracy float64 // 0-100
	Width    int     // bar cells, not counting label or number
}

// NewAccuracyMeter returns a meter with a bar width cells wide.
func NewAccuracyMeter(label string, accuracy float64, width int) AccuracyMeter {
	return AccuracyMeter{Label: label, Accuracy: accuracy, Width: width}
}

// BandColor returns the color for an accuracy percentage.
func BandColor(accuracy float64) color.Color {
	switch {
	case accuracy >= GoodAccuracy:
		return theme.Success
	case accuracy >= FairAccuracy:
		return theme.Primary
	default:
		return theme.Error
	}
}

// Cells returns how many of width cells are filled for accuracy.
func Cells(accuracy float64, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(accuracy/100*float64(width) + 0.5)
	return max(0, min(n, width))
}

func (m AccuracyMeter) View() string {
	width := max(m.Width, 4)
	filled := Cells(m.Accuracy, width)

	var b strings.Builder
	if m.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(m.Label))
		b.WriteString("  ")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(BandColor(m.Accuracy)).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3.0f%%", m.Accuracy)))
	return b.String()
}
