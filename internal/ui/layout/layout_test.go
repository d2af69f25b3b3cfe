package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderFillsScreen(t *testing.T) {
	s := Screen{
		Title:  "Keying drill",
		Status: "3/4",
		Hints:  []KeyHint{{Key: "Esc", Description: "Quit"}},
		Width:  80,
		Height: 24,
	}
	out := s.Render("body text")

	if h := lipgloss.Height(out); h != 24 {
		t.Errorf("height = %d, want 24", h)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Morsely", "Keying drill", "3/4", "Esc Quit", "body text"} {
		if !strings.Contains(plain, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	out := ansi.Strip(Screen{Title: "x", Width: 40, Height: 10}.Render("body"))
	if !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected resize notice, got %q", out)
	}
	if strings.Contains(out, "body") {
		t.Error("body should not render on a small terminal")
	}
}
