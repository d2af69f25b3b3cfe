package drill

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/morsely/internal/morse"
)

type report struct {
	text    string
	success bool
}

type fakePractice struct {
	weak    []string
	reports []report
	err     error
}

func (f *fakePractice) Report(_ context.Context, text string, success bool) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, report{text, success})
	return nil
}

func (f *fakePractice) WeakestCharacters(context.Context, int) ([]string, error) {
	return f.weak, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// loaded returns a model whose first target has been picked.
func loaded(t *testing.T, p *fakePractice) Model {
	t.Helper()
	m := New(p, NewPicker(3, 1))
	msg := m.refresh()()
	next, _ := m.Update(msg)
	m = next.(Model)
	if m.target == 0 {
		t.Fatal("expected a target after loading")
	}
	return m
}

// key sends keys and runs any resulting report command to completion.
func key(t *testing.T, m Model, keys string) Model {
	t.Helper()
	for _, r := range keys {
		next, cmd := m.Update(keyPress(r))
		m = next.(Model)
		if m.busy && cmd != nil {
			m = drain(m, cmd)
		}
	}
	return m
}

// drain executes cmd and feeds any nextMsg back into the model.
func drain(m Model, cmd tea.Cmd) Model {
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if nm, ok := c().(nextMsg); ok {
				next, _ := m.Update(nm)
				m = next.(Model)
			}
		}
	case nextMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestDrill_CorrectPatternReportsSuccess(t *testing.T) {
	p := &fakePractice{}
	m := loaded(t, p)
	target := m.target
	pattern, _ := morse.Pattern(target)

	m = key(t, m, pattern)

	if len(p.reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(p.reports))
	}
	if p.reports[0] != (report{string(target), true}) {
		t.Errorf("unexpected report %+v", p.reports[0])
	}
	if c, n := m.Score(); c != 1 || n != 1 {
		t.Errorf("score = %d/%d, want 1/1", c, n)
	}
	if m.target == target {
		t.Error("expected a new target after a finished attempt")
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
}

func TestDrill_MistakeReportsFailure(t *testing.T) {
	p := &fakePractice{}
	m := loaded(t, p)
	target := m.target
	pattern, _ := morse.Pattern(target)

	// Flip the first element: the input can no longer be a prefix.
	wrong := "-"
	if pattern[0] == '-' {
		wrong = "."
	}
	m = key(t, m, wrong)

	if len(p.reports) != 1 || p.reports[0] != (report{string(target), false}) {
		t.Fatalf("unexpected reports %+v", p.reports)
	}
	if c, n := m.Score(); c != 0 || n != 1 {
		t.Errorf("score = %d/%d, want 0/1", c, n)
	}
	if m.lastInput != wrong {
		t.Errorf("last input = %q", m.lastInput)
	}
}

func TestDrill_PartialInputWaits(t *testing.T) {
	p := &fakePractice{}
	m := loaded(t, p)
	for i := 0; i < 100; i++ {
		if pat, _ := morse.Pattern(m.target); len(pat) > 1 {
			break
		}
		next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		m = next.(Model)
	}
	pattern, _ := morse.Pattern(m.target)

	m = key(t, m, pattern[:1])

	if len(p.reports) != 0 {
		t.Errorf("partial input should not report, got %+v", p.reports)
	}
	if m.input.Value() != pattern[:1] {
		t.Errorf("input = %q", m.input.Value())
	}
}

func TestDrill_IgnoresOtherKeys(t *testing.T) {
	p := &fakePractice{}
	m := loaded(t, p)

	m = key(t, m, "abc1")

	if m.input.Value() != "" {
		t.Errorf("non-pattern keys should be dropped, got %q", m.input.Value())
	}
	if len(p.reports) != 0 {
		t.Errorf("unexpected reports %+v", p.reports)
	}
}

func TestDrill_ReportErrorShown(t *testing.T) {
	p := &fakePractice{}
	m := loaded(t, p)
	p.err = errors.New("database is locked")
	pattern, _ := morse.Pattern(m.target)

	m = key(t, m, pattern)

	if m.err == nil {
		t.Fatal("expected error to be kept on the model")
	}
	m.width, m.height = 100, 30
	if !strings.Contains(m.body(), "database is locked") {
		t.Error("expected error in view")
	}
}

func TestDrill_QuitKeys(t *testing.T) {
	m := loaded(t, &fakePractice{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestDrill_View(t *testing.T) {
	m := loaded(t, &fakePractice{weak: []string{"Q"}})

	if m.render() != "" {
		t.Error("expected empty view before the first window size")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if !strings.Contains(m.render(), string(m.target)) {
		t.Error("view should show the target")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(Model)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestPicker_FavoursWeak(t *testing.T) {
	p := NewPicker(200, 9)
	hits := 0
	for i := 0; i < 300; i++ {
		if p.Pick([]string{"Q"}, 0) == 'Q' {
			hits++
		}
	}
	// Q weighs 201 against 42 for the rest of the alphabet.
	if hits < 200 {
		t.Errorf("expected Q to dominate, got %d/300", hits)
	}
}

func TestPicker_AvoidsRepeat(t *testing.T) {
	p := NewPicker(1000, 4)
	for i := 0; i < 50; i++ {
		if got := p.Pick([]string{"E"}, 'E'); got == 'E' {
			t.Fatal("picked the previous target")
		}
	}
}
