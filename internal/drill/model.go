// Package drill is the interactive single-character keying drill. A
// target character is shown, the learner keys its pattern with '.' and
// '-', and every finished attempt is reported to the tracker.
package drill

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/morsely/internal/morse"
	"github.com/abhisek/morsely/internal/tracker"
	"github.com/abhisek/morsely/internal/ui/components"
	"github.com/abhisek/morsely/internal/ui/layout"
	"github.com/abhisek/morsely/internal/ui/theme"
)

// weakPool is how many weak characters feed target selection.
const weakPool = 5

// Practice is the subset of *tracker.Tracker the drill needs.
type Practice interface {
	Report(ctx context.Context, text string, success bool) error
	WeakestCharacters(ctx context.Context, n int) ([]string, error)
}

// nextMsg carries the result of reporting an attempt and refreshing the
// weak pool.
type nextMsg struct {
	weak []string
	err  error
}

// Model is the Bubble Tea model for the drill.
type Model struct {
	practice Practice
	picker   *Picker
	timeout  time.Duration

	input    components.TextInput
	target   rune
	weak     []string
	showHint bool
	busy     bool

	lastTarget rune
	lastOK     bool
	lastInput  string
	correct    int
	total      int
	err        error

	width  int
	height int
}

// New creates a drill model. The first target is chosen once the weak
// pool has loaded.
func New(practice Practice, picker *Picker) Model {
	return Model{
		practice: practice,
		picker:   picker,
		timeout:  5 * time.Second,
		input:    components.NewTextInput("key . and -", components.PatternOnly, 8),
		busy:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.input.Init(), m.refresh())
}

// refresh loads the weak pool without reporting anything.
func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		weak, err := m.practice.WeakestCharacters(ctx, weakPool)
		return nextMsg{weak: weak, err: err}
	}
}

// report records the attempt, then reloads the weak pool.
func (m Model) report(target rune, success bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		if err := m.practice.Report(ctx, string(target), success); err != nil {
			return nextMsg{err: err}
		}
		weak, err := m.practice.WeakestCharacters(ctx, weakPool)
		return nextMsg{weak: weak, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nextMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.weak = msg.weak
		}
		m.target = m.picker.Pick(m.weak, m.target)
		m.input.Reset()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHint = !m.showHint
			return m, nil
		case "tab":
			if !m.busy {
				m.target = m.picker.Pick(m.weak, m.target)
				m.input.Reset()
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m.check(cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// check compares the input with the target after every keystroke and
// reports a finished attempt.
func (m Model) check(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.target == 0 {
		return m, cmd
	}
	pattern, _ := morse.Pattern(m.target)
	value := m.input.Value()

	switch morse.CheckInput(pattern, value) {
	case morse.InputMatch:
		return m.finish(true, value, cmd)
	case morse.InputMistake:
		return m.finish(false, value, cmd)
	}
	return m, cmd
}

func (m Model) finish(success bool, value string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.input.Submit(success)
	m.lastTarget = m.target
	m.lastOK = success
	m.lastInput = value
	m.total++
	if success {
		m.correct++
	}
	m.busy = true
	return m, tea.Batch(cmd, m.report(m.target, success))
}

// Score returns correct and total attempts this session.
func (m Model) Score() (correct, total int) {
	return m.correct, m.total
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the whole frame, or nothing before the first window size.
func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	screen := layout.Screen{
		Title:  "Keying drill",
		Status: fmt.Sprintf("%d/%d", m.correct, m.total),
		Hints: []layout.KeyHint{
			{Key: ". -", Description: "Key"},
			{Key: "Tab", Description: "Skip"},
			{Key: "?", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		},
		Width:  m.width,
		Height: m.height,
	}
	return screen.Render(m.body())
}

// body renders the drill card.
func (m Model) body() string {
	var b strings.Builder

	if m.target == 0 {
		b.WriteString(theme.Hint.Render("Loading..."))
	} else {
		b.WriteString(theme.Target.Render(string(m.target)))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		if m.showHint {
			pattern, _ := morse.Pattern(m.target)
			b.WriteString("\n\n" + theme.Hint.Render("pattern: ") + theme.Pattern.Render(pattern))
		}
	}

	if m.lastTarget != 0 {
		b.WriteString("\n\n")
		pattern, _ := morse.Pattern(m.lastTarget)
		if m.lastOK {
			b.WriteString(theme.Correct.Render(fmt.Sprintf("%c  %s  correct", m.lastTarget, pattern)))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("%c  is %s, you keyed %s", m.lastTarget, pattern, m.lastInput)))
		}
	}

	if len(m.weak) > 0 {
		b.WriteString("\n\n" + theme.Hint.Render("focus: "+strings.Join(m.weak, " ")))
	}

	if m.total > 0 {
		meter := components.NewAccuracyMeter("accuracy", tracker.Accuracy(m.correct, m.total), 24)
		b.WriteString("\n\n" + meter.View())
	}

	if m.err != nil {
		b.WriteString("\n\n" + theme.Incorrect.Render("error: "+m.err.Error()))
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, theme.Card.Render(b.String()))
}

// Run starts the drill program and blocks until the learner quits.
func Run(practice Practice, picker *Picker) (correct, total int, err error) {
	p := tea.NewProgram(New(practice, picker))
	final, err := p.Run()
	if err != nil {
		return 0, 0, fmt.Errorf("run drill: %w", err)
	}
	if fm, ok := final.(Model); ok {
		correct, total = fm.Score()
	}
	return correct, total, nil
}
