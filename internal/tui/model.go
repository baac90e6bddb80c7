// Package tui implements the interactive prompt-math editor: an
// expression input with live bracket linting, parse/eval status, and a
// sampled preview of every schedule's weight curve. Re-validation runs on
// every keystroke; the pipeline is cheap and side-effect-free by design.
package tui

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/enigmatic-figure/TensorMath-Node/internal/eval"
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
	"github.com/enigmatic-figure/TensorMath-Node/internal/validator"
	"github.com/enigmatic-figure/TensorMath-Node/internal/vector"
)

// previewDim is the dimension of the deterministic demo vectors the editor
// resolves tokens to. Real embeddings come from the host environment; the
// editor only needs something stable to exercise the pipeline.
const previewDim = 8

// Model is the bubbletea model for the expression editor.
type Model struct {
	input     textarea.Model
	parser    *parser.Parser
	evaluator *eval.Evaluator

	findings []validator.Finding
	result   eval.Result
	parseErr error
	evalErr  error

	width  int
	height int
}

// NewModel builds an editor over the given registry. initial seeds the
// input, typically from a template or saved snippet.
func NewModel(reg *schedule.Registry, maxDepth int, initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "[[ [king] - [man] + [woman] ]]"
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()
	if initial != "" {
		ta.SetValue(initial)
	}

	m := Model{
		input:     ta,
		parser:    &parser.Parser{Schedules: reg, MaxDepth: maxDepth},
		evaluator: eval.New(previewLookup, reg),
	}
	m.refresh()
	return m
}

// previewLookup derives a stable unit-scale vector from the token name, so
// any expression previews without a real embedding backend.
func previewLookup(name string) (vector.Vector, bool) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	seed := h.Sum64()
	v := make(vector.Vector, previewDim)
	for i := range v {
		seed = seed*6364136223846793005 + 1442695040888963407
		v[i] = math.Mod(float64(seed>>11)/float64(1<<53)*2, 2) - 1
	}
	return v, true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width - 4)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh reruns validate, parse, and evaluate over the current text.
func (m *Model) refresh() {
	text := m.input.Value()
	m.findings = validator.Check(text)
	m.result = eval.Result{}
	m.parseErr = nil
	m.evalErr = nil
	if strings.TrimSpace(text) == "" {
		return
	}
	ast, err := m.parser.Parse(text)
	if err != nil {
		m.parseErr = err
		return
	}
	res, err := m.evaluator.Evaluate(ast)
	if err != nil {
		m.evalErr = err
		return
	}
	m.result = res
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("prompt math") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.statusLine() + "\n")

	if len(m.findings) > 0 {
		b.WriteString("\n")
		for _, f := range m.findings {
			b.WriteString(styleFinding.Render(fmt.Sprintf("  %s %d:%d %s", f.Kind, f.Line, f.Col, f.Message)) + "\n")
		}
	}

	if len(m.result.Schedules) > 0 {
		b.WriteString("\n" + styleTitle.Render("schedules") + "\n")
		for _, binding := range m.result.Schedules {
			b.WriteString(m.renderBinding(binding))
		}
	}

	b.WriteString("\n" + styleMuted.Render("esc to quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) statusLine() string {
	switch {
	case m.parseErr != nil:
		return styleStatusBar.Render(styleError.Render(m.parseErr.Error()))
	case m.evalErr != nil:
		return styleStatusBar.Render(styleError.Render(m.evalErr.Error()))
	case len(m.findings) > 0:
		return styleStatusBar.Render(styleError.Render(fmt.Sprintf("%d bracket finding(s)", len(m.findings))))
	case len(m.result.Tensor) > 0:
		return styleStatusBar.Render(styleValid.Render(
			fmt.Sprintf("ok: %d-dim result, %d schedule(s)", len(m.result.Tensor), len(m.result.Schedules))))
	default:
		return styleStatusBar.Render(styleMuted.Render("type an expression"))
	}
}

// renderBinding draws one schedule binding with a sampled weight sparkline
// across the normalized timeline.
func (m Model) renderBinding(b schedule.Binding) string {
	width := m.width - 10
	if width < 16 {
		width = 16
	}
	if width > 60 {
		width = 60
	}
	header := styleSchedule.Render(fmt.Sprintf("  %s %s [%.2f → %.2f] %s",
		b.Token, b.Direction, b.Start, b.End, b.Curve))
	return header + "\n    " + styleCurve.Render(sparkline(b, width)) + "\n"
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline samples WeightAt across [0,1] at the given width.
func sparkline(b schedule.Binding, width int) string {
	out := make([]rune, width)
	for i := 0; i < width; i++ {
		tau := float64(i) / float64(width-1)
		w := b.WeightAt(tau)
		idx := int(w * float64(len(sparkRunes)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		out[i] = sparkRunes[idx]
	}
	return string(out)
}
