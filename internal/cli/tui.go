package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msartori/causalgo/pkg/data"
	"github.com/msartori/causalgo/pkg/discovery"
	"github.com/msartori/causalgo/pkg/graph"
	"github.com/msartori/causalgo/pkg/prior"
)

var (
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	tuiDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// learnProgressMsg carries one accepted operation from the optimizer
// goroutine into the bubbletea event loop.
type learnProgressMsg discovery.Progress

// learnDoneMsg signals that the optimizer finished.
type learnDoneMsg struct {
	graph      *graph.Directed
	iterations int
	err        error
}

// learnModel is the bubbletea model showing live optimizer progress:
// iteration count, running score, and the last accepted operation.
type learnModel struct {
	dataset    string
	iteration  int
	score      float64
	lastOp     string
	result     *graph.Directed
	iterations int
	done       bool
	err        error
}

func newLearnModel(dataset string) learnModel {
	return learnModel{dataset: dataset}
}

func (m learnModel) Init() tea.Cmd {
	return nil
}

func (m learnModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case learnProgressMsg:
		m.iteration = msg.Iteration
		m.score = msg.Score
		m.lastOp = fmt.Sprintf("%s(%s, %s)  Δ %.4f", msg.Kind, msg.X, msg.Y, msg.Delta)
	case learnDoneMsg:
		m.done = true
		m.result = msg.graph
		m.iterations = msg.iterations
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m learnModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Learning structure"))
	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("q quit"))
	b.WriteString("\n\n")

	b.WriteString(tuiLabelStyle.Render("Dataset") + " " + StyleValue.Render(m.dataset) + "\n")
	b.WriteString(tuiLabelStyle.Render("Iteration") + " " + StyleNumber.Render(fmt.Sprintf("%d", m.iteration)) + "\n")
	b.WriteString(tuiLabelStyle.Render("Score") + " " + StyleNumber.Render(fmt.Sprintf("%.4f", m.score)) + "\n")

	lastOp := m.lastOp
	if lastOp == "" {
		lastOp = "—"
	}
	b.WriteString(tuiLabelStyle.Render("Last op") + " " + StyleValue.Render(lastOp) + "\n")

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(StyleWarning.Render(iconError + " " + m.err.Error()))
	case m.done:
		b.WriteString(StyleSuccess.Render(iconSuccess + " converged"))
	default:
		b.WriteString(tuiDimStyle.Render("searching..."))
	}
	b.WriteString("\n")

	return b.String()
}

// runLearnTUI runs the optimizer behind an interactive progress view and
// returns the learned graph and the number of accepted operations.
func runLearnTUI(hc *discovery.HillClimbing, d *data.Categorical, k *prior.ForbiddenRequired, dataset string) (*graph.Directed, int, error) {
	p := tea.NewProgram(newLearnModel(dataset))

	go func() {
		var iterations int
		g, err := hc.WithProgress(func(pr discovery.Progress) {
			iterations = pr.Iteration
			p.Send(learnProgressMsg(pr))
		}).Call(d, k)
		p.Send(learnDoneMsg{graph: g, iterations: iterations, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, 0, err
	}

	m := final.(learnModel)
	if m.err != nil {
		return nil, 0, m.err
	}
	if m.result == nil {
		return nil, 0, fmt.Errorf("learning interrupted")
	}
	return m.result, m.iterations, nil
}
