package status

import (
	"errors"
	"io"

	"github.com/bnema/stakevault/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")
	ErrIncompleteRender      = errors.New("status view finished with sections missing")
)

// sectionRenderedMsg carries one finished block of the view.
type sectionRenderedMsg struct {
	index int
	body  string
}

// model collects the vault sections, which render independently, and quits
// once every one of them has arrived.
type model struct {
	status   application.Status
	opts     RenderOptions
	styles   styles
	sections []string
	pending  int
}

func newModel(status application.Status, opts RenderOptions) model {
	return model{
		status:   status,
		opts:     opts,
		styles:   newStyles(),
		sections: make([]string, len(sectionRenderers)),
		pending:  len(sectionRenderers),
	}
}

func (m model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(sectionRenderers))
	for i, render := range sectionRenderers {
		i, render := i, render
		cmds = append(cmds, func() tea.Msg {
			return sectionRenderedMsg{index: i, body: m.styles.section.Render(render(m.status, m.opts, m.styles))}
		})
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionRenderedMsg:
		if msg.index < 0 || msg.index >= len(m.sections) {
			return m, nil
		}
		sections := append([]string(nil), m.sections...)
		sections[msg.index] = msg.body
		m.sections = sections
		m.pending--
		if m.pending == 0 {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.pending > 0 {
		return ""
	}
	lines := append(renderHeader(m.status, m.styles), m.sections...)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Render runs the view once without a terminal and returns the drawn status.
func Render(status application.Status, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(status, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}
	if rendered.pending > 0 {
		return "", ErrIncompleteRender
	}

	return rendered.View(), nil
}
