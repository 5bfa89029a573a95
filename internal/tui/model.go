// Package tui is an interactive explorer for a loaded analysis request:
// pick a variable, step its variation up and down, and watch the metrics
// re-evaluate live.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/calculation"
	"github.com/proforma/proforma/internal/config"
	"github.com/proforma/proforma/internal/domain"
)

// variationStep is the percentage step applied per keypress.
var variationStep = decimal.NewFromInt(5)

// KeyMap defines the explorer key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous variable")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next variable")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease variation")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase variation")),
		Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset variation")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the explorer state.
type Model struct {
	requestPath string
	request     *domain.AnalysisRequest
	engine      *calculation.Engine

	variables  []domain.Variable
	selected   int
	variations map[domain.Variable]decimal.Decimal

	baseMetrics    domain.ScenarioMetrics
	currentMetrics domain.ScenarioMetrics

	keys   KeyMap
	width  int
	height int
	err    error
}

// requestLoadedMsg carries the parsed request into the model.
type requestLoadedMsg struct {
	request *domain.AnalysisRequest
}

// errorMsg carries a load failure.
type errorMsg struct {
	err error
}

// NewModel creates an explorer for the request file at path.
func NewModel(path string) Model {
	return Model{
		requestPath: path,
		engine:      calculation.NewEngine(),
		variations:  make(map[domain.Variable]decimal.Decimal),
		keys:        DefaultKeyMap(),
		width:       80,
		height:      24,
	}
}

// Init loads the request file.
func (m Model) Init() tea.Cmd {
	return loadRequestCmd(m.requestPath)
}

func loadRequestCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(path)
		if err != nil {
			return errorMsg{err: err}
		}
		return requestLoadedMsg{request: req}
	}
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errorMsg:
		m.err = msg.err
		return m, nil

	case requestLoadedMsg:
		m.request = msg.request
		m.variables = make([]domain.Variable, 0, len(msg.request.Variables))
		for _, spec := range msg.request.Variables {
			m.variables = append(m.variables, spec.Variable)
			m.variations[spec.Variable] = decimal.Zero
		}
		m.baseMetrics = m.engine.Evaluate(msg.request.Scenario, msg.request.DiscountRate)
		m.currentMetrics = m.baseMetrics
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	if m.request == nil || len(m.variables) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.variables)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Left):
		v := m.variables[m.selected]
		m.variations[v] = m.variations[v].Sub(variationStep)
		m.reevaluate()
	case key.Matches(msg, m.keys.Right):
		v := m.variables[m.selected]
		m.variations[v] = m.variations[v].Add(variationStep)
		m.reevaluate()
	case key.Matches(msg, m.keys.Reset):
		for _, v := range m.variables {
			m.variations[v] = decimal.Zero
		}
		m.reevaluate()
	}

	return m, nil
}

// reevaluate applies every active variation to a fresh scenario copy and
// recomputes the metrics.
func (m *Model) reevaluate() {
	scenario := m.request.Scenario
	for _, v := range m.variables {
		if !m.variations[v].IsZero() {
			scenario = calculation.Perturb(scenario, v, m.variations[v])
		}
	}
	m.currentMetrics = m.engine.Evaluate(scenario, m.request.DiscountRate)
}
