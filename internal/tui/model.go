// Package tui implements the interactive mortgage repayment form.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
)

// Field identifies the form control that has focus.
type Field int

// Form controls in tab order.
const (
	FieldNone Field = iota
	FieldAmount
	FieldTerm
	FieldRate
	FieldType
)

const (
	numberChars    = "0123456789.-+eE"
	inputCharLimit = 20
	inputWidth     = 16
)

func (f Field) next() Field {
	if f == FieldType || f == FieldNone {
		return FieldAmount
	}
	return f + 1
}

func (f Field) prev() Field {
	if f == FieldAmount || f == FieldNone {
		return FieldType
	}
	return f - 1
}

func (f Field) numeric() bool {
	return f == FieldAmount || f == FieldTerm || f == FieldRate
}

// index maps a numeric field onto Model.inputs.
func (f Field) index() int {
	return int(f - FieldAmount)
}

// Model is the Bubble Tea model behind the form.
type Model struct {
	inputs       [3]textinput.Model
	mortgageType mortgage.MortgageType
	defaultType  mortgage.MortgageType
	active       Field

	err        string
	result     mortgage.RepaymentResult
	calculated bool

	formatter *format.CurrencyFormatter
	logger    *zap.Logger
	keys      keyMap
	help      help.Model
	width     int
}

// New builds a form with the amount field focused.
func New(logger *zap.Logger, formatter *format.CurrencyFormatter, defaultType mortgage.MortgageType) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		mortgageType: defaultType,
		defaultType:  defaultType,
		formatter:    formatter,
		logger:       logger,
		keys:         newKeyMap(),
		help:         help.New(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = inputCharLimit
		ti.Width = inputWidth
		m.inputs[i] = ti
	}
	m.activate(FieldAmount)
	return m
}

// Run starts the form full screen and blocks until the user quits.
func Run(logger *zap.Logger, formatter *format.CurrencyFormatter, defaultType mortgage.MortgageType) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting interactive form",
		zap.String("op", "tui.Run"),
		zap.String("currency", formatter.Code()),
		zap.String("defaultType", defaultType.String()),
	)

	p := tea.NewProgram(New(logger, formatter, defaultType), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.activate(m.active.next())
		case key.Matches(msg, m.keys.Prev):
			return m, m.activate(m.active.prev())
		case key.Matches(msg, m.keys.Deactivate):
			m.activate(FieldNone)
			return m, nil
		}

		if m.active == FieldType {
			m.selectType(msg)
			return m, nil
		}
		if !m.active.numeric() || !acceptsKey(msg) {
			return m, nil
		}
	}

	if !m.active.numeric() {
		return m, nil
	}
	i := m.active.index()
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

// acceptsKey filters typing in numeric fields down to characters that can
// appear in a number. Editing keys pass through.
func acceptsKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !strings.ContainsRune(numberChars, r) {
				return false
			}
		}
	}
	return true
}

func (m *Model) selectType(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.mortgageType == mortgage.Repayment {
			m.mortgageType = mortgage.InterestOnly
		} else {
			m.mortgageType = mortgage.Repayment
		}
	case key.Matches(msg, m.keys.Repayment):
		m.mortgageType = mortgage.Repayment
	case key.Matches(msg, m.keys.InterestOnly):
		m.mortgageType = mortgage.InterestOnly
	}
}

func (m *Model) activate(f Field) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.active = f
	if f.numeric() {
		return m.inputs[f.index()].Focus()
	}
	return nil
}

// Input returns the calculator input described by the form.
func (m Model) Input() mortgage.RepaymentInput {
	return mortgage.RepaymentInput{
		Amount:            mortgage.Text(m.inputs[FieldAmount.index()].Value()),
		TermYears:         mortgage.Text(m.inputs[FieldTerm.index()].Value()),
		AnnualRatePercent: mortgage.Text(m.inputs[FieldRate.index()].Value()),
		Type:              m.mortgageType,
	}
}

// submit keeps the last result on failure; only the error line changes.
func (m *Model) submit() {
	result, err := quote.Calculate(m.logger, m.Input())
	if err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
	m.result = result
	m.calculated = true
}

func (m *Model) clear() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.mortgageType = m.defaultType
	m.err = ""
	m.result = mortgage.RepaymentResult{}
	m.calculated = false
	m.activate(FieldNone)
}

// Active returns the focused form control.
func (m Model) Active() Field {
	return m.active
}

// MortgageType returns the selected mortgage type.
func (m Model) MortgageType() mortgage.MortgageType {
	return m.mortgageType
}

// ErrorMessage returns the message from the last failed submission.
func (m Model) ErrorMessage() string {
	return m.err
}

// Result returns the last computed result and whether there is one.
func (m Model) Result() (mortgage.RepaymentResult, bool) {
	return m.result, m.calculated
}
