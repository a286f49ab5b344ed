package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
)

// Below this width the results panel is stacked under the form.
const stackedWidth = 90

// View implements tea.Model.
func (m Model) View() string {
	form := m.formView()
	results := m.resultsView()

	var body string
	if m.width > 0 && m.width < stackedWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, form, results)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, " ", results)
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m Model) formView() string {
	var lines []string
	lines = append(lines,
		titleStyle.Render("Mortgage Calculator")+"   "+mutedStyle.Render("Clear all (ctrl+r)"),
		"",
		labelStyle.Render("Mortgage Amount"),
		m.fieldView(FieldAmount, m.formatter.Symbol(), ""),
		labelStyle.Render("Mortgage Term"),
		m.fieldView(FieldTerm, "", "years"),
		labelStyle.Render("Interest Rate"),
		m.fieldView(FieldRate, "", "%"),
		labelStyle.Render("Mortgage Type"),
		m.typeView(),
	)
	if m.err != "" {
		lines = append(lines, errorStyle.Render(m.err))
	}
	lines = append(lines, "", accentStyle.Render("[ Calculate Repayments ]")+" "+mutedStyle.Render("(enter)"))

	return panelStyle(false).Render(strings.Join(lines, "\n"))
}

func (m Model) fieldView(f Field, prefix, suffix string) string {
	active := m.active == f
	content := m.inputs[f.index()].View()
	if prefix != "" {
		content = affix(prefix, active) + " " + content
	}
	if suffix != "" {
		content = content + " " + affix(suffix, active)
	}
	return panelStyle(active).Render(content)
}

func (m Model) typeView() string {
	options := []mortgage.MortgageType{mortgage.Repayment, mortgage.InterestOnly}
	rows := make([]string, 0, len(options))
	for _, t := range options {
		mark := radioEmpty
		label := t.Label()
		if t == m.mortgageType {
			mark = accentStyle.Render(radioChecked)
			label = titleStyle.Render(label)
		}
		rows = append(rows, mark+" "+label)
	}
	return panelStyle(m.active == FieldType).Render(strings.Join(rows, "\n"))
}

func (m Model) resultsView() string {
	var lines []string
	if !m.calculated {
		lines = append(lines,
			titleStyle.Render("Results shown here"),
			"",
			mutedStyle.Render("Complete the form and press enter to see what"),
			mutedStyle.Render("your monthly repayments would be."),
		)
	} else {
		lines = append(lines,
			titleStyle.Render("Your results"),
			"",
			mutedStyle.Render("Your results are shown below based on the information"),
			mutedStyle.Render("you provided. To adjust the results, edit the form and"),
			mutedStyle.Render("press enter again."),
			"",
			labelStyle.Render("Your monthly repayments"),
			resultStyle.Render(m.formatter.Format(m.result.MonthlyPayment)),
			"",
			labelStyle.Render("Total you'll repay over the term"),
			titleStyle.Render(m.formatter.Format(m.result.TotalRepayment)),
		)
	}
	return panelStyle(false).Render(strings.Join(lines, "\n"))
}
