package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// View renders the explorer.
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.request == nil {
		return "Loading request...\n"
	}

	title := TitleStyle.Render("proforma — sensitivity explorer")
	variables := PanelStyle.Render(m.viewVariables())
	metrics := PanelStyle.Render(m.viewMetrics())
	help := HelpStyle.Render("↑/↓ select variable  ←/→ adjust ±5%  r reset  q quit")

	body := lipgloss.JoinHorizontal(lipgloss.Top, variables, " ", metrics)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help) + "\n"
}

func (m Model) viewVariables() string {
	var b strings.Builder
	b.WriteString("VARIABLES\n\n")

	for i, v := range m.variables {
		variation := m.variations[v].StringFixed(0)
		if !m.variations[v].IsNegative() {
			variation = "+" + variation
		}
		line := fmt.Sprintf("%-18s %6s%%", strings.ReplaceAll(string(v), "_", " "), variation)
		if i == m.selected {
			b.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(UnselectedItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewMetrics() string {
	var b strings.Builder
	b.WriteString("METRICS (current vs base)\n\n")

	rows := []struct {
		label    string
		current  decimal.Decimal
		base     decimal.Decimal
		currency bool
	}{
		{"IRR", m.currentMetrics.IRR, m.baseMetrics.IRR, false},
		{"NPV", m.currentMetrics.NPV, m.baseMetrics.NPV, true},
		{"Cash-on-Cash", m.currentMetrics.CashOnCashReturn, m.baseMetrics.CashOnCashReturn, false},
		{"Total Return", m.currentMetrics.TotalReturn, m.baseMetrics.TotalReturn, false},
		{"Annual Cash Flow", m.currentMetrics.AnnualCashFlow, m.baseMetrics.AnnualCashFlow, true},
		{"Final Equity", m.currentMetrics.FinalEquity, m.baseMetrics.FinalEquity, true},
	}

	for _, row := range rows {
		delta := row.current.Sub(row.base)
		deltaStyle := MetricPositiveStyle
		deltaText := delta.StringFixed(2)
		if delta.IsNegative() {
			deltaStyle = MetricNegativeStyle
		} else {
			deltaText = "+" + deltaText
		}

		var value, change string
		if row.currency {
			value = "$" + row.current.StringFixed(2)
			change = deltaStyle.Render(deltaText)
		} else {
			value = row.current.StringFixed(2) + "%"
			change = deltaStyle.Render(deltaText + "%")
		}

		b.WriteString(MetricLabelStyle.Render(row.label))
		b.WriteString(fmt.Sprintf("%-14s %s\n", value, change))
	}

	return b.String()
}
