// Package output renders analysis reports for the CLI: a console table view,
// CSV for spreadsheets, and JSON for downstream tooling.
package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

// Formatter renders a complete analysis report.
type Formatter interface {
	Format(report *domain.AnalysisReport) (string, error)
	Name() string
}

// NewFormatter creates a formatter for the given format name, defaulting to
// console output for unknown names.
func NewFormatter(format string) Formatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	default:
		return ConsoleFormatter{}
	}
}

// NormalizeFormatName lowercases and trims a format name; "table" is an
// alias for "console".
func NormalizeFormatName(format string) string {
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "table" {
		return "console"
	}
	return name
}

// FormatCurrency formats a decimal as a currency amount.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
