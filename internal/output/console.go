package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/proforma/proforma/internal/domain"
)

// ConsoleFormatter renders the report as plain-text tables.
type ConsoleFormatter struct{}

func (cf ConsoleFormatter) Name() string { return "console" }

func (cf ConsoleFormatter) Format(report *domain.AnalysisReport) (string, error) {
	if report == nil || len(report.Results) == 0 {
		return "", fmt.Errorf("no results in report")
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS\n")
	fmt.Fprintf(&buf, "=================================================================\n")
	fmt.Fprintf(&buf, "Purchase Price: %s  Down Payment: %s%%  Discount Rate: %s%%\n",
		FormatCurrency(report.Scenario.PurchasePrice),
		report.Scenario.DownPaymentPercent.StringFixed(1),
		report.DiscountRate.StringFixed(1))
	fmt.Fprintf(&buf, "Primary Metric: %s\n", report.PrimaryMetric)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "BASE CASE:")
	fmt.Fprintf(&buf, "  IRR: %s  NPV: %s  Cash-on-Cash: %s\n",
		FormatPercentage(report.BaseMetrics.IRR),
		FormatCurrency(report.BaseMetrics.NPV),
		FormatPercentage(report.BaseMetrics.CashOnCashReturn))
	fmt.Fprintf(&buf, "  Annual Cash Flow: %s  Total Return: %s  Final Equity: %s\n",
		FormatCurrency(report.BaseMetrics.AnnualCashFlow),
		FormatPercentage(report.BaseMetrics.TotalReturn),
		FormatCurrency(report.BaseMetrics.FinalEquity))
	fmt.Fprintln(&buf)

	for _, result := range report.Results {
		cf.writeVariable(&buf, report, result)
	}

	cf.writeTornado(&buf, report)

	if report.Grid != nil {
		cf.writeGrid(&buf, report.Grid)
	}

	fmt.Fprintf(&buf, "RISK LEVEL: %s\n", report.Risk.RiskLevel)
	fmt.Fprintf(&buf, "  Average Elasticity: %s  Max Downside: %s  High-Sensitivity Variables: %d\n",
		report.Risk.AverageElasticity.StringFixed(2),
		FormatPercentage(report.Risk.MaxDownsideRisk),
		report.Risk.HighSensitivityCount)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RECOMMENDATIONS:")
	for _, rec := range report.Recommendations {
		fmt.Fprintf(&buf, "  • %s\n", rec)
	}

	return buf.String(), nil
}

func (cf ConsoleFormatter) writeVariable(buf *bytes.Buffer, report *domain.AnalysisReport, result domain.SensitivityResult) {
	primary := report.PrimaryMetric

	fmt.Fprintf(buf, "VARIABLE: %s (base %s)\n",
		strings.ToUpper(strings.ReplaceAll(string(result.Variable), "_", " ")),
		result.BaseValue.StringFixed(2))
	fmt.Fprintf(buf, "%-12s %-14s %-14s %-14s\n", "Variation", "Value", string(primary), "Impact")
	fmt.Fprintln(buf, strings.Repeat("-", 56))

	for _, point := range result.Scenarios {
		variation := fmt.Sprintf("%s%%", point.VariationPercent.StringFixed(0))
		if point.VariationPercent.IsZero() {
			variation += " ← BASE"
		}
		fmt.Fprintf(buf, "%-12s %-14s %-14s %-14s\n",
			variation,
			point.VariableValue.StringFixed(2),
			point.Metrics.Value(primary).StringFixed(2),
			point.Impact[primary].StringFixed(2))
	}

	stats := result.Stats[primary]
	fmt.Fprintf(buf, "Range: %s  Elasticity: %s\n", stats.Range.StringFixed(2), stats.Elasticity.StringFixed(2))

	if result.BreakEven != nil {
		fmt.Fprintf(buf, "Break-even: %s%% change (value %s), margin of safety %s%%\n",
			result.BreakEven.ChangePercent.StringFixed(1),
			result.BreakEven.VariableValue.StringFixed(2),
			result.BreakEven.MarginOfSafety.StringFixed(1))
	} else {
		fmt.Fprintln(buf, "Break-even: not found within search bounds")
	}
	fmt.Fprintln(buf)
}

func (cf ConsoleFormatter) writeTornado(buf *bytes.Buffer, report *domain.AnalysisReport) {
	fmt.Fprintf(buf, "TORNADO RANKING (%s range):\n", report.PrimaryMetric)
	for i, entry := range report.Tornado {
		fmt.Fprintf(buf, "  %d. %-18s %s\n", i+1, entry.Variable, entry.Range.StringFixed(2))
	}
	fmt.Fprintln(buf)
}

func (cf ConsoleFormatter) writeGrid(buf *bytes.Buffer, grid *domain.GridAnalysis) {
	fmt.Fprintf(buf, "TWO-WAY GRID: %s × %s (%s)\n", grid.Variable1, grid.Variable2, grid.Metric)

	fmt.Fprintf(buf, "%-12s", "")
	for _, v2 := range grid.Variations2 {
		fmt.Fprintf(buf, " %-10s", fmt.Sprintf("%s%%", v2.StringFixed(0)))
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, strings.Repeat("-", 12+11*len(grid.Variations2)))

	for i, v1 := range grid.Variations1 {
		fmt.Fprintf(buf, "%-12s", fmt.Sprintf("%s%%", v1.StringFixed(0)))
		for _, value := range grid.Values[i] {
			fmt.Fprintf(buf, " %-10s", value.StringFixed(2))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}
