package output

import (
	"bytes"
	"fmt"

	"github.com/proforma/proforma/internal/domain"
)

// CSVFormatter flattens the per-variable sweep results into rows.
type CSVFormatter struct{}

func (cf CSVFormatter) Name() string { return "csv" }

func (cf CSVFormatter) Format(report *domain.AnalysisReport) (string, error) {
	if report == nil || len(report.Results) == 0 {
		return "", fmt.Errorf("no results in report")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "variable,variation_percent,variable_value,irr,npv,cash_on_cash,total_return,monthly_cash_flow\n")

	for _, result := range report.Results {
		for _, point := range result.Scenarios {
			fmt.Fprintf(&buf, "%s,%s,%s,%s,%s,%s,%s,%s\n",
				result.Variable,
				point.VariationPercent.String(),
				point.VariableValue.String(),
				point.Metrics.IRR.String(),
				point.Metrics.NPV.String(),
				point.Metrics.CashOnCashReturn.String(),
				point.Metrics.TotalReturn.String(),
				point.Metrics.MonthlyCashFlow.String())
		}
	}

	return buf.String(), nil
}
