package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

// AnalyzeGrid evaluates the cross product of two variables' variation lists
// for the primary metric. Both perturbation rules are applied to the same
// scenario copy, so each cell reflects the combined move. Rows follow the
// first variable, columns the second.
func (a *Analyzer) AnalyzeGrid(req *domain.AnalysisRequest, spec1, spec2 domain.VariableSpec) *domain.GridAnalysis {
	metric := req.PrimaryMetric()
	variations1 := sortedVariations(spec1.Variations)
	variations2 := sortedVariations(spec2.Variations)

	values := make([][]decimal.Decimal, len(variations1))
	for i, v1 := range variations1 {
		row := make([]decimal.Decimal, len(variations2))
		for j, v2 := range variations2 {
			perturbed := Perturb(Perturb(req.Scenario, spec1.Variable, v1), spec2.Variable, v2)
			row[j] = a.Engine.Evaluate(perturbed, req.DiscountRate).Value(metric)
		}
		values[i] = row
	}

	return &domain.GridAnalysis{
		Variable1:   spec1.Variable,
		Variable2:   spec2.Variable,
		Metric:      metric,
		Variations1: variations1,
		Variations2: variations2,
		Values:      values,
	}
}
