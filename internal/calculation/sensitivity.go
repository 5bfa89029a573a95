package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

// Analyzer runs the full sensitivity analysis: per-variable sweeps, tornado
// ranking, an optional two-way grid, break-even search and risk assessment.
type Analyzer struct {
	Engine *Engine
	Logger Logger
}

// NewAnalyzer creates an analyzer with a fresh evaluation engine.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Engine: NewEngine(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the analyzer logger. A nil logger installs NopLogger.
func (a *Analyzer) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	a.Logger = logger
	a.Engine.SetLogger(logger)
}

// Analyze produces the complete report for a resolved request. The grid is
// only built when at least two variables were requested, and covers the first
// two.
func (a *Analyzer) Analyze(req *domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	if len(req.Variables) == 0 {
		return nil, &AnalysisError{
			Operation: "analyze",
			Message:   "at least one variable is required",
		}
	}

	primary := req.PrimaryMetric()
	base := a.Engine.Evaluate(req.Scenario, req.DiscountRate)

	results := make([]domain.SensitivityResult, 0, len(req.Variables))
	for _, spec := range req.Variables {
		a.Logger.Debugf("analyzing variable %s over %d variations", spec.Variable, len(spec.Variations))
		result := a.analyzeVariable(req, spec, base)
		result.BreakEven = a.FindBreakEven(req.Scenario, spec.Variable, req.DiscountRate)
		results = append(results, result)
	}

	var grid *domain.GridAnalysis
	if len(req.Variables) >= 2 {
		grid = a.AnalyzeGrid(req, req.Variables[0], req.Variables[1])
	}

	risk := AssessRisk(results, base, primary)

	return &domain.AnalysisReport{
		Scenario:        req.Scenario,
		DiscountRate:    req.DiscountRate,
		PrimaryMetric:   primary,
		BaseMetrics:     base,
		Results:         results,
		Tornado:         TornadoRanking(results, primary),
		Grid:            grid,
		Risk:            risk,
		Recommendations: Recommendations(risk, TornadoRanking(results, primary), primary),
	}, nil
}

// analyzeVariable sweeps a single variable and computes per-metric stats.
func (a *Analyzer) analyzeVariable(req *domain.AnalysisRequest, spec domain.VariableSpec, base domain.ScenarioMetrics) domain.SensitivityResult {
	variations := sortedVariations(spec.Variations)

	points := make([]domain.ScenarioPoint, 0, len(variations))
	for _, variation := range variations {
		perturbed := Perturb(req.Scenario, spec.Variable, variation)
		metrics := a.Engine.Evaluate(perturbed, req.DiscountRate)

		impact := make(map[domain.Metric]decimal.Decimal, len(req.Metrics))
		for _, m := range req.Metrics {
			impact[m] = metrics.Value(m).Sub(base.Value(m))
		}

		points = append(points, domain.ScenarioPoint{
			VariationPercent: variation,
			VariableValue:    spec.Variable.BaseValue(perturbed),
			Metrics:          metrics,
			Impact:           impact,
		})
	}

	stats := make(map[domain.Metric]domain.SensitivityStats, len(req.Metrics))
	for _, m := range req.Metrics {
		stats[m] = computeStats(points, m)
	}

	return domain.SensitivityResult{
		Variable:  spec.Variable,
		BaseValue: spec.Variable.BaseValue(req.Scenario),
		Scenarios: points,
		Stats:     stats,
	}
}

// computeStats derives range, min/max and mean absolute elasticity for one
// metric across a variable's ordered sweep. Elasticity averages
// |Δmetric% / Δvariation| over consecutive pairs; pairs with an unchanged
// variation or a zero prior metric value are skipped, and with no valid pair
// elasticity is zero.
func computeStats(points []domain.ScenarioPoint, m domain.Metric) domain.SensitivityStats {
	if len(points) == 0 {
		return domain.SensitivityStats{}
	}

	min := points[0].Metrics.Value(m)
	max := min
	for _, p := range points[1:] {
		v := p.Metrics.Value(m)
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}

	sum := decimal.Zero
	pairs := 0
	for i := 0; i+1 < len(points); i++ {
		prev := points[i].Metrics.Value(m)
		deltaVariation := points[i+1].VariationPercent.Sub(points[i].VariationPercent)
		if deltaVariation.IsZero() || prev.IsZero() {
			continue
		}
		changePct := points[i+1].Metrics.Value(m).Sub(prev).Div(prev.Abs()).Mul(hundred)
		sum = sum.Add(changePct.Div(deltaVariation).Abs())
		pairs++
	}

	elasticity := decimal.Zero
	if pairs > 0 {
		elasticity = sum.Div(decimal.NewFromInt(int64(pairs)))
	}

	return domain.SensitivityStats{
		Range:      max.Sub(min),
		Elasticity: elasticity,
		Min:        min,
		Max:        max,
	}
}

// TornadoRanking orders variables by descending impact range on the primary
// metric.
func TornadoRanking(results []domain.SensitivityResult, primary domain.Metric) []domain.TornadoEntry {
	entries := make([]domain.TornadoEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, domain.TornadoEntry{
			Variable: r.Variable,
			Range:    r.Stats[primary].Range,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Range.GreaterThan(entries[j].Range)
	})

	return entries
}

// sortedVariations returns an ascending copy, keeping the caller's slice
// untouched.
func sortedVariations(variations []decimal.Decimal) []decimal.Decimal {
	sorted := make([]decimal.Decimal, len(variations))
	copy(sorted, variations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})
	return sorted
}
