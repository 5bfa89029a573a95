package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

var (
	highElasticityThreshold     = decimal.NewFromInt(1)
	criticalElasticityThreshold = decimal.NewFromFloat(1.5)
	criticalDownsideThreshold   = decimal.NewFromInt(30)

	lowRiskElasticity    = decimal.NewFromFloat(0.5)
	lowRiskDownside      = decimal.NewFromInt(20)
	mediumRiskElasticity = decimal.NewFromInt(1)
	mediumRiskDownside   = decimal.NewFromInt(40)
)

// AssessRisk aggregates per-variable elasticity and downside into a
// qualitative risk classification for the primary metric.
func AssessRisk(results []domain.SensitivityResult, base domain.ScenarioMetrics, primary domain.Metric) domain.RiskAssessment {
	assessment := domain.RiskAssessment{RiskLevel: domain.RiskLow}
	if len(results) == 0 {
		return assessment
	}

	elasticitySum := decimal.Zero
	baseValue := base.Value(primary)

	for _, result := range results {
		elasticity := result.Stats[primary].Elasticity
		elasticitySum = elasticitySum.Add(elasticity)

		if elasticity.GreaterThan(highElasticityThreshold) {
			assessment.HighSensitivityCount++
		}

		downside := maxDownside(result, baseValue, primary)
		if downside.GreaterThan(assessment.MaxDownsideRisk) {
			assessment.MaxDownsideRisk = downside
		}

		if elasticity.GreaterThan(criticalElasticityThreshold) || downside.GreaterThan(criticalDownsideThreshold) {
			assessment.CriticalVariables = append(assessment.CriticalVariables, result.Variable)
		}
	}

	assessment.AverageElasticity = elasticitySum.Div(decimal.NewFromInt(int64(len(results))))

	switch {
	case assessment.AverageElasticity.LessThan(lowRiskElasticity) && assessment.MaxDownsideRisk.LessThan(lowRiskDownside):
		assessment.RiskLevel = domain.RiskLow
	case assessment.AverageElasticity.LessThan(mediumRiskElasticity) && assessment.MaxDownsideRisk.LessThan(mediumRiskDownside):
		assessment.RiskLevel = domain.RiskMedium
	default:
		assessment.RiskLevel = domain.RiskHigh
	}

	return assessment
}

// maxDownside is the worst percentage drop in the primary metric across a
// variable's negative variations, relative to the base case. A zero base
// value makes the drop undefined and yields zero.
func maxDownside(result domain.SensitivityResult, baseValue decimal.Decimal, primary domain.Metric) decimal.Decimal {
	if baseValue.IsZero() {
		return decimal.Zero
	}

	worst := decimal.Zero
	for _, point := range result.Scenarios {
		if !point.VariationPercent.IsNegative() {
			continue
		}
		drop := baseValue.Sub(point.Metrics.Value(primary)).Div(baseValue.Abs()).Mul(hundred)
		if drop.GreaterThan(worst) {
			worst = drop
		}
	}
	return worst
}

// Recommendations renders deterministic advisory text from the risk
// assessment and tornado ranking.
func Recommendations(risk domain.RiskAssessment, tornado []domain.TornadoEntry, primary domain.Metric) []string {
	recommendations := []string{}

	switch risk.RiskLevel {
	case domain.RiskLow:
		recommendations = append(recommendations,
			"Returns are robust to the tested input changes",
			"Current assumptions leave a comfortable margin")
	case domain.RiskMedium:
		recommendations = append(recommendations,
			"Returns are moderately sensitive to input changes",
			"Re-verify the most impactful assumptions before committing")
	case domain.RiskHigh:
		recommendations = append(recommendations,
			"Returns are highly sensitive to input changes",
			"Stress-test the deal with pessimistic assumptions before proceeding")
	}

	if len(tornado) > 0 {
		top := tornado[0].Variable
		recommendations = append(recommendations,
			fmt.Sprintf("%s drives the widest %s swing; prioritize validating it", variableLabel(top), primary))
		if advice := variableAdvice(top); advice != "" {
			recommendations = append(recommendations, advice)
		}
	}

	if len(risk.CriticalVariables) > 0 {
		labels := make([]string, 0, len(risk.CriticalVariables))
		for _, v := range risk.CriticalVariables {
			labels = append(labels, variableLabel(v))
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Critical variables: %s — small changes here materially change the outcome", strings.Join(labels, ", ")))
	}

	return recommendations
}

// variableAdvice maps each variable to its standing recommendation.
func variableAdvice(v domain.Variable) string {
	switch v {
	case domain.VariablePurchasePrice:
		return "Negotiate the purchase price; returns move almost one-for-one with the entry basis"
	case domain.VariableRentalIncome:
		return "Validate market rents against comparable listings before committing"
	case domain.VariableExpenses:
		return "Budget an operating expense reserve; overruns erode cash flow quickly"
	case domain.VariableVacancyRate:
		return "Underwrite with a conservative vacancy allowance and screen tenants carefully"
	case domain.VariableInterestRate:
		return "Consider locking the financing rate early or pricing in a rate buffer"
	case domain.VariableAppreciationRate:
		return "Do not rely on appreciation; the deal should work on cash flow alone"
	}
	return ""
}

func variableLabel(v domain.Variable) string {
	return strings.ReplaceAll(string(v), "_", " ")
}
