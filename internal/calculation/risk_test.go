package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma/proforma/internal/domain"
)

// resultWithProfile builds a single-variable result whose elasticity and
// worst negative-variation value are chosen directly.
func resultWithProfile(v domain.Variable, elasticity, downsideValue float64) domain.SensitivityResult {
	return domain.SensitivityResult{
		Variable: v,
		Stats: map[domain.Metric]domain.SensitivityStats{
			domain.MetricIRR: {Elasticity: decimal.NewFromFloat(elasticity)},
		},
		Scenarios: []domain.ScenarioPoint{
			{
				VariationPercent: decimal.NewFromInt(-10),
				Metrics:          domain.ScenarioMetrics{IRR: decimal.NewFromFloat(downsideValue)},
			},
			{
				VariationPercent: decimal.Zero,
				Metrics:          domain.ScenarioMetrics{IRR: decimal.NewFromInt(10)},
			},
		},
	}
}

func TestAssessRisk(t *testing.T) {
	base := domain.ScenarioMetrics{IRR: decimal.NewFromInt(10)}

	tests := []struct {
		name     string
		results  []domain.SensitivityResult
		expected domain.RiskLevel
	}{
		{
			name: "low elasticity and shallow downside",
			results: []domain.SensitivityResult{
				resultWithProfile(domain.VariableRentalIncome, 0.3, 9.5),
			},
			expected: domain.RiskLow,
		},
		{
			name: "moderate elasticity and downside",
			results: []domain.SensitivityResult{
				resultWithProfile(domain.VariableRentalIncome, 0.8, 7.5),
			},
			expected: domain.RiskMedium,
		},
		{
			name: "deep downside forces high risk",
			results: []domain.SensitivityResult{
				resultWithProfile(domain.VariableRentalIncome, 0.3, 4),
			},
			expected: domain.RiskHigh,
		},
		{
			name: "high average elasticity forces high risk",
			results: []domain.SensitivityResult{
				resultWithProfile(domain.VariableInterestRate, 1.6, 9.5),
			},
			expected: domain.RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := AssessRisk(tt.results, base, domain.MetricIRR)
			assert.Equal(t, tt.expected, assessment.RiskLevel)
		})
	}
}

func TestAssessRisk_CriticalVariables(t *testing.T) {
	base := domain.ScenarioMetrics{IRR: decimal.NewFromInt(10)}
	results := []domain.SensitivityResult{
		resultWithProfile(domain.VariableInterestRate, 1.6, 9.5), // critical via elasticity
		resultWithProfile(domain.VariableRentalIncome, 0.3, 6),   // critical via 40% downside
		resultWithProfile(domain.VariableExpenses, 0.4, 9.8),
	}

	assessment := AssessRisk(results, base, domain.MetricIRR)

	require.Len(t, assessment.CriticalVariables, 2)
	assert.Contains(t, assessment.CriticalVariables, domain.VariableInterestRate)
	assert.Contains(t, assessment.CriticalVariables, domain.VariableRentalIncome)
	assert.Equal(t, 1, assessment.HighSensitivityCount)
	assert.InDelta(t, 40, assessment.MaxDownsideRisk.InexactFloat64(), 0.001)
}

func TestAssessRisk_NoResults(t *testing.T) {
	assessment := AssessRisk(nil, domain.ScenarioMetrics{}, domain.MetricIRR)

	assert.Equal(t, domain.RiskLow, assessment.RiskLevel)
	assert.True(t, assessment.AverageElasticity.IsZero())
	assert.Empty(t, assessment.CriticalVariables)
}

func TestAssessRisk_ZeroBaseHasNoDownside(t *testing.T) {
	base := domain.ScenarioMetrics{IRR: decimal.Zero}
	results := []domain.SensitivityResult{
		resultWithProfile(domain.VariableRentalIncome, 0.3, -5),
	}

	assessment := AssessRisk(results, base, domain.MetricIRR)

	assert.True(t, assessment.MaxDownsideRisk.IsZero(),
		"Expected downside to be undefined with a zero base, got %s", assessment.MaxDownsideRisk)
}

func TestRecommendations(t *testing.T) {
	tornado := []domain.TornadoEntry{
		{Variable: domain.VariableRentalIncome, Range: decimal.NewFromInt(9)},
		{Variable: domain.VariableExpenses, Range: decimal.NewFromInt(3)},
	}

	t.Run("low risk", func(t *testing.T) {
		recs := Recommendations(domain.RiskAssessment{RiskLevel: domain.RiskLow}, tornado, domain.MetricIRR)

		assert.Contains(t, recs, "Returns are robust to the tested input changes")
		assert.Contains(t, recs, "rental income drives the widest irr swing; prioritize validating it")
		assert.Contains(t, recs, "Validate market rents against comparable listings before committing")
	})

	t.Run("high risk with critical variables", func(t *testing.T) {
		risk := domain.RiskAssessment{
			RiskLevel:         domain.RiskHigh,
			CriticalVariables: []domain.Variable{domain.VariableInterestRate},
		}

		recs := Recommendations(risk, tornado, domain.MetricIRR)

		assert.Contains(t, recs, "Returns are highly sensitive to input changes")

		found := false
		for _, rec := range recs {
			if rec == "Critical variables: interest rate — small changes here materially change the outcome" {
				found = true
			}
		}
		assert.True(t, found, "Expected a critical-variables line, got %v", recs)
	})

	t.Run("empty tornado still yields risk advice", func(t *testing.T) {
		recs := Recommendations(domain.RiskAssessment{RiskLevel: domain.RiskMedium}, nil, domain.MetricIRR)

		assert.NotEmpty(t, recs)
		assert.Contains(t, recs, "Returns are moderately sensitive to input changes")
	})
}
