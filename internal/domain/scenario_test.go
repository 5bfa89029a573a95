package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScenario_DownPaymentAndLoanAmount(t *testing.T) {
	s := Scenario{
		PurchasePrice:      decimal.NewFromInt(200000),
		DownPaymentPercent: decimal.NewFromInt(20),
	}

	assert.True(t, s.DownPayment().Equal(decimal.NewFromInt(40000)),
		"Expected down payment 40000, got %s", s.DownPayment())
	assert.True(t, s.LoanAmount().Equal(decimal.NewFromInt(160000)),
		"Expected loan amount 160000, got %s", s.LoanAmount())
}

func TestScenario_AllCashPurchase(t *testing.T) {
	s := Scenario{
		PurchasePrice:      decimal.NewFromInt(150000),
		DownPaymentPercent: decimal.NewFromInt(100),
	}

	assert.True(t, s.DownPayment().Equal(s.PurchasePrice))
	assert.True(t, s.LoanAmount().IsZero())
}

func TestMetric_IsValid(t *testing.T) {
	for _, m := range AllMetrics() {
		assert.True(t, m.IsValid(), "Expected %s to be valid", m)
	}
	assert.False(t, Metric("cap_rate").IsValid())
	assert.False(t, Metric("").IsValid())
}

func TestAllMetrics_IRRFirst(t *testing.T) {
	metrics := AllMetrics()

	assert.Len(t, metrics, 5)
	assert.Equal(t, MetricIRR, metrics[0])
}

func TestScenarioMetrics_Value(t *testing.T) {
	metrics := ScenarioMetrics{
		IRR:              decimal.NewFromInt(12),
		NPV:              decimal.NewFromInt(18000),
		CashOnCashReturn: decimal.NewFromInt(5),
		TotalReturn:      decimal.NewFromInt(120),
		MonthlyCashFlow:  decimal.NewFromInt(170),
	}

	tests := []struct {
		metric   Metric
		expected decimal.Decimal
	}{
		{MetricIRR, decimal.NewFromInt(12)},
		{MetricNPV, decimal.NewFromInt(18000)},
		{MetricCashOnCash, decimal.NewFromInt(5)},
		{MetricTotalReturn, decimal.NewFromInt(120)},
		{MetricMonthlyCashFlow, decimal.NewFromInt(170)},
		{Metric("bogus"), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			assert.True(t, metrics.Value(tt.metric).Equal(tt.expected),
				"Expected %s, got %s", tt.expected, metrics.Value(tt.metric))
		})
	}
}

func TestVariable_IsValid(t *testing.T) {
	for _, v := range AllVariables() {
		assert.True(t, v.IsValid(), "Expected %s to be valid", v)
	}
	assert.False(t, Variable("square_footage").IsValid())
}

func TestVariable_BaseValue(t *testing.T) {
	s := Scenario{
		PurchasePrice:      decimal.NewFromInt(200000),
		AnnualRentalIncome: decimal.NewFromInt(24000),
		AnnualExpenses:     decimal.NewFromInt(8000),
		VacancyRate:        decimal.NewFromInt(5),
		InterestRate:       decimal.NewFromInt(7),
		AppreciationRate:   decimal.NewFromInt(3),
	}

	assert.True(t, VariablePurchasePrice.BaseValue(s).Equal(decimal.NewFromInt(200000)))
	assert.True(t, VariableRentalIncome.BaseValue(s).Equal(decimal.NewFromInt(24000)))
	assert.True(t, VariableExpenses.BaseValue(s).Equal(decimal.NewFromInt(8000)))
	assert.True(t, VariableVacancyRate.BaseValue(s).Equal(decimal.NewFromInt(5)))
	assert.True(t, VariableInterestRate.BaseValue(s).Equal(decimal.NewFromInt(7)))
	assert.True(t, VariableAppreciationRate.BaseValue(s).Equal(decimal.NewFromInt(3)))
}

func TestDefaultVariations(t *testing.T) {
	variations := DefaultVariations()

	assert.Len(t, variations, 5)
	for i := 1; i < len(variations); i++ {
		assert.True(t, variations[i].GreaterThan(variations[i-1]),
			"Expected ascending default variations")
	}
	assert.True(t, variations[2].IsZero(), "Expected the base case in the middle")
}

func TestAnalysisRequest_PrimaryMetric(t *testing.T) {
	req := AnalysisRequest{Metrics: []Metric{MetricNPV, MetricIRR}}
	assert.Equal(t, MetricNPV, req.PrimaryMetric())

	empty := AnalysisRequest{}
	assert.Equal(t, MetricIRR, empty.PrimaryMetric(), "Expected IRR as the fallback primary metric")
}
