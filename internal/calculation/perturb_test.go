package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/proforma/proforma/internal/domain"
)

func TestPerturb(t *testing.T) {
	tests := []struct {
		name      string
		variable  domain.Variable
		variation decimal.Decimal
		expected  decimal.Decimal
	}{
		{
			name:      "purchase price scales multiplicatively",
			variable:  domain.VariablePurchasePrice,
			variation: decimal.NewFromInt(10),
			expected:  decimal.NewFromInt(220000),
		},
		{
			name:      "rental income scales multiplicatively",
			variable:  domain.VariableRentalIncome,
			variation: decimal.NewFromInt(10),
			expected:  decimal.NewFromInt(26400),
		},
		{
			name:      "expenses scale multiplicatively",
			variable:  domain.VariableExpenses,
			variation: decimal.NewFromInt(-20),
			expected:  decimal.NewFromInt(6400),
		},
		{
			name:      "vacancy moves in percentage points, not percent of itself",
			variable:  domain.VariableVacancyRate,
			variation: decimal.NewFromInt(10),
			expected:  decimal.NewFromInt(15),
		},
		{
			name:      "interest rate moves by a relative delta",
			variable:  domain.VariableInterestRate,
			variation: decimal.NewFromInt(10),
			expected:  decimal.NewFromFloat(7.7),
		},
		{
			name:      "appreciation rate moves by a relative delta",
			variable:  domain.VariableAppreciationRate,
			variation: decimal.NewFromInt(-10),
			expected:  decimal.NewFromFloat(2.7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perturbed := Perturb(testScenario(), tt.variable, tt.variation)
			value := tt.variable.BaseValue(perturbed)
			assert.True(t, value.Equal(tt.expected),
				"Expected %s, got %s", tt.expected, value)
		})
	}
}

func TestPerturb_ZeroVariationKeepsValues(t *testing.T) {
	base := testScenario()

	for _, v := range domain.AllVariables() {
		perturbed := Perturb(base, v, decimal.Zero)
		assert.True(t, v.BaseValue(perturbed).Equal(v.BaseValue(base)),
			"Expected %s unchanged at zero variation, got %s", v, v.BaseValue(perturbed))
	}
}

func TestPerturb_OnlyTargetFieldChanges(t *testing.T) {
	base := testScenario()

	perturbed := Perturb(base, domain.VariableRentalIncome, decimal.NewFromInt(20))

	assert.True(t, perturbed.AnnualRentalIncome.Equal(decimal.NewFromInt(28800)))
	assert.True(t, perturbed.PurchasePrice.Equal(base.PurchasePrice))
	assert.True(t, perturbed.AnnualExpenses.Equal(base.AnnualExpenses))
	assert.True(t, perturbed.VacancyRate.Equal(base.VacancyRate))
	assert.True(t, perturbed.InterestRate.Equal(base.InterestRate))
	assert.True(t, perturbed.AppreciationRate.Equal(base.AppreciationRate))
	assert.Equal(t, base.LoanTermYears, perturbed.LoanTermYears)
	assert.Equal(t, base.HoldingPeriodYears, perturbed.HoldingPeriodYears)
}

func TestPerturb_BaseIsNotMutated(t *testing.T) {
	base := testScenario()
	original := base

	Perturb(base, domain.VariableVacancyRate, decimal.NewFromInt(10))
	Perturb(base, domain.VariablePurchasePrice, decimal.NewFromInt(-20))

	assert.Equal(t, original, base, "Expected the input scenario to stay untouched")
}
