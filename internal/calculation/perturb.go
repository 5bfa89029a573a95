package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

// Perturb derives a fresh scenario with one variable moved by
// variationPercent. The mapping from percentage to field is fixed per
// variable:
//
//   - purchase_price, rental_income, expenses: multiplicative,
//     newValue = base * (1 + variation/100)
//   - vacancy_rate: additive in percentage points, newValue = base + variation
//   - interest_rate, appreciation_rate: additive delta,
//     newValue = base + variation*base/100
//
// The vacancy rule is intentionally different in kind: a +10 variation means
// ten points of extra vacancy, not ten percent more of it.
func Perturb(base domain.Scenario, v domain.Variable, variationPercent decimal.Decimal) domain.Scenario {
	s := base

	switch v {
	case domain.VariablePurchasePrice:
		s.PurchasePrice = base.PurchasePrice.Mul(one.Add(variationPercent.Div(hundred)))
	case domain.VariableRentalIncome:
		s.AnnualRentalIncome = base.AnnualRentalIncome.Mul(one.Add(variationPercent.Div(hundred)))
	case domain.VariableExpenses:
		s.AnnualExpenses = base.AnnualExpenses.Mul(one.Add(variationPercent.Div(hundred)))
	case domain.VariableVacancyRate:
		s.VacancyRate = base.VacancyRate.Add(variationPercent)
	case domain.VariableInterestRate:
		s.InterestRate = base.InterestRate.Add(variationPercent.Mul(base.InterestRate).Div(hundred))
	case domain.VariableAppreciationRate:
		s.AppreciationRate = base.AppreciationRate.Add(variationPercent.Mul(base.AppreciationRate).Div(hundred))
	}

	return s
}
