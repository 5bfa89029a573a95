package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
)

const breakEvenMaxIterations = 50

var (
	breakEvenLowerBound = decimal.NewFromInt(-90)
	breakEvenUpperBound = decimal.NewFromInt(200)
	// Root tolerance is absolute currency: |NPV| under $100 counts as zero.
	breakEvenNPVTolerance = decimal.NewFromInt(100)
	// Interval tolerance in percentage points. Hitting this before the NPV
	// tolerance abandons the search, even if it had narrowed onto a root.
	breakEvenWidthTolerance = decimal.NewFromFloat(0.1)
)

// worsensWhenIncreased is the fixed direction-of-effect table for the
// bisection: increasing these variables pushes NPV down, so a positive NPV
// means the break-even change lies further up.
func worsensWhenIncreased(v domain.Variable) bool {
	switch v {
	case domain.VariableExpenses, domain.VariablePurchasePrice, domain.VariableInterestRate:
		return true
	}
	return false
}

// FindBreakEven bisects over a variable's perturbation percentage looking for
// the point where NPV crosses zero at the given discount rate. It returns nil
// when no root is found within the [-90, 200] search bounds and iteration
// budget. Margin of safety is 100 minus the absolute break-even change.
func (a *Analyzer) FindBreakEven(s domain.Scenario, v domain.Variable, discountRate decimal.Decimal) *domain.CriticalValue {
	low := breakEvenLowerBound
	high := breakEvenUpperBound

	for i := 0; i < breakEvenMaxIterations; i++ {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		perturbed := Perturb(s, v, mid)
		npv := a.Engine.NetPresentValue(perturbed, discountRate)

		if npv.Abs().LessThan(breakEvenNPVTolerance) {
			return &domain.CriticalValue{
				ChangePercent:  mid,
				VariableValue:  v.BaseValue(perturbed),
				MarginOfSafety: hundred.Sub(mid.Abs()),
			}
		}

		if high.Sub(low).LessThan(breakEvenWidthTolerance) {
			return nil
		}

		if worsensWhenIncreased(v) {
			if npv.GreaterThan(decimal.Zero) {
				low = mid
			} else {
				high = mid
			}
		} else {
			if npv.GreaterThan(decimal.Zero) {
				high = mid
			} else {
				low = mid
			}
		}
	}

	return nil
}
