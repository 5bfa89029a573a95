package finance

import (
	"github.com/shopspring/decimal"
)

const irrMaxIterations = 100

var (
	irrSeedRate  = decimal.NewFromFloat(0.10)
	irrTolerance = decimal.NewFromFloat(0.00001)
	// Newton steps can overshoot below -100%, where discount factors blow up.
	// The estimate is pinned just above that boundary instead.
	irrFloorRate = decimal.NewFromFloat(-0.9999)
)

// IRRResult carries the Newton-Raphson estimate together with whether the
// iteration actually converged. Callers that only want the classic behavior
// read Rate and ignore Converged: an exhausted search still reports its last
// estimate.
type IRRResult struct {
	Rate      decimal.Decimal
	Converged bool
}

// NPV returns the net present value of cashFlows at the given discount rate
// (a fraction). Index 0 is discounted by (1+rate)^0, i.e. included at face
// value.
func NPV(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, cf := range cashFlows {
		denom := one.Add(rate).Pow(decimal.NewFromInt(int64(i)))
		if denom.IsZero() {
			continue
		}
		total = total.Add(cf.Div(denom))
	}
	return total
}

// npvDerivative is d(NPV)/d(rate), used as the Newton step denominator.
func npvDerivative(cashFlows []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i := 1; i < len(cashFlows); i++ {
		denom := one.Add(rate).Pow(decimal.NewFromInt(int64(i + 1)))
		if denom.IsZero() {
			continue
		}
		step := cashFlows[i].Mul(decimal.NewFromInt(int64(i))).Div(denom)
		total = total.Sub(step)
	}
	return total
}

// IRR finds the internal rate of return of cashFlows by Newton-Raphson,
// seeded at 10%. It stops when successive estimates differ by less than 1e-5
// or after 100 iterations; in the latter case the last estimate is returned
// with Converged false. A flat derivative also ends the search unconverged
// rather than dividing by zero.
func IRR(cashFlows []decimal.Decimal) IRRResult {
	rate := irrSeedRate

	for i := 0; i < irrMaxIterations; i++ {
		derivative := npvDerivative(cashFlows, rate)
		if derivative.IsZero() {
			return IRRResult{Rate: rate, Converged: false}
		}

		next := rate.Sub(NPV(cashFlows, rate).Div(derivative))
		if next.LessThanOrEqual(decimal.NewFromInt(-1)) {
			next = irrFloorRate
		}

		if next.Sub(rate).Abs().LessThan(irrTolerance) {
			return IRRResult{Rate: next, Converged: true}
		}
		rate = next
	}

	return IRRResult{Rate: rate, Converged: false}
}
