// Package finance provides the amortization and valuation primitives the
// scenario evaluator is built on. Every function is pure and uses decimal
// arithmetic throughout.
package finance

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// MonthlyPayment returns the level payment that amortizes principal over
// numPayments at the given monthly rate (a fraction, not a percent).
// A zero rate degrades to straight-line principal division; a non-positive
// principal means no loan and returns zero.
func MonthlyPayment(principal, monthlyRate decimal.Decimal, numPayments int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || numPayments <= 0 {
		return decimal.Zero
	}
	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(numPayments)))
	}

	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(numPayments)))
	denom := factor.Sub(one)
	if denom.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(numPayments)))
	}
	return principal.Mul(monthlyRate).Mul(factor).Div(denom)
}

// RemainingBalance returns the loan balance after paymentsMade level payments
// of the amortizing payment over totalPayments. The balance is clamped at
// zero; once the loan is fully paid the result is exactly zero.
func RemainingBalance(principal, monthlyRate decimal.Decimal, totalPayments, paymentsMade int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || totalPayments <= 0 {
		return decimal.Zero
	}
	if paymentsMade >= totalPayments {
		return decimal.Zero
	}
	if paymentsMade <= 0 {
		return principal
	}

	payment := MonthlyPayment(principal, monthlyRate, totalPayments)

	var balance decimal.Decimal
	if monthlyRate.IsZero() {
		balance = principal.Sub(payment.Mul(decimal.NewFromInt(int64(paymentsMade))))
	} else {
		grown := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(paymentsMade)))
		balance = principal.Mul(grown).Sub(payment.Mul(grown.Sub(one)).Div(monthlyRate))
	}

	if balance.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return balance
}
