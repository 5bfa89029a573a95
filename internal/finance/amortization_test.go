package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name        string
		principal   decimal.Decimal
		monthlyRate decimal.Decimal
		numPayments int
		expected    float64
		delta       float64
	}{
		{
			name:        "30-year loan at 7 percent",
			principal:   decimal.NewFromInt(160000),
			monthlyRate: decimal.NewFromInt(7).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12)),
			numPayments: 360,
			expected:    1064.48,
			delta:       0.5,
		},
		{
			name:        "15-year loan at 6 percent",
			principal:   decimal.NewFromInt(200000),
			monthlyRate: decimal.NewFromInt(6).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12)),
			numPayments: 180,
			expected:    1687.71,
			delta:       0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := MonthlyPayment(tt.principal, tt.monthlyRate, tt.numPayments)
			assert.InDelta(t, tt.expected, payment.InexactFloat64(), tt.delta,
				"Expected payment near %v, got %s", tt.expected, payment)
		})
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	payment := MonthlyPayment(decimal.NewFromInt(120000), decimal.Zero, 120)
	assert.True(t, payment.Equal(decimal.NewFromInt(1000)),
		"Expected straight-line payment of 1000, got %s", payment)
}

func TestMonthlyPayment_NoLoan(t *testing.T) {
	payment := MonthlyPayment(decimal.Zero, decimal.NewFromFloat(0.005), 360)
	assert.True(t, payment.IsZero(), "Expected zero payment for zero principal, got %s", payment)

	payment = MonthlyPayment(decimal.NewFromInt(-5000), decimal.NewFromFloat(0.005), 360)
	assert.True(t, payment.IsZero(), "Expected zero payment for negative principal, got %s", payment)

	payment = MonthlyPayment(decimal.NewFromInt(100000), decimal.NewFromFloat(0.005), 0)
	assert.True(t, payment.IsZero(), "Expected zero payment for zero term, got %s", payment)
}

func TestRemainingBalance(t *testing.T) {
	principal := decimal.NewFromInt(160000)
	monthlyRate := decimal.NewFromInt(7).Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))

	t.Run("no payments made", func(t *testing.T) {
		balance := RemainingBalance(principal, monthlyRate, 360, 0)
		assert.True(t, balance.Equal(principal),
			"Expected full principal, got %s", balance)
	})

	t.Run("after five years", func(t *testing.T) {
		balance := RemainingBalance(principal, monthlyRate, 360, 60)
		assert.InDelta(t, 150611, balance.InexactFloat64(), 100,
			"Expected balance near 150611, got %s", balance)
	})

	t.Run("fully paid is exactly zero", func(t *testing.T) {
		balance := RemainingBalance(principal, monthlyRate, 360, 360)
		assert.True(t, balance.IsZero(), "Expected exactly zero at term end, got %s", balance)
	})

	t.Run("overpaid is exactly zero", func(t *testing.T) {
		balance := RemainingBalance(principal, monthlyRate, 360, 400)
		assert.True(t, balance.IsZero(), "Expected exactly zero past term end, got %s", balance)
	})
}

func TestRemainingBalance_ZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(120000)

	balance := RemainingBalance(principal, decimal.Zero, 120, 60)
	assert.True(t, balance.Equal(decimal.NewFromInt(60000)),
		"Expected half the principal remaining, got %s", balance)
}

func TestRemainingBalance_NoLoan(t *testing.T) {
	balance := RemainingBalance(decimal.Zero, decimal.NewFromFloat(0.005), 360, 60)
	assert.True(t, balance.IsZero(), "Expected zero balance for zero principal, got %s", balance)
}
