package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proforma/proforma/internal/domain"
)

func TestAnalyzer_AnalyzeGrid(t *testing.T) {
	analyzer := NewAnalyzer()
	variations := []decimal.Decimal{
		decimal.NewFromInt(-10),
		decimal.Zero,
		decimal.NewFromInt(10),
	}
	req := &domain.AnalysisRequest{
		Scenario:     testScenario(),
		Metrics:      domain.AllMetrics(),
		DiscountRate: decimal.NewFromInt(10),
	}
	spec1 := domain.VariableSpec{Variable: domain.VariableRentalIncome, Variations: variations}
	spec2 := domain.VariableSpec{Variable: domain.VariableExpenses, Variations: variations}

	grid := analyzer.AnalyzeGrid(req, spec1, spec2)

	require.NotNil(t, grid)
	assert.Equal(t, domain.VariableRentalIncome, grid.Variable1)
	assert.Equal(t, domain.VariableExpenses, grid.Variable2)
	assert.Equal(t, domain.MetricIRR, grid.Metric)
	require.Len(t, grid.Values, 3)
	for _, row := range grid.Values {
		require.Len(t, row, 3)
	}

	// The center cell is the unperturbed base case.
	base := analyzer.Engine.Evaluate(req.Scenario, req.DiscountRate)
	assert.True(t, grid.Values[1][1].Equal(base.IRR),
		"Expected the center cell to equal the base IRR, got %s vs %s", grid.Values[1][1], base.IRR)

	// More rent is better, more expenses are worse.
	assert.True(t, grid.Values[2][1].GreaterThan(grid.Values[0][1]),
		"Expected IRR to rise with rental income down the rows")
	assert.True(t, grid.Values[1][0].GreaterThan(grid.Values[1][2]),
		"Expected IRR to fall with expenses across the columns")
}

func TestAnalyzer_AnalyzeGrid_SortsVariations(t *testing.T) {
	analyzer := NewAnalyzer()
	req := &domain.AnalysisRequest{
		Scenario:     testScenario(),
		Metrics:      domain.AllMetrics(),
		DiscountRate: decimal.NewFromInt(10),
	}
	unsorted := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromInt(-10),
		decimal.Zero,
	}
	spec := domain.VariableSpec{Variable: domain.VariablePurchasePrice, Variations: unsorted}

	grid := analyzer.AnalyzeGrid(req, spec, spec)

	require.Len(t, grid.Variations1, 3)
	assert.True(t, grid.Variations1[0].Equal(decimal.NewFromInt(-10)))
	assert.True(t, grid.Variations1[1].Equal(decimal.Zero))
	assert.True(t, grid.Variations1[2].Equal(decimal.NewFromInt(10)))
}
