package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/proforma/proforma/internal/domain"
	"github.com/proforma/proforma/internal/finance"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Engine evaluates fully-specified scenarios into metrics. It holds no
// cross-call state; a single Engine is safe to share between callers.
type Engine struct {
	Logger Logger
}

// NewEngine creates a scenario evaluation engine.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger installs NopLogger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// annualCashFlow is NOI minus annual debt service.
func (e *Engine) annualCashFlow(s domain.Scenario) decimal.Decimal {
	monthlyRate := s.InterestRate.Div(hundred).Div(twelve)
	payments := s.LoanTermYears * 12
	debtService := finance.MonthlyPayment(s.LoanAmount(), monthlyRate, payments).Mul(twelve)

	effectiveIncome := s.AnnualRentalIncome.Mul(one.Sub(s.VacancyRate.Div(hundred)))
	noi := effectiveIncome.Sub(s.AnnualExpenses)
	return noi.Sub(debtService)
}

// finalEquity is the appreciated property value at the end of the holding
// period minus the remaining loan balance.
func (e *Engine) finalEquity(s domain.Scenario) decimal.Decimal {
	futureValue := s.PurchasePrice.Mul(
		one.Add(s.AppreciationRate.Div(hundred)).Pow(decimal.NewFromInt(int64(s.HoldingPeriodYears))))

	monthlyRate := s.InterestRate.Div(hundred).Div(twelve)
	remaining := finance.RemainingBalance(
		s.LoanAmount(), monthlyRate, s.LoanTermYears*12, s.HoldingPeriodYears*12)

	return futureValue.Sub(remaining)
}

// BuildCashFlows builds the annual cash-flow vector for a scenario:
// index 0 is the negative initial investment, indices 1..N-1 the annual net
// cash flow, and index N the final year's cash flow plus net sale proceeds.
func (e *Engine) BuildCashFlows(s domain.Scenario) []decimal.Decimal {
	annual := e.annualCashFlow(s)

	flows := make([]decimal.Decimal, s.HoldingPeriodYears+1)
	flows[0] = s.DownPayment().Neg()
	for year := 1; year < s.HoldingPeriodYears; year++ {
		flows[year] = annual
	}
	flows[s.HoldingPeriodYears] = annual.Add(e.finalEquity(s))

	return flows
}

// NetPresentValue evaluates just the NPV of a scenario at the given discount
// rate (percent). The break-even solver calls this in its inner loop.
func (e *Engine) NetPresentValue(s domain.Scenario, discountRate decimal.Decimal) decimal.Decimal {
	return finance.NPV(e.BuildCashFlows(s), discountRate.Div(hundred))
}

// Evaluate computes the full metric set for a scenario at the given discount
// rate (percent). It is a pure function of its inputs: identical inputs yield
// identical metrics.
func (e *Engine) Evaluate(s domain.Scenario, discountRate decimal.Decimal) domain.ScenarioMetrics {
	downPayment := s.DownPayment()
	annual := e.annualCashFlow(s)
	flows := e.BuildCashFlows(s)

	irr := finance.IRR(flows)
	npv := finance.NPV(flows, discountRate.Div(hundred))

	// Zero down payment makes cash-on-cash and total return undefined;
	// both report zero instead of dividing by zero.
	cashOnCash := decimal.Zero
	totalReturn := decimal.Zero
	if !downPayment.IsZero() {
		cashOnCash = annual.Div(downPayment).Mul(hundred)

		received := decimal.Zero
		for _, cf := range flows[1:] {
			received = received.Add(cf)
		}
		totalReturn = received.Sub(downPayment).Div(downPayment).Mul(hundred)
	}

	return domain.ScenarioMetrics{
		IRR:              irr.Rate.Mul(hundred),
		IRRConverged:     irr.Converged,
		NPV:              npv,
		CashOnCashReturn: cashOnCash,
		TotalReturn:      totalReturn,
		MonthlyCashFlow:  annual.Div(twelve),
		AnnualCashFlow:   annual,
		TotalInvestment:  downPayment,
		FinalEquity:      e.finalEquity(s),
	}
}
