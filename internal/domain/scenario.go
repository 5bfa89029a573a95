package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario describes one fully-parameterized investment case. All rate fields
// are percentages (7 means 7%), not fractions. A scenario is treated as an
// immutable value: perturbation always works on a fresh copy.
type Scenario struct {
	PurchasePrice      decimal.Decimal `yaml:"purchase_price" json:"purchasePrice"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"downPaymentPercent"`
	AnnualRentalIncome decimal.Decimal `yaml:"annual_rental_income" json:"annualRentalIncome"`
	AnnualExpenses     decimal.Decimal `yaml:"annual_expenses" json:"annualExpenses"`
	VacancyRate        decimal.Decimal `yaml:"vacancy_rate" json:"vacancyRate"`
	InterestRate       decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
	LoanTermYears      int             `yaml:"loan_term_years" json:"loanTermYears"`
	AppreciationRate   decimal.Decimal `yaml:"appreciation_rate" json:"appreciationRate"`
	HoldingPeriodYears int             `yaml:"holding_period_years" json:"holdingPeriodYears"`
}

// DownPayment returns the cash invested at purchase.
func (s Scenario) DownPayment() decimal.Decimal {
	return s.PurchasePrice.Mul(s.DownPaymentPercent).Div(decimal.NewFromInt(100))
}

// LoanAmount returns the financed portion of the purchase price.
func (s Scenario) LoanAmount() decimal.Decimal {
	return s.PurchasePrice.Sub(s.DownPayment())
}

// ScenarioMetrics is the output of evaluating one scenario. Every field is a
// derived value and is recomputed on each evaluation, never cached.
// IRR, CashOnCashReturn and TotalReturn are percentages; NPV and the cash flow
// fields are currency amounts.
type ScenarioMetrics struct {
	IRR              decimal.Decimal `json:"irr"`
	IRRConverged     bool            `json:"irrConverged"`
	NPV              decimal.Decimal `json:"npv"`
	CashOnCashReturn decimal.Decimal `json:"cashOnCashReturn"`
	TotalReturn      decimal.Decimal `json:"totalReturn"`
	MonthlyCashFlow  decimal.Decimal `json:"monthlyCashFlow"`
	AnnualCashFlow   decimal.Decimal `json:"annualCashFlow"`
	TotalInvestment  decimal.Decimal `json:"totalInvestment"`
	FinalEquity      decimal.Decimal `json:"finalEquity"`
}

// Metric identifies one output metric of a scenario evaluation.
type Metric string

const (
	MetricIRR             Metric = "irr"
	MetricNPV             Metric = "npv"
	MetricCashOnCash      Metric = "cash_on_cash"
	MetricTotalReturn     Metric = "total_return"
	MetricMonthlyCashFlow Metric = "monthly_cash_flow"
)

// AllMetrics returns every supported metric, IRR first. The first entry of a
// request's metric list is the primary metric used for tornado ranking and
// risk assessment, so the ordering here matters.
func AllMetrics() []Metric {
	return []Metric{MetricIRR, MetricNPV, MetricCashOnCash, MetricTotalReturn, MetricMonthlyCashFlow}
}

// IsValid reports whether m names a supported metric.
func (m Metric) IsValid() bool {
	switch m {
	case MetricIRR, MetricNPV, MetricCashOnCash, MetricTotalReturn, MetricMonthlyCashFlow:
		return true
	}
	return false
}

// Value extracts the named metric from the evaluated metrics.
func (sm ScenarioMetrics) Value(m Metric) decimal.Decimal {
	switch m {
	case MetricIRR:
		return sm.IRR
	case MetricNPV:
		return sm.NPV
	case MetricCashOnCash:
		return sm.CashOnCashReturn
	case MetricTotalReturn:
		return sm.TotalReturn
	case MetricMonthlyCashFlow:
		return sm.MonthlyCashFlow
	}
	return decimal.Zero
}
