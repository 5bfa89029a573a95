package domain

import (
	"github.com/shopspring/decimal"
)

// Variable identifies one scenario input that can be perturbed.
type Variable string

const (
	VariablePurchasePrice    Variable = "purchase_price"
	VariableRentalIncome     Variable = "rental_income"
	VariableExpenses         Variable = "expenses"
	VariableVacancyRate      Variable = "vacancy_rate"
	VariableInterestRate     Variable = "interest_rate"
	VariableAppreciationRate Variable = "appreciation_rate"
)

// AllVariables returns every perturbable variable.
func AllVariables() []Variable {
	return []Variable{
		VariablePurchasePrice,
		VariableRentalIncome,
		VariableExpenses,
		VariableVacancyRate,
		VariableInterestRate,
		VariableAppreciationRate,
	}
}

// IsValid reports whether v names a supported variable.
func (v Variable) IsValid() bool {
	switch v {
	case VariablePurchasePrice, VariableRentalIncome, VariableExpenses,
		VariableVacancyRate, VariableInterestRate, VariableAppreciationRate:
		return true
	}
	return false
}

// BaseValue returns the scenario field the variable perturbs.
func (v Variable) BaseValue(s Scenario) decimal.Decimal {
	switch v {
	case VariablePurchasePrice:
		return s.PurchasePrice
	case VariableRentalIncome:
		return s.AnnualRentalIncome
	case VariableExpenses:
		return s.AnnualExpenses
	case VariableVacancyRate:
		return s.VacancyRate
	case VariableInterestRate:
		return s.InterestRate
	case VariableAppreciationRate:
		return s.AppreciationRate
	}
	return decimal.Zero
}

// DefaultVariations is the symmetric variation set applied when a request
// does not supply its own, in ascending order.
func DefaultVariations() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromInt(-20),
		decimal.NewFromInt(-10),
		decimal.Zero,
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
	}
}

// DefaultDiscountRate is applied when a request omits the discount rate, in
// percent.
var DefaultDiscountRate = decimal.NewFromInt(10)

// VariableSpec selects a variable and the variation percentages to test.
type VariableSpec struct {
	Variable   Variable          `yaml:"variable" json:"variable"`
	Variations []decimal.Decimal `yaml:"variations,omitempty" json:"variations,omitempty"`
}

// AnalysisRequest is a fully-resolved sensitivity analysis request. Defaults
// (variations, metrics, discount rate) are filled in at the input boundary;
// the engine assumes every field is populated and valid.
type AnalysisRequest struct {
	Scenario     Scenario        `yaml:"scenario" json:"scenario"`
	Variables    []VariableSpec  `yaml:"variables" json:"variables"`
	Metrics      []Metric        `yaml:"metrics" json:"metrics"`
	DiscountRate decimal.Decimal `yaml:"discount_rate" json:"discountRate"`
}

// PrimaryMetric returns the metric driving tornado ranking and risk
// assessment: the first requested metric.
func (r *AnalysisRequest) PrimaryMetric() Metric {
	if len(r.Metrics) == 0 {
		return MetricIRR
	}
	return r.Metrics[0]
}

// ScenarioPoint is one perturbed evaluation within a variable's sweep.
type ScenarioPoint struct {
	VariationPercent decimal.Decimal            `json:"variationPercent"`
	VariableValue    decimal.Decimal            `json:"variableValue"`
	Metrics          ScenarioMetrics            `json:"metrics"`
	Impact           map[Metric]decimal.Decimal `json:"impact"`
}

// SensitivityStats aggregates a variable's effect on one metric across its
// tested variations.
type SensitivityStats struct {
	Range      decimal.Decimal `json:"range"`
	Elasticity decimal.Decimal `json:"elasticity"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}

// SensitivityResult is the full sweep result for one variable. Scenarios are
// ordered by ascending variation percentage.
type SensitivityResult struct {
	Variable  Variable                    `json:"variable"`
	BaseValue decimal.Decimal             `json:"baseValue"`
	Scenarios []ScenarioPoint             `json:"scenarios"`
	Stats     map[Metric]SensitivityStats `json:"stats"`
	BreakEven *CriticalValue              `json:"breakEven,omitempty"`
}

// CriticalValue is the perturbation at which NPV crosses zero. A nil
// CriticalValue on a result means no root was found within the search bounds.
type CriticalValue struct {
	ChangePercent  decimal.Decimal `json:"changePercent"`
	VariableValue  decimal.Decimal `json:"variableValue"`
	MarginOfSafety decimal.Decimal `json:"marginOfSafety"`
}

// TornadoEntry ranks one variable by its impact range on the primary metric.
type TornadoEntry struct {
	Variable Variable        `json:"variable"`
	Range    decimal.Decimal `json:"range"`
}

// GridAnalysis is a two-way sweep of the first two requested variables.
// Values is row-major: rows follow Variations1, columns follow Variations2.
type GridAnalysis struct {
	Variable1   Variable            `json:"variable1"`
	Variable2   Variable            `json:"variable2"`
	Metric      Metric              `json:"metric"`
	Variations1 []decimal.Decimal   `json:"variations1"`
	Variations2 []decimal.Decimal   `json:"variations2"`
	Values      [][]decimal.Decimal `json:"values"`
}

// RiskLevel is a qualitative sensitivity classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskAssessment aggregates per-variable sensitivity into a qualitative view.
type RiskAssessment struct {
	AverageElasticity    decimal.Decimal `json:"averageElasticity"`
	MaxDownsideRisk      decimal.Decimal `json:"maxDownsideRisk"`
	HighSensitivityCount int             `json:"highSensitivityCount"`
	CriticalVariables    []Variable      `json:"criticalVariables"`
	RiskLevel            RiskLevel       `json:"riskLevel"`
}

// AnalysisReport is the complete output of a sensitivity analysis run.
type AnalysisReport struct {
	Scenario        Scenario            `json:"scenario"`
	DiscountRate    decimal.Decimal     `json:"discountRate"`
	PrimaryMetric   Metric              `json:"primaryMetric"`
	BaseMetrics     ScenarioMetrics     `json:"baseMetrics"`
	Results         []SensitivityResult `json:"results"`
	Tornado         []TornadoEntry      `json:"tornado"`
	Grid            *GridAnalysis       `json:"grid,omitempty"`
	Risk            RiskAssessment      `json:"risk"`
	Recommendations []string            `json:"recommendations"`
}
