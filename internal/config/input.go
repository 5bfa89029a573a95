package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/proforma/proforma/internal/domain"
)

// Reasonable domain bounds for rate inputs. Values outside these are treated
// as input contract violations at the boundary; the engine never re-checks.
var (
	maxInterestRate     = decimal.NewFromInt(30)
	minAppreciationRate = decimal.NewFromInt(-10)
	maxAppreciationRate = decimal.NewFromInt(20)
	maxDiscountRate     = decimal.NewFromInt(100)
)

// InputParser handles parsing of analysis request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an analysis request from a YAML file, validates it and
// resolves defaults. The returned request is fully populated.
func (ip *InputParser) LoadFromFile(filename string) (*domain.AnalysisRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req domain.AnalysisRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	ip.ApplyDefaults(&req)

	return &req, nil
}

// Validate checks the request against the input contract.
func (ip *InputParser) Validate(req *domain.AnalysisRequest) error {
	if err := ip.validateScenario(&req.Scenario); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}

	if len(req.Variables) == 0 {
		return fmt.Errorf("at least one sensitivity variable is required")
	}
	for i, spec := range req.Variables {
		if !spec.Variable.IsValid() {
			return fmt.Errorf("variable %d: unknown variable %q", i, spec.Variable)
		}
	}

	for i, m := range req.Metrics {
		if !m.IsValid() {
			return fmt.Errorf("metric %d: unknown metric %q", i, m)
		}
	}

	if req.DiscountRate.IsNegative() || req.DiscountRate.GreaterThan(maxDiscountRate) {
		return fmt.Errorf("discount rate must be between 0%% and 100%%, got %s%%", req.DiscountRate)
	}

	return nil
}

func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.PurchasePrice.IsNegative() {
		return fmt.Errorf("purchase price cannot be negative")
	}
	if s.AnnualRentalIncome.IsNegative() {
		return fmt.Errorf("annual rental income cannot be negative")
	}
	if s.AnnualExpenses.IsNegative() {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	if s.DownPaymentPercent.IsNegative() || s.DownPaymentPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("down payment percent must be between 0 and 100, got %s", s.DownPaymentPercent)
	}
	if s.VacancyRate.IsNegative() || s.VacancyRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("vacancy rate must be between 0 and 100, got %s", s.VacancyRate)
	}
	if s.InterestRate.IsNegative() || s.InterestRate.GreaterThan(maxInterestRate) {
		return fmt.Errorf("interest rate must be between 0%% and 30%%, got %s%%", s.InterestRate)
	}
	if s.AppreciationRate.LessThan(minAppreciationRate) || s.AppreciationRate.GreaterThan(maxAppreciationRate) {
		return fmt.Errorf("appreciation rate must be between -10%% and 20%%, got %s%%", s.AppreciationRate)
	}
	if s.LoanTermYears <= 0 {
		return fmt.Errorf("loan term must be positive, got %d", s.LoanTermYears)
	}
	if s.HoldingPeriodYears <= 0 {
		return fmt.Errorf("holding period must be positive, got %d", s.HoldingPeriodYears)
	}
	return nil
}

// ApplyDefaults resolves the request's optional fields once, at the boundary:
// an omitted variation list becomes the symmetric ±20/±10/0 set, an omitted
// metric list becomes every metric with IRR first, and a zero discount rate
// becomes 10%.
func (ip *InputParser) ApplyDefaults(req *domain.AnalysisRequest) {
	for i := range req.Variables {
		if len(req.Variables[i].Variations) == 0 {
			req.Variables[i].Variations = domain.DefaultVariations()
		}
	}
	if len(req.Metrics) == 0 {
		req.Metrics = domain.AllMetrics()
	}
	if req.DiscountRate.IsZero() {
		req.DiscountRate = domain.DefaultDiscountRate
	}
}
