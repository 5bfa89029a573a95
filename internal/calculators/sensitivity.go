package calculators

import (
	"encoding/json"
	"fmt"

	"github.com/proforma/proforma/internal/calculation"
	"github.com/proforma/proforma/internal/config"
	"github.com/proforma/proforma/internal/domain"
)

// SensitivityCalculator adapts the sensitivity analysis engine to the shared
// calculator contract. Params follow the JSON shape of
// domain.AnalysisRequest.
type SensitivityCalculator struct {
	analyzer *calculation.Analyzer
	parser   *config.InputParser
}

// NewSensitivityCalculator creates the adapter with a fresh analyzer.
func NewSensitivityCalculator() *SensitivityCalculator {
	return &SensitivityCalculator{
		analyzer: calculation.NewAnalyzer(),
		parser:   config.NewInputParser(),
	}
}

func (c *SensitivityCalculator) Name() string { return "sensitivity_analysis" }

func (c *SensitivityCalculator) Schema() *Schema {
	return &Schema{
		Name:        c.Name(),
		Description: "Multi-variable sensitivity analysis of a rental property investment",
		Fields: []Field{
			{Name: "scenario", Type: FieldObject, Required: true, Description: "Base investment scenario"},
			{Name: "variables", Type: FieldArray, Required: true, Description: "Variables to perturb, each {variable, variations?}"},
			{Name: "metrics", Type: FieldArray, Description: "Requested metrics; first entry is the primary metric"},
			{Name: "discountRate", Type: FieldNumber, Minimum: floatPtr(0), Maximum: floatPtr(100), Description: "Discount rate in percent"},
		},
	}
}

// Calculate decodes params into an analysis request, validates it, resolves
// defaults and runs the analyzer.
func (c *SensitivityCalculator) Calculate(params map[string]any) (any, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameters: %w", err)
	}

	var req domain.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode analysis request: %w", err)
	}

	if err := c.parser.Validate(&req); err != nil {
		return nil, err
	}
	c.parser.ApplyDefaults(&req)

	return c.analyzer.Analyze(&req)
}
