package calculators

import (
	"fmt"
	"sort"
)

// Calculator is implemented by every calculator in the suite.
type Calculator interface {
	Name() string
	Schema() *Schema
	Calculate(params map[string]any) (any, error)
}

// Registry holds named calculators and dispatches requests to them.
type Registry struct {
	calculators map[string]Calculator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{calculators: make(map[string]Calculator)}
}

// Register adds a calculator; registering the same name twice is an error.
func (r *Registry) Register(c Calculator) error {
	if _, exists := r.calculators[c.Name()]; exists {
		return fmt.Errorf("calculator %q already registered", c.Name())
	}
	r.calculators[c.Name()] = c
	return nil
}

// Get returns the named calculator, if registered.
func (r *Registry) Get(name string) (Calculator, bool) {
	c, ok := r.calculators[name]
	return c, ok
}

// Names lists registered calculator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.calculators))
	for name := range r.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes a request through the shared pipeline: look the calculator
// up by name, validate params against its schema, then calculate.
func (r *Registry) Dispatch(name string, params map[string]any) (any, error) {
	c, ok := r.calculators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator %q", name)
	}
	if err := c.Schema().Validate(params); err != nil {
		return nil, fmt.Errorf("invalid parameters for %q: %w", name, err)
	}
	return c.Calculate(params)
}
