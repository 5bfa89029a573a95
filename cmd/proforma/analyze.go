package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/proforma/proforma/internal/calculation"
	"github.com/proforma/proforma/internal/config"
	"github.com/proforma/proforma/internal/domain"
	"github.com/proforma/proforma/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run a full sensitivity analysis",
	Long: `Run a multi-variable sensitivity analysis over a base investment scenario.

Examples:
  # Analyze the variables declared in the request file
  ./proforma analyze deal.yaml

  # Override the variables and variations from the command line
  ./proforma analyze deal.yaml --variable rental_income --variable interest_rate:-30,-15,0,15,30

  # CSV output for spreadsheets
  ./proforma analyze deal.yaml --format csv`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

var (
	analyzeVariables []string
	analyzeMetrics   []string
	analyzeFormat    string
)

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeVariables, "variable", []string{}, "Variable to analyze (format: name or name:v1,v2,...)")
	analyzeCmd.Flags().StringSliceVar(&analyzeMetrics, "metrics", []string{}, "Metrics to compute; the first is the primary metric")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "table", "Output format (table, csv, json)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	parser := config.NewInputParser()
	req, err := parser.LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading request: %v\n", err)
		os.Exit(1)
	}

	if len(analyzeVariables) > 0 {
		req.Variables, err = parseVariableFlags(analyzeVariables)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --variable: %v\n", err)
			os.Exit(1)
		}
	}
	if len(analyzeMetrics) > 0 {
		req.Metrics = make([]domain.Metric, 0, len(analyzeMetrics))
		for _, name := range analyzeMetrics {
			req.Metrics = append(req.Metrics, domain.Metric(name))
		}
	}

	// Re-run the boundary checks after flag overrides
	if err := parser.Validate(req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	parser.ApplyDefaults(req)

	analyzer := calculation.NewAnalyzer()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		analyzer.SetLogger(simpleCLILogger{})
	}

	report, err := analyzer.Analyze(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error performing sensitivity analysis: %v\n", err)
		os.Exit(1)
	}

	formatter := output.NewFormatter(analyzeFormat)
	rendered, err := formatter.Format(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(rendered)
}

// parseVariableFlags parses --variable values of the form "name" or
// "name:v1,v2,...".
func parseVariableFlags(flags []string) ([]domain.VariableSpec, error) {
	specs := make([]domain.VariableSpec, 0, len(flags))

	for _, flag := range flags {
		name, variationList, hasVariations := strings.Cut(flag, ":")
		spec := domain.VariableSpec{Variable: domain.Variable(name)}

		if hasVariations {
			for _, raw := range strings.Split(variationList, ",") {
				value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
				if err != nil {
					return nil, fmt.Errorf("invalid variation %q for %s: %w", raw, name, err)
				}
				spec.Variations = append(spec.Variations, decimal.NewFromFloat(value))
			}
		}

		specs = append(specs, spec)
	}

	return specs, nil
}
