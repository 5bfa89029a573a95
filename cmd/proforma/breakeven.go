package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proforma/proforma/internal/calculation"
	"github.com/proforma/proforma/internal/config"
	"github.com/proforma/proforma/internal/domain"
	"github.com/proforma/proforma/internal/output"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven [input-file]",
	Short: "Find the NPV break-even point for a variable",
	Long: `Search for the perturbation of a single variable at which the scenario's
NPV crosses zero at the request's discount rate.

Example:
  ./proforma breakeven deal.yaml --variable interest_rate`,
	Args: cobra.ExactArgs(1),
	Run:  runBreakeven,
}

var breakevenVariable string

func init() {
	breakevenCmd.Flags().StringVar(&breakevenVariable, "variable", "", "Variable to search (required)")
	breakevenCmd.MarkFlagRequired("variable")

	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(cmd *cobra.Command, args []string) {
	parser := config.NewInputParser()
	req, err := parser.LoadFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading request: %v\n", err)
		os.Exit(1)
	}

	variable := domain.Variable(breakevenVariable)
	if !variable.IsValid() {
		fmt.Fprintf(os.Stderr, "Unknown variable: %s\n", breakevenVariable)
		os.Exit(1)
	}

	analyzer := calculation.NewAnalyzer()
	critical := analyzer.FindBreakEven(req.Scenario, variable, req.DiscountRate)
	if critical == nil {
		fmt.Fprintf(os.Stdout, "No break-even found for %s within the search bounds\n", variable)
		return
	}

	fmt.Fprintf(os.Stdout, "Break-even for %s:\n", variable)
	fmt.Fprintf(os.Stdout, "  Change:           %s%%\n", critical.ChangePercent.StringFixed(2))
	fmt.Fprintf(os.Stdout, "  Variable value:   %s\n", critical.VariableValue.StringFixed(2))
	fmt.Fprintf(os.Stdout, "  Margin of safety: %s\n", output.FormatPercentage(critical.MarginOfSafety))
}
