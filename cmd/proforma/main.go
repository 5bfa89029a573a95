package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/proforma/proforma/internal/calculation"
	"github.com/proforma/proforma/internal/config"
	"github.com/proforma/proforma/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "proforma %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "proforma",
	Short: "Rental property investment calculator CLI",
	Long:  "Sensitivity analysis and cash-flow valuation for rental property investments",
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [input-file]",
	Short: "Evaluate the base scenario metrics",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading request: %v\n", err)
			os.Exit(1)
		}

		engine := newEngine(cmd)
		metrics := engine.Evaluate(req.Scenario, req.DiscountRate)

		fmt.Fprintf(os.Stdout, "IRR:              %s", output.FormatPercentage(metrics.IRR))
		if !metrics.IRRConverged {
			fmt.Fprint(os.Stdout, " (estimate did not converge)")
		}
		fmt.Fprintln(os.Stdout)
		fmt.Fprintf(os.Stdout, "NPV:              %s\n", output.FormatCurrency(metrics.NPV))
		fmt.Fprintf(os.Stdout, "Cash-on-Cash:     %s\n", output.FormatPercentage(metrics.CashOnCashReturn))
		fmt.Fprintf(os.Stdout, "Total Return:     %s\n", output.FormatPercentage(metrics.TotalReturn))
		fmt.Fprintf(os.Stdout, "Monthly Cash Flow: %s\n", output.FormatCurrency(metrics.MonthlyCashFlow))
		fmt.Fprintf(os.Stdout, "Annual Cash Flow:  %s\n", output.FormatCurrency(metrics.AnnualCashFlow))
		fmt.Fprintf(os.Stdout, "Total Investment:  %s\n", output.FormatCurrency(metrics.TotalInvestment))
		fmt.Fprintf(os.Stdout, "Final Equity:      %s\n", output.FormatCurrency(metrics.FinalEquity))
	},
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func main() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(evaluateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
