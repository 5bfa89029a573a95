package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/proforma/proforma/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Interactively explore scenario sensitivity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Request file not found: %s\n", args[0])
			os.Exit(1)
		}

		p := tea.NewProgram(tui.NewModel(args[0]), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
