package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-icons/internal/registry"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List all available icon styles",
	Long:  `Shows a list of all icon styles registered in the generator.`,
	Args:  cobra.NoArgs,
	Run:   runStyles,
}

func runStyles(cmd *cobra.Command, args []string) {
	styles := registry.List()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available styles:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range styles {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range styles {
		marker := ""
		if s.ID == registry.DefaultStyle {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set 'style: <id>' in a config file and pass it with --config.")
}
