package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/results"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how primary styles are distributed across stored results",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		entries, err := results.Load(context.Background(), d.results)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		writeDistribution(cmd.OutOrStdout(), results.Distribution(entries))
		return nil
	},
}

func writeDistribution(w io.Writer, dist disc.Profile) {
	if dist.Total() == 0 {
		fmt.Fprintln(w, "No assessment results recorded yet.")
		return
	}

	fmt.Fprintln(w, "Primary styles")
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "%-20s  %6s  %6s\n", "Style", "Count", "Share")
	fmt.Fprintln(w, strings.Repeat("─", 48))
	for _, c := range disc.AllCategories() {
		fmt.Fprintf(w, "%-20s  %6d  %5d%%\n", disc.Title(c), dist.Get(c), dist.Percent(c))
	}
	fmt.Fprintln(w, strings.Repeat("─", 48))
	fmt.Fprintf(w, "%-20s  %6d\n", "TOTAL", dist.Total())
}
