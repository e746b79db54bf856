package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/disc/internal/admin"
	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/results"
	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect or clear stored assessment results (admin)",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored results (optionally filtered by primary style)",
	RunE: func(cmd *cobra.Command, args []string) error {
		primary, _ := cmd.Flags().GetString("primary")
		filter, err := results.ParseFilter(primary)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := authorize(cmd, d.gate); err != nil {
			return err
		}

		entries, err := results.Load(context.Background(), d.results)
		if err != nil {
			return fmt.Errorf("load results: %w", err)
		}
		writeResultsTable(cmd.OutOrStdout(), results.FilterByPrimary(entries, filter), filter)
		return nil
	},
}

var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored result",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("refusing to clear results without --yes")
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := authorize(cmd, d.gate); err != nil {
			return err
		}

		if err := d.results.ClearAll(context.Background()); err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		d.logger.Info("results cleared from cli")
		fmt.Fprintln(cmd.OutOrStdout(), "All results cleared.")
		return nil
	},
}

func init() {
	resultsCmd.PersistentFlags().String("password", "", "Admin password (prompted when omitted)")
	resultsListCmd.Flags().String("primary", "all", "Filter by primary style: all, D, I, S or C")
	resultsClearCmd.Flags().Bool("yes", false, "Confirm deletion of all results")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsClearCmd)
}

// authorize checks --password, or a line read from stdin, against the gate.
func authorize(cmd *cobra.Command, gate *admin.Gate) error {
	pw, _ := cmd.Flags().GetString("password")
	if pw == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Admin password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read password: %w", err)
		}
		pw = strings.TrimSpace(line)
	}
	if err := gate.Check(pw); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return nil
}

func writeResultsTable(w io.Writer, entries []results.Entry, filter results.Filter) {
	if len(entries) == 0 {
		if filter.IsAll() {
			fmt.Fprintln(w, "No assessment results found.")
		} else {
			fmt.Fprintf(w, "No results with primary style %s.\n", filter)
		}
		return
	}

	fmt.Fprintf(w, "%-4s  %-24s  %-28s  %-10s  %-7s  %-9s  %s\n",
		"#", "Name", "Email", "Date", "Primary", "Secondary", "D/I/S/C %")
	fmt.Fprintln(w, strings.Repeat("─", 112))

	for _, e := range entries {
		p := e.Result.Profile
		fmt.Fprintf(w, "%-4d  %-24s  %-28s  %-10s  %-7s  %-9s  %d/%d/%d/%d\n",
			e.Index,
			clip(e.Record.Respondent.Name, 24),
			clip(e.Record.Respondent.Email, 28),
			e.Record.SubmittedAt.Local().Format("2006-01-02"),
			e.Result.Primary,
			e.DisplaySecondary(),
			p.Percent(disc.Dominance),
			p.Percent(disc.Influence),
			p.Percent(disc.Steadiness),
			p.Percent(disc.Conscientiousness),
		)
	}

	fmt.Fprintf(w, "\n%d results\n", len(entries))
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
