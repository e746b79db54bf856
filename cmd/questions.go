package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/disc/internal/catalog"
	"github.com/abhisek/disc/internal/disc"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally showing the style behind each option)",
	RunE: func(cmd *cobra.Command, args []string) error {
		reveal, _ := cmd.Flags().GetBool("reveal")
		writeQuestions(cmd.OutOrStdout(), catalog.Default(), reveal)
		return nil
	},
}

func init() {
	questionsCmd.Flags().Bool("reveal", false, "Show the DISC category each option scores toward")
}

func writeQuestions(w io.Writer, cat *catalog.Catalog, reveal bool) {
	for _, q := range cat.Questions() {
		fmt.Fprintf(w, "%2d. %s\n", q.ID, q.Prompt)
		for i, o := range q.Options {
			if reveal {
				fmt.Fprintf(w, "    %d) %-48s  %s\n", i+1, o.Text, disc.Title(o.Category))
			} else {
				fmt.Fprintf(w, "    %d) %s\n", i+1, o.Text)
			}
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%d questions\n", cat.Size())
}
