package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List catalog languages and dedicated conversion pairs",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func init() {
	languagesCmd.Flags().Bool("pairs", false, "list the pairs with a dedicated rule or codec")
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	svc, err := a.service(cmd.Context(), false)
	if err != nil {
		return err
	}
	out, err := svc.Languages(cmd.Context())
	if err != nil {
		return err
	}
	if a.json {
		return a.printJSON(out)
	}

	if pairs, _ := cmd.Flags().GetBool("pairs"); pairs {
		for _, p := range out.Pairs {
			fmt.Fprintf(a.out, "%-12s -> %-12s %s\n", p.From, p.To, dimColor.Sprint(p.Kind))
		}
		return nil
	}
	for _, l := range out.Languages {
		targets := ""
		if len(l.Targets) > 0 {
			targets = dimColor.Sprint("-> " + strings.Join(l.Targets, ", "))
		}
		fmt.Fprintf(a.out, "%-12s %-12s %-12s %s\n", tagColor.Sprint(l.Tag), l.Name, l.Category, targets)
	}
	return nil
}
