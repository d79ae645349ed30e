package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langshift/internal/core/langhint"
	"langshift/internal/services/api/convert/domain"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [file]",
	Short: "List conversion targets for a snippet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	addTextFlag(suggestCmd)
	suggestCmd.Flags().StringP("from", "f", "", "source language; detected when omitted")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	from, _ := cmd.Flags().GetString("from")
	if from == "" && name != "" {
		if _, ok := a.core.Detect(text); !ok {
			from, _ = langhint.FromFile(name, []byte(text), a.core.Catalog())
		}
	}

	svc, err := a.service(cmd.Context(), false)
	if err != nil {
		return err
	}
	out, err := svc.Suggest(cmd.Context(), domain.SuggestInput{Text: text, Language: from})
	if err != nil {
		return err
	}
	if a.json {
		return a.printJSON(out)
	}

	if out.Language == "" {
		warnColor.Fprintln(a.out, "no language detected; pass --from")
		return nil
	}
	titleColor.Fprintf(a.out, "%s\n", a.core.Catalog().Display(out.Language))
	if len(out.Suggestions) == 0 {
		dimColor.Fprintln(a.out, "  no suggestions")
	}
	for _, s := range out.Suggestions {
		fmt.Fprintf(a.out, "  %-12s %s\n", tagColor.Sprint(s.To), s.Description)
	}
	return nil
}
