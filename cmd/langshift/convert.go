package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"langshift/internal/core/langhint"
	"langshift/internal/services/api/convert/domain"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a snippet to another language",
	Long: `Convert rewrites a snippet with the dedicated rule or codec for the pair, or wraps it
in a commented passthrough when no rule exists. Successful conversions are kept in the history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	addTextFlag(convertCmd)
	convertCmd.Flags().StringP("from", "f", "", "source language; detected when omitted")
	convertCmd.Flags().String("to", "", "target language")
	convertCmd.Flags().Bool("no-history", false, "do not record the conversion")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
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
	to, _ := cmd.Flags().GetString("to")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	if from == "" {
		tag, ok := a.core.Detect(text)
		if !ok {
			tag, ok = langhint.FromFile(name, []byte(text), a.core.Catalog())
		}
		if !ok {
			return errors.New("could not detect the source language; pass --from")
		}
		from = tag
	}

	svc, err := a.service(cmd.Context(), !noHistory)
	if err != nil {
		return err
	}
	in := domain.RunInput{Text: text, From: from, To: to}
	if !noHistory {
		in.Session = a.session
	}
	out, err := svc.Run(cmd.Context(), in)
	if err != nil {
		return err
	}
	if a.json {
		return a.printJSON(out)
	}

	dimColor.Fprintf(os.Stderr, "%s -> %s (%s, %dms)\n", from, to, out.Kind, out.DurationMs)
	fmt.Fprintln(a.out, out.Output)
	return nil
}
