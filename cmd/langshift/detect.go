package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langshift/internal/core/langhint"
	"langshift/internal/services/api/convert/domain"
)

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Detect the language of a snippet",
	Long:  `Detect classifies a snippet with the catalog signatures. When nothing matches and a file is given, its name is used as a hint.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	addTextFlag(detectCmd)
}

// detectResult extends the API payload with the file name hint
type detectResult struct {
	domain.DetectOutput
	Hint string `json:"hint,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	svc, err := a.service(cmd.Context(), false)
	if err != nil {
		return err
	}
	out, err := svc.Detect(cmd.Context(), domain.DetectInput{Text: text})
	if err != nil {
		return err
	}

	res := detectResult{DetectOutput: out}
	if !out.Detected {
		res.Hint, _ = langhint.FromFile(name, []byte(text), a.core.Catalog())
	}
	if a.json {
		return a.printJSON(res)
	}

	switch {
	case out.Detected:
		fmt.Fprintf(a.out, "%s %s\n", tagColor.Sprint(out.Language), dimColor.Sprintf("(%s)", out.Name))
		for _, alt := range out.Alternatives {
			fmt.Fprintf(a.out, "  %-12s %d\n", alt.Language, alt.Score)
		}
	case res.Hint != "":
		fmt.Fprintf(a.out, "%s %s\n", tagColor.Sprint(res.Hint), dimColor.Sprint("(from file name)"))
	default:
		warnColor.Fprintln(a.out, "no language detected")
	}
	return nil
}
