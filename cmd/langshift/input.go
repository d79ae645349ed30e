package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// maxInput bounds stdin and file reads, the sanitizer applies its own cap afterwards
const maxInput = 4 << 20

// readInput returns the snippet and the file name it came from.
// Priority: --text, then the file argument, then stdin.
func readInput(cmd *cobra.Command, args []string) (text, name string, err error) {
	if t, _ := cmd.Flags().GetString("text"); t != "" {
		return t, "", nil
	}
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", "", err
		}
		defer f.Close()
		b, err := io.ReadAll(io.LimitReader(f, maxInput))
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(b), args[0], nil
	}
	b, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxInput))
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), "", nil
}

func addTextFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "snippet to process instead of a file or stdin")
}
