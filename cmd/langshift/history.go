package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the conversion history of a session",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the session history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().Bool("full", false, "print source and result text")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	h, err := a.history(cmd.Context())
	if err != nil {
		return err
	}
	xs, err := h.List(cmd.Context(), a.session)
	if err != nil {
		return err
	}
	if a.json {
		return a.printJSON(xs)
	}
	if len(xs) == 0 {
		dimColor.Fprintln(a.out, "history is empty")
		return nil
	}

	full, _ := cmd.Flags().GetBool("full")
	for _, e := range xs {
		fmt.Fprintf(a.out, "%s  %s\n", dimColor.Sprint(e.CreatedAt.Local().Format(time.DateTime)), titleColor.Sprint(e.Label))
		if full {
			fmt.Fprintf(a.out, "%s\n%s\n\n", indent(e.Source), indent(e.Result))
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	h, err := a.history(cmd.Context())
	if err != nil {
		return err
	}
	n, err := h.Clear(cmd.Context(), a.session)
	if err != nil {
		return err
	}
	if a.json {
		return a.printJSON(map[string]any{"session": a.session, "cleared": n})
	}
	fmt.Fprintf(a.out, "cleared %d entries\n", n)
	return nil
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
