// Command langshift detects, suggests and converts source snippets from the terminal
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"langshift/internal/core/rewrite"
	"langshift/internal/core/version"
	"langshift/internal/platform/config/raw"
	"langshift/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:           "langshift",
	Short:         "Detect, suggest and convert source snippets",
	Long:          `langshift classifies a snippet against the language catalog, proposes conversion targets and rewrites it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return configureColor(cmd)
	},
}

func init() {
	rootCmd.Version = version.For("langshift").Version

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(historyCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("catalog", raw.New().Get("CATALOG_PATH", ""), "external catalog file (.json, .yaml)")
	pf.Int("indent", rewrite.DefaultIndentUnit, "indentation unit for block rewrites")
	pf.String("session", "cli", "history session id")
	pf.String("history-db", defaultHistoryPath(), "sqlite history database")
	pf.Bool("json", false, "print machine readable JSON")
	pf.String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	opt := logger.FromEnv()
	opt.Level = strings.ToLower(raw.New().Get("LOG_LEVEL", "warn"))
	opt.Service = "langshift"
	opt.Writer = os.Stderr
	logger.Init(opt)

	if err := rootCmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureColor(cmd *cobra.Command) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		// fatih/color already disables itself off a terminal
	default:
		return fmt.Errorf("unknown color mode %q (auto|on|off)", mode)
	}
	return nil
}
