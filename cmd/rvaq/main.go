package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"richmondtech/config"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	// Global flags
	endpoint   string
	adminToken string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rvaq",
	Short: "Ask questions about the Richmond, VA tech community",
	Long: `rvaq answers natural-language questions about Richmond's tech scene:
meetup groups, events, venues, and employers.

Questions are resolved by a deterministic local classifier and, when a
Gemini API key is configured, by the hosted model with data lookup tools.

With --endpoint the CLI talks to a running rvaq HTTP deployment instead
of connecting to the record store directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = config.NewLogger()
		slog.SetDefault(logger)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "base URL of a running rvaq API (direct store access when empty)")
	rootCmd.PersistentFlags().StringVar(&adminToken, "token", "", "admin bearer token for remote seed")

	rootCmd.AddCommand(askCmd, serveCmd, seedCmd, healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
