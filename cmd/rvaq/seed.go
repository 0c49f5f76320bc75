package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"richmondtech/internal/app"
)

var okStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42")).
	Bold(true)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo dataset to the record store",
	Long: `Writes the fixed demo dataset: 5 venues, 5 companies, 5 meetup
groups, and 12 events. Records use fixed IDs, so reseeding overwrites in
place rather than duplicating.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if endpoint != "" {
			written, err := remoteSeed(cmd.Context(), endpoint, adminToken)
			if err != nil {
				return err
			}
			fmt.Println(okStyle.Render(fmt.Sprintf("✓ seeded %d items", written)))
			return nil
		}

		a, err := app.Build(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		written, err := a.Seeder.Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seeded %d items before failing: %w", written, err)
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("✓ seeded %d items into %s", written, cfg.DynamoDBTable)))
		return nil
	},
}
