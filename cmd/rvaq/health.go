package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"richmondtech/internal/app"
	"richmondtech/internal/domain"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check record store and model service health",
	RunE: func(cmd *cobra.Command, args []string) error {
		var h *domain.Health
		var err error
		if endpoint != "" {
			h, err = remoteHealth(cmd.Context(), endpoint)
		} else {
			var a *app.App
			a, err = app.Build(cmd.Context(), cfg, logger)
			if err == nil {
				h = a.Health.Check(cmd.Context())
			}
		}
		if err != nil {
			return err
		}

		if h.Status == "ok" {
			fmt.Println(okStyle.Render("✓ " + h.Status))
		} else {
			fmt.Println(errStyle.Render("✗ " + h.Status))
		}
		names := make([]string, 0, len(h.Components))
		for name := range h.Components {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-14s %s\n", name, h.Components[name])
		}
		return nil
	},
}
