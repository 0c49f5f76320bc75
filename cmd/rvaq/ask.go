package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"richmondtech/internal/app"
	"richmondtech/internal/domain"
)

var (
	answerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question",
	Example: `  rvaq ask "What's the next tech meetup in Richmond?"
  rvaq ask "Any python events coming up?"
  rvaq ask --endpoint https://api.example.com "Tell me about Startup Virginia"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		var answer *domain.Answer
		var err error
		if endpoint != "" {
			answer, err = remoteAsk(cmd.Context(), endpoint, question)
		} else {
			var a *app.App
			a, err = app.Build(cmd.Context(), cfg, logger)
			if err == nil {
				answer, err = a.Ask.Ask(cmd.Context(), question, nil)
			}
		}
		if err != nil {
			fmt.Println(errStyle.Render("✗ " + err.Error()))
			return err
		}

		fmt.Println(answerStyle.Render(answer.Answer))
		meta := fmt.Sprintf("request %s", answer.RequestID)
		if len(answer.ToolsUsed) > 0 {
			meta += " | tools: " + strings.Join(answer.ToolsUsed, ", ")
		}
		if mode, ok := answer.Metadata["mode"]; ok {
			meta += fmt.Sprintf(" | mode: %v", mode)
		}
		if ms, ok := answer.Metadata["elapsed_ms"]; ok {
			meta += fmt.Sprintf(" | %vms", ms)
		}
		fmt.Println(metaStyle.Render(meta))
		return nil
	},
}
