package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/authorquiz/pkg/app/styles"
	"github.com/kerbaras/authorquiz/pkg/quiz"
	"github.com/kerbaras/authorquiz/pkg/services"
)

var turnCmd = &cobra.Command{
	Use:   "turn",
	Short: "Print one quiz round",
	Long:  "Generate a single round and print the candidate titles with the answer marked",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		cobra.CheckErr(err)

		store, err := openStore(cfg)
		cobra.CheckErr(err)
		defer store.Close()

		rounds, err := services.GenerateRounds(store, services.NewRand(cfg.Seed), 1)
		cobra.CheckErr(err)

		fmt.Println(renderTurn(rounds[0]))
	},
}

func renderTurn(turn quiz.TurnData) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
		Headers("#", "Title", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for i, title := range turn.Books {
		mark := ""
		if turn.Author.Wrote(title) {
			mark = "✓"
		}
		t.Row(fmt.Sprintf("%d", i+1), title, mark)
	}

	header := styles.TitleStyle.Render("📚 " + turn.Author.Name)
	if turn.Author.ImageSource != "" {
		header += "\n" + styles.MutedStyle.Render("Image: "+turn.Author.ImageSource)
	}
	return header + "\n" + t.String()
}
