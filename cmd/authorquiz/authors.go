package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List the authors in the quiz",
	Long:  "Display every author and their books in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		cobra.CheckErr(err)

		store, err := openStore(cfg)
		cobra.CheckErr(err)
		defer store.Close()

		authors, err := store.Authors()
		cobra.CheckErr(err)

		if len(authors) == 0 {
			fmt.Println("📚 No authors yet. Point --authors at a JSON file to load some.")
			return
		}

		columns := []table.Column{
			{Title: "#", Width: 3},
			{Title: "Name", Width: 24},
			{Title: "Books", Width: 60},
			{Title: "Image", Width: 36},
		}

		rows := []table.Row{}
		for i, author := range authors {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				truncateString(author.Name, 22),
				truncateString(strings.Join(author.Books, ", "), 58),
				truncateString(author.ImageURL, 34),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Authors (%d)\n\n", len(authors))
		fmt.Println(t.View())
	},
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
