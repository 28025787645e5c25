package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/authorquiz/pkg/app/styles"
)

// Alert renders the feedback box shown after an answer is marked.
func Alert(highlight string, width int) string {
	var title, body string
	var style lipgloss.Style

	switch highlight {
	case "correct":
		title, body, style = "Success", "You chose the right answer", styles.StatusSuccess
	case "wrong":
		title, body, style = "Error", "You chose wrong answer", styles.StatusError
	default:
		return ""
	}

	box := lipgloss.NewStyle().
		Border(styles.RoundedBorder).
		BorderForeground(style.GetForeground()).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 4)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, style.Render(title), styles.TextStyle.Render(body)))
}
