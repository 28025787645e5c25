package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/authorquiz/pkg/app/styles"
)

// BookList is a radio group of candidate titles. Cursor is the highlighted row
// and Chosen the marked one (-1 for none).
type BookList struct {
	Items  []string
	Cursor int
	Chosen int
	Width  int
	Height int
}

func NewBookList() *BookList {
	return &BookList{
		Items:  []string{},
		Cursor: 0,
		Chosen: -1,
		Width:  60,
		Height: 6,
	}
}

// SetItems replaces the candidates and clears the selection.
func (l *BookList) SetItems(items []string) {
	l.Items = items
	l.Cursor = 0
	l.Chosen = -1
}

func (l *BookList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.Cursor++
	if l.Cursor >= len(l.Items) {
		l.Cursor = 0
	}
}

func (l *BookList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.Cursor--
	if l.Cursor < 0 {
		l.Cursor = len(l.Items) - 1
	}
}

// Choose marks the row under the cursor.
func (l *BookList) Choose() {
	if len(l.Items) == 0 {
		return
	}
	l.Chosen = l.Cursor
}

// ChooseIndex marks row i directly; out of range values are ignored.
func (l *BookList) ChooseIndex(i int) {
	if i < 0 || i >= len(l.Items) {
		return
	}
	l.Cursor = i
	l.Chosen = i
}

// Answer returns the chosen title, or "" when nothing is chosen.
func (l *BookList) Answer() string {
	if l.Chosen < 0 || l.Chosen >= len(l.Items) {
		return ""
	}
	return l.Items[l.Chosen]
}

func (l *BookList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No books to choose from")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i, title := range l.Items {
		radio := "( )"
		if i == l.Chosen {
			radio = "(•)"
		}

		line := radio + " " + title
		if i == l.Cursor {
			b.WriteString(styles.SelectedStyle.Render("› " + line))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
