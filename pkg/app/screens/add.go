package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/authorquiz/pkg/app/styles"
	"github.com/kerbaras/authorquiz/pkg/data"
	"github.com/kerbaras/authorquiz/pkg/quiz"
	"github.com/kerbaras/authorquiz/pkg/services"
)

const (
	fieldName = iota
	fieldImageURL
	fieldImageSource
	firstBookField
)

// AddAuthorScreen is the form for appending an author to the dataset. Book
// inputs are added on demand, like the "Add Book" button of a web form.
type AddAuthorScreen struct {
	controller *services.QuizController
	inputs     []textinput.Model
	focus      int
	errors     quiz.ValidationErrors
	width      int
	height     int
	err        error
}

func NewAddAuthorScreen(controller *services.QuizController) *AddAuthorScreen {
	s := &AddAuthorScreen{controller: controller}
	s.Reset()
	return s
}

// Reset clears the form back to one empty book field.
func (s *AddAuthorScreen) Reset() {
	s.inputs = []textinput.Model{
		newInput("Name", 60),
		newInput("http://...", 200),
		newInput("Wikimedia Commons", 100),
		newInput("Book title", 100),
	}
	s.focus = fieldName
	s.errors = nil
	s.err = nil
	s.inputs[fieldName].Focus()
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 50
	return ti
}

func (s *AddAuthorScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *AddAuthorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.Reset()
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "quiz"}
			}
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "ctrl+n":
			s.inputs = append(s.inputs, newInput("Book title", 100))
			return s, s.setFocus(len(s.inputs) - 1)
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			if s.focus == len(s.inputs)-1 {
				return s, s.submit()
			}
			return s, s.setFocus(s.focus + 1)
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *AddAuthorScreen) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = len(s.inputs) - 1
	}
	if i >= len(s.inputs) {
		i = 0
	}

	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

// Author builds the record described by the form. Empty trailing book fields
// are ignored.
func (s *AddAuthorScreen) Author() data.Author {
	var books []string
	for _, in := range s.inputs[firstBookField:] {
		books = append(books, in.Value())
	}
	for len(books) > 0 && strings.TrimSpace(books[len(books)-1]) == "" {
		books = books[:len(books)-1]
	}

	return data.Author{
		Name:        s.inputs[fieldName].Value(),
		ImageURL:    s.inputs[fieldImageURL].Value(),
		ImageSource: s.inputs[fieldImageSource].Value(),
		Books:       books,
	}
}

func (s *AddAuthorScreen) submit() tea.Cmd {
	author := s.Author()

	if err := quiz.ValidateAuthor(quiz.NormalizeAuthor(author)); err != nil {
		return s.reject(err)
	}

	if _, err := s.controller.Dispatch(services.AuthorAdded{Author: author}); err != nil {
		return s.reject(err)
	}

	s.Reset()
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: "quiz", Data: author.Name}
	}
}

func (s *AddAuthorScreen) reject(err error) tea.Cmd {
	var verrs quiz.ValidationErrors
	if errors.As(err, &verrs) {
		s.errors = verrs
		s.err = nil
		return nil
	}
	s.errors = nil
	s.err = err
	return nil
}

// FieldError returns the inline message for a field key, if any.
func (s *AddAuthorScreen) FieldError(field string) string {
	return s.errors[field]
}

func (s *AddAuthorScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("✍️  Add Author"))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n\n")
	}

	s.renderField(&b, "Name", fieldName, "name")
	s.renderField(&b, "Image URL", fieldImageURL, "imageUrl")
	s.renderField(&b, "Image source", fieldImageSource, "")

	b.WriteString(styles.SubtitleStyle.Render("Books"))
	b.WriteString("\n")
	if msg := s.errors["books"]; msg != "" {
		b.WriteString(styles.StatusError.Render("Incorrect entry: " + msg))
		b.WriteString("\n")
	}
	for i := firstBookField; i < len(s.inputs); i++ {
		s.renderField(&b, fmt.Sprintf("Book %d", i-firstBookField+1), i, quiz.BookField(i-firstBookField))
	}

	b.WriteString(styles.HelpStyle.Render(
		"tab/↓ shift+tab/↑: move • ctrl+n: add book • enter on last field/ctrl+s: submit • esc: cancel",
	))

	return b.String()
}

func (s *AddAuthorScreen) renderField(b *strings.Builder, label string, index int, key string) {
	style := styles.InputStyle
	if index == s.focus {
		style = styles.FocusedInputStyle
	}
	msg := ""
	if key != "" {
		msg = s.errors[key]
	}
	if msg != "" {
		style = styles.InvalidInputStyle
	}

	b.WriteString(styles.MutedStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(style.Render(s.inputs[index].View()))
	b.WriteString("\n")
	if msg != "" {
		b.WriteString(styles.StatusError.Render("Incorrect entry: " + msg))
		b.WriteString("\n")
	}
}
