package screens

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/authorquiz/pkg/app/components"
	"github.com/kerbaras/authorquiz/pkg/app/styles"
	"github.com/kerbaras/authorquiz/pkg/integrations"
	"github.com/kerbaras/authorquiz/pkg/services"
)

const portraitWidth = 24

type QuizScreen struct {
	controller *services.QuizController
	portraits  *integrations.PortraitRenderer
	books      *components.BookList
	state      services.State
	portrait   string
	width      int
	height     int
	err        error
}

func NewQuizScreen(controller *services.QuizController, portraits *integrations.PortraitRenderer) *QuizScreen {
	s := &QuizScreen{
		controller: controller,
		portraits:  portraits,
		books:      components.NewBookList(),
	}
	s.Sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

// Sync pulls the controller state. The candidate list is only rebuilt when the
// round changed, so a marked answer survives a re-render.
func (s *QuizScreen) Sync() {
	state := s.controller.State()
	newRound := !slices.Equal(state.Turn.Books, s.state.Turn.Books) || state.Turn.Author != s.state.Turn.Author
	s.state = state

	if newRound {
		s.books.SetItems(state.Turn.Books)
		s.portrait = s.renderPortrait()
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.books.Width = msg.Width - 8

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.books.Prev()
		case "down", "j":
			s.books.Next()
		case " ", "x":
			s.books.Choose()
		case "1", "2", "3", "4":
			s.books.ChooseIndex(int(msg.Runes[0] - '1'))
		case "enter", "m":
			s.mark()
		case "c":
			s.proceed()
		case "r":
			s.restart()
		case "a":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "add"}
			}
		}
	}

	return s, nil
}

// mark grades the chosen title; with nothing chosen it is graded as wrong.
func (s *QuizScreen) mark() {
	_, s.err = s.controller.Dispatch(services.AnswerSelected{Answer: s.books.Answer()})
	s.Sync()
}

func (s *QuizScreen) proceed() {
	_, s.err = s.controller.Dispatch(services.ContinueClicked{})
	s.Sync()
}

func (s *QuizScreen) restart() {
	s.err = s.controller.Reset()
	s.books.SetItems(nil)
	s.state = services.State{}
	s.Sync()
}

func (s *QuizScreen) renderPortrait() string {
	author := s.state.Turn.Author
	if author == nil || s.portraits == nil {
		return ""
	}
	art, err := s.portraits.Render(author.ImageURL)
	if err != nil {
		return ""
	}
	return art
}

func (s *QuizScreen) View() string {
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render("📚 Author Quiz"),
		styles.SubtitleStyle.Render("Select the book written by the author shown"),
	)

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var body string
	if s.state.Phase() == services.PhaseNoTurn {
		reason := "No turn available"
		if s.state.Err != nil {
			reason = s.state.Err.Error()
		}
		body = styles.CardStyle.Render(styles.MutedStyle.Render(reason + "\nPress a to add an author."))
	} else {
		body = s.renderTurn()
	}

	alert := components.Alert(string(s.state.Highlight), s.width)
	if alert != "" {
		alert += "\n"
	}

	var cont string
	if s.state.Phase() == services.PhaseCorrect {
		cont = styles.StatusSuccess.Render("Press c to continue") + "\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: move • space/1-4: select • enter: mark • c: continue • a: add an author • r: restart • q: quit",
	)

	credit := styles.MutedStyle.Render("All images are from Wikimedia Commons and are in the public domain")

	return fmt.Sprintf("%s\n\n%s%s%s\n%s%s\n%s", header, errorMsg, alert, body, cont, help, credit)
}

func (s *QuizScreen) renderTurn() string {
	author := s.state.Turn.Author

	portrait := s.portrait
	if portrait == "" {
		portrait = styles.MutedStyle.Render(fmt.Sprintf("[portrait: %s]", author.ImageURL))
	}

	caption := styles.TextStyle.Bold(true).Render(author.Name)
	if author.ImageSource != "" {
		caption += "\n" + styles.MutedStyle.Render("Image: "+author.ImageSource)
	}

	left := lipgloss.JoinVertical(lipgloss.Left, portrait, "", caption)
	right := s.books.View()

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	card := styles.HighlightCardStyle(string(s.state.Highlight))
	if s.width > 6 {
		card = card.Width(s.width - 4)
	}
	return card.Render(content)
}
