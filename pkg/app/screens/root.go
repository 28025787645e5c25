package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/authorquiz/pkg/app/styles"
	"github.com/kerbaras/authorquiz/pkg/integrations"
	"github.com/kerbaras/authorquiz/pkg/services"
)

type screenType int

const (
	quizView screenType = iota
	addView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	controller *services.QuizController

	currentView screenType
	quiz        *QuizScreen
	add         *AddAuthorScreen
	notice      string

	width  int
	height int
}

func NewRootScreen(controller *services.QuizController, portraits *integrations.PortraitRenderer) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: quizView,
		quiz:        NewQuizScreen(controller, portraits),
		add:         NewAddAuthorScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.quiz.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Both screens track the size so switching does not lose it.
		r.quiz.Update(msg)
		r.add.Update(msg)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// The form needs the letter q.
			if r.currentView == quizView {
				return r, tea.Quit
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "quiz":
			r.currentView = quizView
			r.notice = ""
			if name, ok := msg.Data.(string); ok && name != "" {
				r.notice = fmt.Sprintf("Added %s", name)
			}
			r.quiz.Sync()
			cmd = r.quiz.Init()
		case "add":
			r.currentView = addView
			r.notice = ""
			cmd = r.add.Init()
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case quizView:
		newModel, newCmd := r.quiz.Update(msg)
		r.quiz = newModel.(*QuizScreen)
		return r, newCmd
	case addView:
		newModel, newCmd := r.add.Update(msg)
		r.add = newModel.(*AddAuthorScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case quizView:
		content = r.quiz.View()
	case addView:
		content = r.add.View()
	}

	if r.notice != "" {
		content = styles.StatusInfo.Render(r.notice) + "\n\n" + content
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	quizTab := "Quiz"
	addTab := "Add an author"

	if r.currentView == quizView {
		quizTab = styles.ActiveTabStyle.Render(quizTab)
		addTab = styles.InactiveTabStyle.Render(addTab)
	} else {
		quizTab = styles.InactiveTabStyle.Render(quizTab)
		addTab = styles.ActiveTabStyle.Render(addTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, quizTab, addTab)
}
