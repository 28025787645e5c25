package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/authorquiz/pkg/app/screens"
	"github.com/kerbaras/authorquiz/pkg/integrations"
	"github.com/kerbaras/authorquiz/pkg/services"
)

type App struct {
	controller *services.QuizController
	portraits  *integrations.PortraitRenderer
}

func NewApp(controller *services.QuizController, portraits *integrations.PortraitRenderer) *App {
	return &App{controller: controller, portraits: portraits}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller, a.portraits)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
