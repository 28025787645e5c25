package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kerbaras/authorquiz/pkg/data"
	"github.com/kerbaras/authorquiz/pkg/quiz"
)

var (
	ErrContinueNotAllowed = errors.New("continue is only available after a correct answer")
	ErrUnknownAction      = errors.New("unknown action")
)

// Phase is the position of the current round in its lifecycle.
type Phase int

const (
	PhaseNoTurn Phase = iota
	PhaseAwaitingAnswer
	PhaseCorrect
	PhaseWrong
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting answer"
	case PhaseCorrect:
		return "scored correct"
	case PhaseWrong:
		return "scored wrong"
	default:
		return "no turn"
	}
}

// State is a snapshot of the quiz. Err is set when no turn could be generated.
type State struct {
	Turn      quiz.TurnData
	Highlight quiz.Highlight
	Err       error
}

func (s State) Phase() Phase {
	if s.Turn.Author == nil {
		return PhaseNoTurn
	}
	switch s.Highlight {
	case quiz.HighlightCorrect:
		return PhaseCorrect
	case quiz.HighlightWrong:
		return PhaseWrong
	default:
		return PhaseAwaitingAnswer
	}
}

// Action is a user event fed into QuizController.Dispatch.
type Action interface {
	action()
}

// AnswerSelected grades Answer against the current turn. An empty Answer means
// nothing was selected.
type AnswerSelected struct {
	Answer string
}

// ContinueClicked starts a new round after a correct answer.
type ContinueClicked struct{}

// AuthorAdded appends Author to the dataset. The round in progress is kept.
type AuthorAdded struct {
	Author data.Author
}

func (AnswerSelected) action()  {}
func (ContinueClicked) action() {}
func (AuthorAdded) action()     {}

// QuizController owns the dataset and the quiz state. All mutation goes through
// Dispatch and Reset; it is meant to be driven from a single event loop.
type QuizController struct {
	store   data.Store
	rng     quiz.Rand
	log     *zap.Logger
	session string
	state   State
}

// NewQuizController builds a controller and generates the first round. An empty
// or unusable dataset is not an error here; it shows up as PhaseNoTurn.
func NewQuizController(store data.Store, rng quiz.Rand, log *zap.Logger) (*QuizController, error) {
	if log == nil {
		log = zap.NewNop()
	}

	session := uuid.NewString()
	c := &QuizController{
		store:   store,
		rng:     rng,
		log:     log.With(zap.String("session", session)),
		session: session,
	}

	if err := c.Reset(); err != nil && !errors.Is(err, quiz.ErrNoTurn) {
		return nil, err
	}
	return c, nil
}

func (c *QuizController) Session() string {
	return c.session
}

// State returns a copy of the current state.
func (c *QuizController) State() State {
	s := c.state
	s.Turn.Books = slices.Clone(s.Turn.Books)
	return s
}

// Reset replaces the whole state with a fresh round.
func (c *QuizController) Reset() error {
	authors, err := c.store.Authors()
	if err != nil {
		return fmt.Errorf("failed to load authors: %w", err)
	}

	turn, err := quiz.GenerateTurn(authors, c.rng)
	c.state = State{Turn: turn, Highlight: quiz.HighlightNone, Err: err}
	if err != nil {
		c.log.Warn("no turn available", zap.Int("authors", len(authors)), zap.Error(err))
		return err
	}

	c.log.Debug("turn generated",
		zap.Strings("books", turn.Books),
		zap.String("author", turn.Author.Name),
	)
	return nil
}

// Dispatch applies action and returns the resulting state.
func (c *QuizController) Dispatch(action Action) (State, error) {
	var err error

	switch a := action.(type) {
	case AnswerSelected:
		c.answerSelected(a.Answer)
	case ContinueClicked:
		err = c.continueClicked()
	case AuthorAdded:
		err = c.authorAdded(a.Author)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}

	return c.State(), err
}

func (c *QuizController) answerSelected(answer string) {
	highlight, ok := quiz.Score(c.state.Turn, answer)
	if !ok {
		c.log.Debug("answer ignored, turn has no author", zap.String("answer", answer))
		return
	}

	c.state.Highlight = highlight
	c.log.Info("answer scored",
		zap.String("answer", answer),
		zap.Stringer("highlight", highlight),
	)
}

func (c *QuizController) continueClicked() error {
	if c.state.Phase() != PhaseCorrect {
		return ErrContinueNotAllowed
	}
	return c.Reset()
}

func (c *QuizController) authorAdded(author data.Author) error {
	normalized := quiz.NormalizeAuthor(author)
	if err := quiz.ValidateAuthor(normalized); err != nil {
		return err
	}

	if err := c.store.AddAuthor(normalized); err != nil {
		return fmt.Errorf("failed to add author: %w", err)
	}

	c.log.Info("author added",
		zap.String("name", normalized.Name),
		zap.Int("books", len(normalized.Books)),
	)

	// Nothing in progress to preserve, so the new author can start a round.
	if c.state.Phase() == PhaseNoTurn {
		if err := c.Reset(); err != nil && !errors.Is(err, quiz.ErrNoTurn) {
			return err
		}
	}
	return nil
}
