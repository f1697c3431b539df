package study

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screen"
	"github.com/smartanki/smartanki/internal/screens/summary"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
	"github.com/smartanki/smartanki/internal/ui/components"
	"github.com/smartanki/smartanki/internal/ui/layout"
)

const submitTimeout = 10 * time.Second

// StudyScreen walks through the due queue: show the front, reveal the
// back, grade 0-5, repeat. When the queue is empty it hands over to the
// summary screen.
type StudyScreen struct {
	svc     *review.Service
	req     review.DueRequest
	session *review.Session

	queue []review.DueCard
	pos   int

	input       components.TextInput
	revealed    bool
	submitting  bool
	projections []review.Projection
	last        *review.Result

	loaded bool
	errMsg string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a study screen for the cards selected by req.
func New(svc *review.Service, req review.DueRequest) *StudyScreen {
	return &StudyScreen{
		svc:     svc,
		req:     req,
		session: review.NewSession(svc.Now()),
		input:   components.NewTextInput("Type your answer, Enter to reveal", 200),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(s.loadDue(), s.input.Init())
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	switch {
	case !s.loaded || s.current() == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.revealed:
		return []layout.KeyHint{
			{Key: "0-2", Description: "Forgot"},
			{Key: "3-5", Description: "Recalled"},
			{Key: "Esc", Description: "Finish"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Finish"},
		}
	}
}

func (s *StudyScreen) loadDue() tea.Cmd {
	return func() tea.Msg {
		cards, err := s.svc.Due(context.Background(), s.req)
		return dueLoadedMsg{Cards: cards, Err: err}
	}
}

func (s *StudyScreen) current() *review.DueCard {
	if s.pos >= len(s.queue) {
		return nil
	}
	return &s.queue[s.pos]
}

// typed reports whether the current card expects a typed answer.
func (s *StudyScreen) typed() bool {
	c := s.current()
	return c != nil && c.Card.Type == store.CardTypeTypeIn
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dueLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.queue = msg.Cards
		return s, nil

	case gradedMsg:
		return s.handleGraded(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.typed() && !s.revealed {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		return s, s.finish()
	}
	if s.current() == nil || s.submitting {
		return s, nil
	}

	if !s.revealed {
		switch {
		case key == "enter", key == "space" && !s.typed():
			s.reveal()
			return s, nil
		case s.typed():
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if len(key) == 1 && key[0] >= '0' && key[0] <= '5' {
		return s, s.grade(spacedrep.Quality(key[0] - '0'))
	}
	return s, nil
}

func (s *StudyScreen) reveal() {
	s.revealed = true
	s.errMsg = ""
	proj, err := review.Project(s.current().Card.State, s.svc.Now())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.projections = proj
}

func (s *StudyScreen) grade(q spacedrep.Quality) tea.Cmd {
	s.submitting = true
	cardID := s.current().Card.ID
	sessionID := s.session.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		res, err := s.svc.Submit(ctx, cardID, q, sessionID)
		return gradedMsg{Result: res, Err: err}
	}
}

func (s *StudyScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	s.submitting = false
	if msg.Err != nil {
		// Stay on the card so the grade can be retried.
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.session.Record(*msg.Result)
	s.last = msg.Result
	s.pos++
	s.revealed = false
	s.projections = nil
	s.errMsg = ""
	s.input.Reset()

	if s.current() == nil {
		return s, s.finish()
	}
	return s, nil
}

// finish shows the summary, or just leaves when nothing was reviewed.
func (s *StudyScreen) finish() tea.Cmd {
	if len(s.session.Results) == 0 {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := s.session.Summarize(s.svc.Now())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
