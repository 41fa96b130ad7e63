package session

import (
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/dosewise/internal/assess"
	"github.com/abhisek/dosewise/internal/matching"
	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/router"
	"github.com/abhisek/dosewise/internal/scenario"
	"github.com/abhisek/dosewise/internal/screen"
	"github.com/abhisek/dosewise/internal/screens/summary"
	"github.com/abhisek/dosewise/internal/ui/components"
	"github.com/abhisek/dosewise/internal/ui/layout"
)

// Deps bundles the engine dependencies a session screen needs. The
// same bundle threads through home and summary so "next case" can
// rebuild a fresh session.
type Deps struct {
	Sequencer *scenario.Sequencer
	Questions *questions.Generator
	RNG       *rand.Rand
	Log       zerolog.Logger
}

// Phase is the player's position inside one case.
type Phase int

const (
	PhaseCase Phase = iota
	PhaseQuestions
	PhaseMatching
)

// CaseCompletedMsg is emitted once per finished case so the app model
// can keep its running shift tally.
type CaseCompletedMsg struct {
	Correct  int
	Answered int
}

// SessionScreen drives one case end to end: case sheet, question
// round, matching puzzle, then hands off to the summary screen.
type SessionScreen struct {
	deps Deps

	scen       *scenario.Scenario
	assessment *assess.Assessment
	phase      Phase

	mc       components.MultiChoice
	feedback bool
	board    components.MatchBoard
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New builds a session for the sequencer's current case. The case is
// consumed: the sequencer advances immediately so an abandoned session
// still moves the rotation forward.
func New(deps Deps) *SessionScreen {
	scen := deps.Sequencer.Current()
	deps.Sequencer.Advance()

	qs := deps.Questions.Generate(scen)
	set := matching.Generate(deps.RNG, scen)
	a := assess.New(scen, qs, set)

	deps.Log.Debug().
		Str("scenario", scen.ID).
		Str("condition", scen.Condition).
		Int("questions", len(qs)).
		Int("pairs", len(set.Drugs)).
		Msg("session started")

	s := &SessionScreen{
		deps:       deps,
		scen:       scen,
		assessment: a,
		phase:      PhaseCase,
		board:      components.NewMatchBoard(set),
	}
	if q, ok := a.Current(); ok {
		s.mc = components.NewMultiChoice(q)
	}
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	return "Case: " + s.scen.Condition
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case PhaseCase:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Abandon case"},
		}
	case PhaseQuestions:
		if s.feedback {
			return []layout.KeyHint{
				{Key: "any key", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon case"},
		}
	default:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select"},
		}
		if s.board.PickingTarget {
			hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Unselect drug"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon case"})
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.phase {
	case PhaseCase:
		if isKey && kmsg.String() == "enter" {
			if s.assessment.HasQuestions() {
				s.phase = PhaseQuestions
			} else if len(s.board.Drugs) > 0 {
				s.phase = PhaseMatching
			} else {
				return s, s.finish()
			}
		}
		return s, nil

	case PhaseQuestions:
		return s.updateQuestions(msg)

	case PhaseMatching:
		return s.updateMatching(msg)
	}
	return s, nil
}

func (s *SessionScreen) updateQuestions(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.feedback {
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			return s, nil
		}
		s.feedback = false
		if s.assessment.Advance() {
			q, _ := s.assessment.Current()
			s.mc = components.NewMultiChoice(q)
			return s, nil
		}
		s.phase = PhaseMatching
		if s.board.Done() || len(s.board.Drugs) == 0 {
			return s, s.finish()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		s.assessment.Answer(s.mc.ChosenIndex)
		s.feedback = true
	}
	return s, cmd
}

func (s *SessionScreen) updateMatching(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.board, cmd = s.board.Update(msg)

	if s.board.PickedTarget != "" {
		s.assessment.SelectDrug(s.board.ArmedDrug)
		correct, ok := s.assessment.MatchTarget(s.board.PickedTarget)
		s.board.Resolve(ok && correct)
	}

	if s.board.Done() {
		return s, s.finish()
	}
	return s, cmd
}

// finish swaps in the summary screen and reports the tally upstream.
func (s *SessionScreen) finish() tea.Cmd {
	correct, answered := s.assessment.Score()
	result := summary.Result{
		Condition:   s.scen.Condition,
		PatientName: s.scen.Patient.Name,
		Correct:     correct,
		Answered:    answered,
		Pairs:       s.assessment.CompletedPairs(),
		Misses:      s.assessment.MatchMisses(),
	}

	s.deps.Log.Debug().
		Str("scenario", s.scen.ID).
		Int("correct", correct).
		Int("answered", answered).
		Int("matchMisses", result.Misses).
		Msg("case complete")

	deps := s.deps
	return tea.Batch(
		func() tea.Msg { return CaseCompletedMsg{Correct: correct, Answered: answered} },
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(result, func() screen.Screen {
				return New(deps)
			})}
		},
	)
}
