// Package assess tracks the player's progress through one scenario's
// assessment: the question round followed by the matching round. It
// consumes generated value objects and never mutates them.
package assess

import (
	"github.com/abhisek/dosewise/internal/matching"
	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/scenario"
)

// Assessment is the per-scenario session state.
type Assessment struct {
	Scenario *scenario.Scenario

	qs      []questions.Question
	current int
	scored  []bool
	correct int

	set          matching.Set
	selectedDrug string
	matched      map[string]string // target ID -> drug ID
	matchMisses  int
}

// New builds an assessment over the generated outputs.
func New(s *scenario.Scenario, qs []questions.Question, set matching.Set) *Assessment {
	return &Assessment{
		Scenario: s,
		qs:       qs,
		scored:   make([]bool, len(qs)),
		set:      set,
		matched:  make(map[string]string, len(set.Targets)),
	}
}

// HasQuestions reports whether any questions were generated. When
// false the caller shows an explicit no-assessment path.
func (a *Assessment) HasQuestions() bool {
	return len(a.qs) > 0
}

// QuestionCount returns the number of questions in this assessment.
func (a *Assessment) QuestionCount() int {
	return len(a.qs)
}

// Current returns the active question. ok is false once every
// question has been passed.
func (a *Assessment) Current() (questions.Question, bool) {
	if a.current >= len(a.qs) {
		return questions.Question{}, false
	}
	return a.qs[a.current], true
}

// Answer scores the active question against the chosen option index
// and reports whether it was correct. A question scores at most once;
// repeat calls for the same question return the stored option check
// without changing the score.
func (a *Assessment) Answer(optionIndex int) bool {
	q, ok := a.Current()
	if !ok {
		return false
	}
	correct := optionIndex == q.CorrectIndex
	if !a.scored[a.current] {
		a.scored[a.current] = true
		if correct {
			a.correct++
		}
	}
	return correct
}

// Advance moves to the next question and reports whether one exists.
func (a *Assessment) Advance() bool {
	if a.current < len(a.qs) {
		a.current++
	}
	return a.current < len(a.qs)
}

// Score returns correct answers and questions scored so far.
func (a *Assessment) Score() (correct, answered int) {
	answered = 0
	for _, s := range a.scored {
		if s {
			answered++
		}
	}
	return a.correct, answered
}

// QuestionsDone reports whether the question round is over.
func (a *Assessment) QuestionsDone() bool {
	return a.current >= len(a.qs)
}

// MatchingSet returns the puzzle for display.
func (a *Assessment) MatchingSet() matching.Set {
	return a.set
}

// SelectDrug marks a drug card as the active selection. Returns false
// if the drug is already matched (consumed cards cannot be reselected).
func (a *Assessment) SelectDrug(drugID string) bool {
	for _, id := range a.matched {
		if id == drugID {
			return false
		}
	}
	a.selectedDrug = drugID
	return true
}

// SelectedDrug returns the active drug selection, or "".
func (a *Assessment) SelectedDrug() string {
	return a.selectedDrug
}

// MatchTarget attempts to pair the active drug with a target card.
// A pairing is correct iff the target's CorrectDrugID equals the
// selected drug; correct pairs are consumed and further matches
// against them are rejected.
func (a *Assessment) MatchTarget(targetID string) (correct bool, ok bool) {
	if a.selectedDrug == "" {
		return false, false
	}
	if _, done := a.matched[targetID]; done {
		return false, false
	}

	var target *matching.TargetCard
	for i := range a.set.Targets {
		if a.set.Targets[i].ID == targetID {
			target = &a.set.Targets[i]
			break
		}
	}
	if target == nil {
		return false, false
	}

	if target.CorrectDrugID != a.selectedDrug {
		a.matchMisses++
		a.selectedDrug = ""
		return false, true
	}

	a.matched[targetID] = a.selectedDrug
	a.selectedDrug = ""
	return true, true
}

// IsMatched reports whether a target card has been paired.
func (a *Assessment) IsMatched(targetID string) bool {
	_, done := a.matched[targetID]
	return done
}

// IsDrugConsumed reports whether a drug card has been paired.
func (a *Assessment) IsDrugConsumed(drugID string) bool {
	for _, id := range a.matched {
		if id == drugID {
			return true
		}
	}
	return false
}

// CompletedPairs returns the number of matched pairs.
func (a *Assessment) CompletedPairs() int {
	return len(a.matched)
}

// MatchMisses returns the number of incorrect pairing attempts.
func (a *Assessment) MatchMisses() int {
	return a.matchMisses
}

// MatchingDone reports whether every target has been paired.
func (a *Assessment) MatchingDone() bool {
	return len(a.matched) == len(a.set.Targets)
}
