package assess

import (
	"testing"

	"github.com/abhisek/dosewise/internal/matching"
	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/scenario"
)

func testAssessment() *Assessment {
	qs := []questions.Question{
		{Prompt: "q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{Prompt: "q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
	}
	set := matching.Set{
		Drugs: []matching.DrugCard{
			{ID: "d1", DrugName: "Aspirin"},
			{ID: "d2", DrugName: "Ramipril"},
		},
		Targets: []matching.TargetCard{
			{ID: "t1", Content: "Antiplatelet", CorrectDrugID: "d1", Kind: matching.KindClass},
			{ID: "t2", Content: "ACE inhibitor", CorrectDrugID: "d2", Kind: matching.KindClass},
		},
	}
	return New(&scenario.Scenario{ID: "s"}, qs, set)
}

func TestAnswerScoring(t *testing.T) {
	a := testAssessment()

	if !a.Answer(1) {
		t.Fatal("correct option reported incorrect")
	}
	if a.Answer(0) {
		t.Error("wrong option reported correct")
	}
	// Re-answering must not double count.
	correct, answered := a.Score()
	if correct != 1 || answered != 1 {
		t.Errorf("score %d/%d, want 1/1", correct, answered)
	}

	if !a.Advance() {
		t.Fatal("expected a second question")
	}
	if a.Answer(0) {
		t.Error("wrong option on q2 reported correct")
	}
	if a.Advance() {
		t.Error("advance past last question reported more questions")
	}
	if !a.QuestionsDone() {
		t.Error("questions not done after final advance")
	}

	correct, answered = a.Score()
	if correct != 1 || answered != 2 {
		t.Errorf("score %d/%d, want 1/2", correct, answered)
	}
}

func TestNoQuestionsPath(t *testing.T) {
	a := New(&scenario.Scenario{}, nil, matching.Set{})
	if a.HasQuestions() {
		t.Error("HasQuestions true for empty set")
	}
	if _, ok := a.Current(); ok {
		t.Error("Current returned a question from an empty set")
	}
	if a.Answer(0) {
		t.Error("Answer succeeded with no questions")
	}
}

func TestMatchingFlow(t *testing.T) {
	a := testAssessment()

	// Target selection without a drug is rejected.
	if _, ok := a.MatchTarget("t1"); ok {
		t.Error("match accepted without a selected drug")
	}

	// Wrong pairing clears the selection and counts a miss.
	if !a.SelectDrug("d1") {
		t.Fatal("SelectDrug failed")
	}
	correct, ok := a.MatchTarget("t2")
	if !ok || correct {
		t.Errorf("wrong pairing: correct=%v ok=%v", correct, ok)
	}
	if a.SelectedDrug() != "" {
		t.Error("selection not cleared after miss")
	}
	if a.MatchMisses() != 1 {
		t.Errorf("misses = %d, want 1", a.MatchMisses())
	}

	// Correct pairings consume both cards.
	a.SelectDrug("d1")
	if correct, ok := a.MatchTarget("t1"); !ok || !correct {
		t.Fatal("correct pairing rejected")
	}
	if !a.IsMatched("t1") || !a.IsDrugConsumed("d1") {
		t.Error("matched cards not marked consumed")
	}
	if a.SelectDrug("d1") {
		t.Error("consumed drug re-selectable")
	}

	a.SelectDrug("d2")
	if correct, ok := a.MatchTarget("t2"); !ok || !correct {
		t.Fatal("second pairing rejected")
	}

	if !a.MatchingDone() {
		t.Error("matching not done with all targets paired")
	}
	if a.CompletedPairs() != len(a.MatchingSet().Targets) {
		t.Errorf("completed %d pairs, want %d", a.CompletedPairs(), len(a.MatchingSet().Targets))
	}

	// Already-matched state is idempotent: no further matches accepted.
	a.SelectDrug("d2")
	if _, ok := a.MatchTarget("t2"); ok {
		t.Error("match accepted against consumed target")
	}
	if a.CompletedPairs() != 2 {
		t.Errorf("completed pairs changed after replay: %d", a.CompletedPairs())
	}
}
