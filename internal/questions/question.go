// Package questions generates multiple-choice assessment questions
// from a scenario. A registry of rules pairs applicability predicates
// with builders; the generator runs every applicable builder, fills
// options from distractor pools, shuffles and truncates.
package questions

// Question is a generated multiple-choice question ready for display.
type Question struct {
	// Prompt is the question text.
	Prompt string

	// Options holds the answer choices post-shuffle. Normally 4;
	// fewer only when both distractor pools were starved.
	Options []string

	// CorrectIndex addresses the correct option after shuffling.
	CorrectIndex int

	// Explanation is shown after the player answers.
	Explanation string

	// Rule names the registry rule that produced this question.
	// Used for diagnostics; never shown to the player.
	Rule string
}

// Candidate is a builder's output before option synthesis: the correct
// answer plus ordered distractor alternatives. Fallback optionally
// overrides the generic distractor pool used when Alternatives runs
// short.
type Candidate struct {
	Prompt       string
	Correct      string
	Alternatives []string
	Fallback     []string
	Explanation  string
}
