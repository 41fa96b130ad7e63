package questions

import (
	"math/rand/v2"

	"github.com/abhisek/dosewise/internal/scenario"
)

// Rule is a single question template: a predicate deciding whether the
// rule applies to a scenario, and a builder producing a candidate
// question from it. Builders may themselves be probabilistic (choosing
// among phrasings or medication-derived facts) and may return nil to
// decline even when the predicate passed.
type Rule struct {
	Name    string
	Applies func(*scenario.Scenario) bool
	Build   func(*rand.Rand, *scenario.Scenario) *Candidate
}

// Registry returns the full rule table. Order is irrelevant: the
// generator shuffles the produced pool before truncation.
func Registry() []Rule {
	return []Rule{
		suffixToClassRule,
		drugToClassRule,
		historySuffixRule,
		timeCriticalRule,
		missedCategoryRule,
		interactionCautionRule,
		diureticRule,
		monitoringRule,
		cautionRule,
		routeRule,
		polypharmacyRule,
		conditionFromHistoryRule,
		indicationRule,
		sideEffectRule,
	}
}

// pick returns a uniformly random element of xs.
func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// othersByName collects prescription medication names excluding the
// given one, preserving prescription order.
func othersByName(s *scenario.Scenario, exclude string) []string {
	var out []string
	for _, p := range s.Prescriptions {
		if p.Medication.Name != exclude {
			out = append(out, p.Medication.Name)
		}
	}
	return out
}
