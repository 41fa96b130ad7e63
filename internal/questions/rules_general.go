package questions

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/scenario"
)

// polypharmacyThreshold is the prescription count at which the
// polypharmacy rule becomes eligible.
const polypharmacyThreshold = 4

var routes = []string{
	"Oral",
	"Inhaled",
	"Sublingual spray",
	"Subcutaneous injection",
}

func routeFor(rec catalog.MedicationRecord) string {
	switch rec.Category {
	case catalog.CategoryInhaler:
		return "Inhaled"
	case catalog.CategorySpray:
		return "Sublingual spray"
	case catalog.CategoryInjection:
		return "Subcutaneous injection"
	default:
		return "Oral"
	}
}

var routeRule = Rule{
	Name: "route",
	Applies: func(s *scenario.Scenario) bool {
		return len(s.Prescriptions) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := pick(r, s.Prescriptions)
		route := routeFor(p.Medication)

		var alternatives []string
		for _, alt := range routes {
			if alt != route {
				alternatives = append(alternatives, alt)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("By which route is %s administered?", p.Medication.Name),
			Correct:      route,
			Alternatives: alternatives,
			Explanation:  fmt.Sprintf("%s is dispensed as a %s, taken by the %s route.", p.Medication.Name, strings.ToLower(string(p.Medication.Category)), strings.ToLower(route)),
		}
	},
}

var polypharmacyRule = Rule{
	Name: "polypharmacy",
	Applies: func(s *scenario.Scenario) bool {
		return len(s.Prescriptions) >= polypharmacyThreshold
	},
	// Gated to half of eligible scenarios so the same question does not
	// appear in every medication-heavy case.
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		if r.IntN(2) == 0 {
			return nil
		}
		return &Candidate{
			Prompt:  fmt.Sprintf("This patient takes %d regular medications. What is this known as?", len(s.Prescriptions)),
			Correct: "Polypharmacy",
			Alternatives: []string{
				"Contraindication",
				"Drug tolerance",
				"Titration",
				"Compliance",
			},
			Explanation: "Taking multiple regular medications is called polypharmacy; it raises the risk of interactions and missed doses.",
		}
	},
}

var conditionFromHistoryRule = Rule{
	Name: "condition-from-history",
	Applies: func(s *scenario.Scenario) bool {
		return len(s.Patient.MedicalHistory) > 0 && s.Condition != ""
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		var alternatives []string
		for _, name := range condition.Names() {
			if name != s.Condition {
				alternatives = append(alternatives, name)
			}
		}
		// Shuffle so the same three sibling conditions do not always
		// appear together.
		r.Shuffle(len(alternatives), func(i, j int) {
			alternatives[i], alternatives[j] = alternatives[j], alternatives[i]
		})

		history := strings.Join(s.Patient.MedicalHistory, ", ")
		return &Candidate{
			Prompt:       fmt.Sprintf("The history notes: %s. Together with the prescriptions, which condition best fits this presentation?", strings.ToLower(history)),
			Correct:      s.Condition,
			Alternatives: alternatives,
			Explanation:  fmt.Sprintf("The combination of history and medications points to %s.", s.Condition),
		}
	},
}

var indicationRule = Rule{
	Name: "indication",
	Applies: func(s *scenario.Scenario) bool {
		for _, p := range s.Prescriptions {
			if p.Medication.Indication != "" {
				return true
			}
		}
		return false
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		var eligible []scenario.Prescription
		for _, p := range s.Prescriptions {
			if p.Medication.Indication != "" {
				eligible = append(eligible, p)
			}
		}
		p := pick(r, eligible)

		var alternatives []string
		for _, other := range s.Prescriptions {
			in := other.Medication.Indication
			if in != "" && in != p.Medication.Indication {
				alternatives = append(alternatives, in)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("What is %s prescribed for?", p.Medication.Name),
			Correct:      p.Medication.Indication,
			Alternatives: alternatives,
			Fallback:     indicationFallbackPool,
			Explanation:  fmt.Sprintf("%s is used for %s.", p.Medication.Name, strings.ToLower(p.Medication.Indication)),
		}
	},
}

var sideEffectRule = Rule{
	Name: "side-effect",
	Applies: func(s *scenario.Scenario) bool {
		for _, p := range s.Prescriptions {
			if len(p.Medication.SideEffects) > 0 {
				return true
			}
		}
		return false
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		var eligible []scenario.Prescription
		for _, p := range s.Prescriptions {
			if len(p.Medication.SideEffects) > 0 {
				eligible = append(eligible, p)
			}
		}
		p := pick(r, eligible)
		effect := pick(r, p.Medication.SideEffects)

		// Distract with side effects of the other prescriptions that
		// this drug does not share.
		var alternatives []string
		for _, other := range s.Prescriptions {
			if other.Medication.Name == p.Medication.Name {
				continue
			}
			for _, se := range other.Medication.SideEffects {
				if !contains(p.Medication.SideEffects, se) {
					alternatives = append(alternatives, se)
				}
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("Which of the following is a recognised side effect of %s?", p.Medication.Name),
			Correct:      effect,
			Alternatives: alternatives,
			Fallback:     []string{"Hair growth", "Improved night vision", "Heightened appetite", "Ringing in the ears"},
			Explanation:  fmt.Sprintf("%s is a recognised side effect of %s.", effect, p.Medication.Name),
		}
	},
}
