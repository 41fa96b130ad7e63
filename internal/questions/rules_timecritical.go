package questions

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dosewise/internal/scenario"
)

// missedCategories are the MISSED mnemonic groups for time-critical
// medications.
var missedCategories = []string{
	"Movement disorders",
	"Immunomodulators",
	"Sugar (diabetes medications)",
	"Steroids",
	"Epilepsy medications",
	"DOACs and warfarin",
}

// missedCategoryFor maps a pharmacological class to its MISSED group.
func missedCategoryFor(class string) (string, bool) {
	switch class {
	case "Dopaminergic", "Dopamine agonist":
		return "Movement disorders", true
	case "Immunosuppressant":
		return "Immunomodulators", true
	case "Biguanide", "Sulfonylurea", "Long-acting insulin":
		return "Sugar (diabetes medications)", true
	case "Corticosteroid":
		return "Steroids", true
	case "Anticonvulsant":
		return "Epilepsy medications", true
	case "Anticoagulant":
		return "DOACs and warfarin", true
	}
	return "", false
}

var timeCriticalRule = Rule{
	Name: "time-critical",
	Applies: func(s *scenario.Scenario) bool {
		critical := s.TimeCriticalMedications()
		// Needs at least one non-critical prescription to distract with,
		// otherwise every option would be a correct answer.
		return len(critical) > 0 && len(critical) < len(s.Prescriptions)
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := pick(r, s.TimeCriticalMedications())

		var alternatives []string
		for _, other := range s.Prescriptions {
			if !other.Medication.TimeCritical {
				alternatives = append(alternatives, other.Medication.Name)
			}
		}
		prompts := []string{
			"Which of the patient's medications is time critical and must not be delayed or missed?",
			"If this patient were admitted, which medication would be the priority to continue on time?",
		}
		return &Candidate{
			Prompt:       pick(r, prompts),
			Correct:      p.Medication.Name,
			Alternatives: alternatives,
			Fallback:     drugFallbackPool,
			Explanation:  fmt.Sprintf("%s is time critical: missed or delayed doses risk rapid deterioration.", p.Medication.Name),
		}
	},
}

var missedCategoryRule = Rule{
	Name: "missed-category",
	Applies: func(s *scenario.Scenario) bool {
		for _, p := range s.TimeCriticalMedications() {
			if _, ok := missedCategoryFor(p.Medication.Class); ok {
				return true
			}
		}
		return false
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		var eligible []scenario.Prescription
		for _, p := range s.TimeCriticalMedications() {
			if _, ok := missedCategoryFor(p.Medication.Class); ok {
				eligible = append(eligible, p)
			}
		}
		p := pick(r, eligible)
		category, _ := missedCategoryFor(p.Medication.Class)

		var alternatives []string
		for _, c := range missedCategories {
			if c != category {
				alternatives = append(alternatives, c)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("%s is a time-critical medication. Under the MISSED mnemonic, which group does it fall into?", p.Medication.Name),
			Correct:      category,
			Alternatives: alternatives,
			Explanation:  fmt.Sprintf("%s is a %s, covered by the '%s' group of the MISSED mnemonic.", p.Medication.Name, strings.ToLower(p.Medication.Class), category),
		}
	},
}
