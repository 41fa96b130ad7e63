package questions

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dosewise/internal/scenario"
)

// antithrombotic reports whether a prescription thins the blood
// (anticoagulant or antiplatelet).
func antithrombotic(p scenario.Prescription) bool {
	c := p.Medication.Class
	return c == "Anticoagulant" || c == "Antiplatelet"
}

func firstMatch(s *scenario.Scenario, pred func(scenario.Prescription) bool) *scenario.Prescription {
	for i := range s.Prescriptions {
		if pred(s.Prescriptions[i]) {
			return &s.Prescriptions[i]
		}
	}
	return nil
}

var interactionCautionRule = Rule{
	Name: "interaction-caution",
	Applies: func(s *scenario.Scenario) bool {
		return firstMatch(s, antithrombotic) != nil &&
			s.HasClass("NSAID")
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		thinner := firstMatch(s, antithrombotic)
		nsaid := s.FirstWithClass("NSAID")

		return &Candidate{
			Prompt:  fmt.Sprintf("The patient takes both %s and %s. What is the main concern with this combination?", thinner.Medication.Name, nsaid.Medication.Name),
			Correct: "Increased risk of bleeding",
			Alternatives: []string{
				"Reduced pain relief",
				"Severe drowsiness",
				"Raised blood pressure",
				"Kidney stones",
			},
			Explanation: fmt.Sprintf("NSAIDs like %s irritate the stomach lining and add to the bleeding risk of %s.", nsaid.Medication.Name, thinner.Medication.Name),
		}
	},
}

var diureticRule = Rule{
	Name: "diuretic-dehydration",
	Applies: func(s *scenario.Scenario) bool {
		return s.HasClass("diuretic")
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := s.FirstWithClass("diuretic")
		prompts := []string{
			fmt.Sprintf("%s is a diuretic. During vomiting or diarrhoea, which complication is this patient at particular risk of?", p.Medication.Name),
			fmt.Sprintf("The patient takes %s, a 'water tablet'. What should be watched for during acute illness?", p.Medication.Name),
		}
		return &Candidate{
			Prompt:  pick(r, prompts),
			Correct: "Dehydration and electrolyte imbalance",
			Alternatives: []string{
				"Fluid overload",
				"High blood sugar",
				"Severe constipation",
				"Weight gain",
			},
			Explanation: fmt.Sprintf("Diuretics such as %s increase fluid loss, so intercurrent illness can tip the patient into dehydration and electrolyte disturbance.", p.Medication.Name),
		}
	},
}

// monitoringRequirements names the routine checks for the high-risk
// drugs and classes that carry them.
type monitoringEntry struct {
	Match   func(scenario.Prescription) bool
	Display string
	Answer  string
}

var monitoringEntries = []monitoringEntry{
	{
		Match:   func(p scenario.Prescription) bool { return p.Medication.Name == "Lithium" },
		Display: "Lithium",
		Answer:  "Regular blood level (lithium) monitoring",
	},
	{
		Match:   func(p scenario.Prescription) bool { return p.Medication.Name == "Digoxin" },
		Display: "Digoxin",
		Answer:  "Pulse checks and blood level monitoring",
	},
	{
		Match:   func(p scenario.Prescription) bool { return p.Medication.Name == "Warfarin" },
		Display: "Warfarin",
		Answer:  "Regular INR blood tests",
	},
	{
		Match:   func(p scenario.Prescription) bool { return p.Medication.Class == "ACE inhibitor" },
		Display: "an ACE inhibitor",
		Answer:  "Kidney function and potassium checks",
	},
	{
		Match:   func(p scenario.Prescription) bool { return p.Medication.Class == "Statin" },
		Display: "a statin",
		Answer:  "Liver function tests",
	},
}

var monitoringAnswers = []string{
	"Regular blood level (lithium) monitoring",
	"Pulse checks and blood level monitoring",
	"Regular INR blood tests",
	"Kidney function and potassium checks",
	"Liver function tests",
	"Annual eyesight tests",
	"Weekly weight checks",
}

func monitoringMatches(s *scenario.Scenario) []struct {
	P scenario.Prescription
	E monitoringEntry
} {
	var out []struct {
		P scenario.Prescription
		E monitoringEntry
	}
	for _, p := range s.Prescriptions {
		for _, e := range monitoringEntries {
			if e.Match(p) {
				out = append(out, struct {
					P scenario.Prescription
					E monitoringEntry
				}{p, e})
				break
			}
		}
	}
	return out
}

var monitoringRule = Rule{
	Name: "monitoring",
	Applies: func(s *scenario.Scenario) bool {
		return len(monitoringMatches(s)) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		m := pick(r, monitoringMatches(s))

		var alternatives []string
		for _, a := range monitoringAnswers {
			if a != m.E.Answer {
				alternatives = append(alternatives, a)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("%s is %s. Which routine monitoring does it require?", m.P.Medication.Name, m.E.Display),
			Correct:      m.E.Answer,
			Alternatives: alternatives,
			Explanation:  fmt.Sprintf("%s is a high-risk medication: %s keeps the dose in its safe range.", m.P.Medication.Name, strings.ToLower(m.E.Answer)),
		}
	},
}

// classCautions pairs a pharmacological class with the condition that
// makes prescribers cautious about it. Ordered so distractor
// construction stays deterministic under a fixed seed.
var classCautions = []struct {
	Class       string
	Caution     string
	Explanation string
}{
	{"NSAID", "Asthma and kidney disease", "NSAIDs can trigger bronchospasm in asthma and strain the kidneys."},
	{"Beta-blocker", "Asthma", "Beta-blockers can narrow the airways and worsen asthma."},
	{"Corticosteroid", "Diabetes", "Steroids raise blood sugar and can destabilise diabetic control."},
	{"Opioid analgesic", "Severe respiratory disease", "Opioids depress breathing, a particular risk with existing respiratory disease."},
	{"Anticoagulant", "Active bleeding or recent surgery", "Anticoagulants make any bleeding harder to control."},
}

func cautionIndexFor(class string) int {
	for i := range classCautions {
		if classCautions[i].Class == class {
			return i
		}
	}
	return -1
}

func cautionMatches(s *scenario.Scenario) []scenario.Prescription {
	var out []scenario.Prescription
	for _, p := range s.Prescriptions {
		if cautionIndexFor(p.Medication.Class) >= 0 {
			out = append(out, p)
		}
	}
	return out
}

var cautionRule = Rule{
	Name: "class-caution",
	Applies: func(s *scenario.Scenario) bool {
		return len(cautionMatches(s)) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := pick(r, cautionMatches(s))
		c := classCautions[cautionIndexFor(p.Medication.Class)]

		var alternatives []string
		for _, other := range classCautions {
			if other.Class != c.Class && other.Caution != c.Caution {
				alternatives = append(alternatives, other.Caution)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("Which of these would make a prescriber cautious about %s?", p.Medication.Name),
			Correct:      c.Caution,
			Alternatives: alternatives,
			Fallback:     generalFallbackPool,
			Explanation:  c.Explanation,
		}
	},
}
