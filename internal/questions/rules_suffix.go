package questions

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dosewise/internal/scenario"
)

// suffixClasses maps drug-name suffixes to the class they usually
// indicate. Names and classes mirror the catalog's class naming.
var suffixClasses = []struct {
	Suffix string
	Class  string
}{
	{"olol", "Beta-blocker"},
	{"pril", "ACE inhibitor"},
	{"sartan", "Angiotensin receptor blocker"},
	{"statin", "Statin"},
	{"dipine", "Calcium channel blocker"},
	{"prazole", "Proton pump inhibitor"},
	{"cillin", "Penicillin antibiotic"},
	{"semide", "Loop diuretic"},
}

// suffixFor returns the matching suffix entry for a drug name.
func suffixFor(name string) (string, string, bool) {
	lower := strings.ToLower(name)
	for _, sc := range suffixClasses {
		if strings.HasSuffix(lower, sc.Suffix) {
			return sc.Suffix, sc.Class, true
		}
	}
	return "", "", false
}

// suffixedPrescriptions returns the prescriptions whose drug name
// carries a known suffix.
func suffixedPrescriptions(s *scenario.Scenario) []scenario.Prescription {
	var out []scenario.Prescription
	for _, p := range s.Prescriptions {
		if _, _, ok := suffixFor(p.Medication.Name); ok {
			out = append(out, p)
		}
	}
	return out
}

func otherSuffixClasses(excludeClass string) (suffixes, classes []string) {
	for _, sc := range suffixClasses {
		if sc.Class == excludeClass {
			continue
		}
		suffixes = append(suffixes, "-"+sc.Suffix)
		classes = append(classes, sc.Class)
	}
	return suffixes, classes
}

var suffixToClassRule = Rule{
	Name: "suffix-to-class",
	Applies: func(s *scenario.Scenario) bool {
		return len(suffixedPrescriptions(s)) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := pick(r, suffixedPrescriptions(s))
		suffix, class, _ := suffixFor(p.Medication.Name)
		_, classes := otherSuffixClasses(class)

		prompts := []string{
			fmt.Sprintf("Medications ending in '-%s' usually belong to which drug class?", suffix),
			fmt.Sprintf("The patient takes %s. Drugs with the '-%s' ending are usually which class?", p.Medication.Name, suffix),
		}
		return &Candidate{
			Prompt:       pick(r, prompts),
			Correct:      class,
			Alternatives: classes,
			Fallback:     classFallbackPool,
			Explanation:  fmt.Sprintf("The '-%s' suffix indicates a %s, like the patient's %s.", suffix, strings.ToLower(class), p.Medication.Name),
		}
	},
}

var drugToClassRule = Rule{
	Name: "drug-to-class",
	Applies: func(s *scenario.Scenario) bool {
		return len(s.Prescriptions) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		p := pick(r, s.Prescriptions)
		rec := p.Medication

		var alternatives []string
		for _, other := range s.Prescriptions {
			if c := other.Medication.Class; c != rec.Class {
				alternatives = append(alternatives, c)
			}
		}
		return &Candidate{
			Prompt:       fmt.Sprintf("Which drug class does %s belong to?", rec.Name),
			Correct:      rec.Class,
			Alternatives: alternatives,
			Fallback:     classFallbackPool,
			Explanation:  fmt.Sprintf("%s is a %s, prescribed here for %s.", rec.Name, strings.ToLower(rec.Class), strings.ToLower(rec.Indication)),
		}
	},
}

// historySuffixExpectations links history items to the prescription
// suffix a trained eye would expect to find alongside them.
var historySuffixExpectations = map[string]struct {
	Suffix string
	Class  string
}{
	"High blood pressure": {"-pril", "ACE inhibitor"},
	"High cholesterol":    {"-statin", "Statin"},
	"Angina":              {"-olol", "Beta-blocker"},
	"Heart failure":       {"-semide", "Loop diuretic"},
	"Acid reflux":         {"-prazole", "Proton pump inhibitor"},
}

func historySuffixMatches(s *scenario.Scenario) []string {
	var out []string
	for _, h := range s.Patient.MedicalHistory {
		if _, ok := historySuffixExpectations[h]; ok {
			out = append(out, h)
		}
	}
	return out
}

var historySuffixRule = Rule{
	Name: "history-to-suffix",
	Applies: func(s *scenario.Scenario) bool {
		return len(historySuffixMatches(s)) > 0
	},
	Build: func(r *rand.Rand, s *scenario.Scenario) *Candidate {
		h := pick(r, historySuffixMatches(s))
		expected := historySuffixExpectations[h]
		suffixes, _ := otherSuffixClasses(expected.Class)

		return &Candidate{
			Prompt:       fmt.Sprintf("The history mentions %s. A medication ending in which suffix would you expect on the prescription?", strings.ToLower(h)),
			Correct:      expected.Suffix,
			Alternatives: suffixes,
			Explanation:  fmt.Sprintf("%s is commonly treated with a %s, whose names usually end in '%s'.", h, strings.ToLower(expected.Class), expected.Suffix),
		}
	},
}
