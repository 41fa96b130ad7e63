package scenario

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/randutil"
)

func testGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	g := NewGenerator(cat, randutil.New(seed), zerolog.Nop())
	g.Clock = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateAgeWithinRange(t *testing.T) {
	g := testGenerator(t, 1)
	tmpl, err := condition.Get("Heart Failure")
	if err != nil {
		t.Fatal(err)
	}

	allowed := make(map[string]bool, len(tmpl.Medications))
	for _, m := range tmpl.Medications {
		allowed[strings.ToLower(m)] = true
	}

	for i := 0; i < 1000; i++ {
		s := g.Generate(tmpl)
		if s.Patient.Age < tmpl.AgeRange.Min || s.Patient.Age > tmpl.AgeRange.Max {
			t.Fatalf("age %d outside [%d,%d]", s.Patient.Age, tmpl.AgeRange.Min, tmpl.AgeRange.Max)
		}
		for _, p := range s.Prescriptions {
			if !allowed[strings.ToLower(p.Medication.Name)] {
				t.Fatalf("prescription %q not in template medication list", p.Medication.Name)
			}
		}
	}
}

func TestGenerateDispatchInterpolation(t *testing.T) {
	g := testGenerator(t, 2)
	tmpl, _ := condition.Get("Asthma")
	s := g.Generate(tmpl)

	if strings.Contains(s.DispatchInfo, "{age}") || strings.Contains(s.DispatchInfo, "{gender}") {
		t.Errorf("placeholders left in dispatch: %q", s.DispatchInfo)
	}
	gender := strings.ToLower(string(s.Patient.Gender))
	if !strings.Contains(s.DispatchInfo, gender) {
		t.Errorf("dispatch %q missing gender %q", s.DispatchInfo, gender)
	}
}

func TestGenerateDropsUnknownMedications(t *testing.T) {
	g := testGenerator(t, 3)
	tmpl := condition.Template{
		Condition:    "Test Condition",
		AgeRange:     condition.AgeRange{Min: 40, Max: 50},
		Presentation: "Test presentation.",
		Medications:  []string{"Aspirin", "Unobtainium", "Ramipril"},
		History:      []string{"Test history"},
		Dispatch:     "{age} year old {gender}",
	}

	s := g.Generate(tmpl)
	if len(s.Prescriptions) != 2 {
		t.Fatalf("got %d prescriptions, want 2 (unknown name dropped)", len(s.Prescriptions))
	}
	for _, p := range s.Prescriptions {
		if p.Medication.Name == "Unobtainium" {
			t.Error("unresolved medication survived generation")
		}
	}
}

func TestPrescriptionInstructions(t *testing.T) {
	g := testGenerator(t, 4)
	tmpl := condition.Template{
		Condition:    "Mixed",
		AgeRange:     condition.AgeRange{Min: 60, Max: 60},
		Medications:  []string{"Ramipril", "Metformin", "Amoxicillin", "Salbutamol", "Methotrexate"},
		Presentation: "x",
		Dispatch:     "{age} {gender}",
	}
	s := g.Generate(tmpl)

	want := map[string]string{
		"Ramipril":     "Take ONE daily",
		"Metformin":    "Take ONE twice daily",
		"Amoxicillin":  "Take ONE three times daily",
		"Salbutamol":   "Use as required",
		"Methotrexate": "Take as directed - Weekly",
	}
	for _, p := range s.Prescriptions {
		if got := p.Instructions; got != want[p.Medication.Name] {
			t.Errorf("%s: instructions %q, want %q", p.Medication.Name, got, want[p.Medication.Name])
		}
	}
}

func TestPrescriptionQuantities(t *testing.T) {
	g := testGenerator(t, 5)
	tmpl := condition.Template{
		Condition:    "Mixed",
		AgeRange:     condition.AgeRange{Min: 60, Max: 60},
		Medications:  []string{"Salbutamol", "Glyceryl trinitrate", "Insulin glargine", "Aspirin"},
		Presentation: "x",
		Dispatch:     "{age} {gender}",
	}
	s := g.Generate(tmpl)

	for _, p := range s.Prescriptions {
		switch p.Medication.Category {
		case catalog.CategoryInhaler:
			if p.Quantity != "1 inhaler" {
				t.Errorf("inhaler quantity %q", p.Quantity)
			}
		case catalog.CategorySpray:
			if p.Quantity != "1 spray" {
				t.Errorf("spray quantity %q", p.Quantity)
			}
		case catalog.CategoryInjection:
			if p.Quantity != "1 pen device" {
				t.Errorf("injection quantity %q", p.Quantity)
			}
		default:
			if p.Quantity != "28 tablets" && p.Quantity != "56 tablets" {
				t.Errorf("tablet quantity %q, want randomized 28 or 56 pack", p.Quantity)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tmpl, _ := condition.Get("COPD Exacerbation")

	a := testGenerator(t, 42).Generate(tmpl)
	b := testGenerator(t, 42).Generate(tmpl)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different scenarios:\n%+v\n%+v", a, b)
	}

	c := testGenerator(t, 43).Generate(tmpl)
	if a.ID == c.ID {
		t.Error("different seeds produced identical scenario IDs")
	}
}

func TestDocumentMetadataDates(t *testing.T) {
	g := testGenerator(t, 6)
	tmpl, _ := condition.Get("Dementia")
	s := g.Generate(tmpl)

	now := g.Clock()
	if got := s.Document.IssueDate; !got.Equal(now.AddDate(0, 0, -3)) {
		t.Errorf("issue date %v, want now-3d", got)
	}
	if got := s.Document.ReviewDate; !got.Equal(now.AddDate(0, 6, 0)) {
		t.Errorf("review date %v, want now+6m", got)
	}
	if len(s.Document.PrescriptionCode) != 6 {
		t.Errorf("prescription code %q, want 6 digits", s.Document.PrescriptionCode)
	}
}
