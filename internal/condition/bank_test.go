package condition

import (
	"strings"
	"testing"

	"github.com/abhisek/dosewise/internal/catalog"
)

func TestBankNotEmpty(t *testing.T) {
	if Count() == 0 {
		t.Fatal("curated template bank is empty")
	}
}

func TestTemplatesWellFormed(t *testing.T) {
	for _, tmpl := range All() {
		if tmpl.Condition == "" {
			t.Fatal("template with empty condition name")
		}
		if tmpl.AgeRange.Min <= 0 || tmpl.AgeRange.Max < tmpl.AgeRange.Min {
			t.Errorf("%s: invalid age range %+v", tmpl.Condition, tmpl.AgeRange)
		}
		if len(tmpl.Medications) == 0 {
			t.Errorf("%s: no medications", tmpl.Condition)
		}
		if !strings.Contains(tmpl.Dispatch, "{age}") || !strings.Contains(tmpl.Dispatch, "{gender}") {
			t.Errorf("%s: dispatch text missing {age}/{gender} placeholders", tmpl.Condition)
		}
		if tmpl.Presentation == "" {
			t.Errorf("%s: empty presentation", tmpl.Condition)
		}
	}
}

// Every curated medication name must resolve against the catalog.
// Generation drops unresolved names silently, so a typo here would
// quietly thin out scenarios.
func TestMedicationsResolve(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	for _, tmpl := range All() {
		for _, name := range tmpl.Medications {
			if _, ok := cat.Lookup(name); !ok {
				t.Errorf("%s: medication %q not in catalog", tmpl.Condition, name)
			}
		}
	}
}

func TestGet(t *testing.T) {
	tmpl, err := Get("Heart Failure")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tmpl.AgeRange.Min != 65 || tmpl.AgeRange.Max != 85 {
		t.Errorf("unexpected age range %+v", tmpl.AgeRange)
	}

	if _, err := Get("Dragon Pox"); err == nil {
		t.Error("expected error for unknown condition")
	}
}
