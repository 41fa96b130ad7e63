package matching

import (
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/randutil"
	"github.com/abhisek/dosewise/internal/scenario"
)

func testScenario(t *testing.T, seed uint64, conditionName string) *scenario.Scenario {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	tmpl, err := condition.Get(conditionName)
	if err != nil {
		t.Fatal(err)
	}
	g := scenario.NewGenerator(cat, randutil.New(seed), zerolog.Nop())
	g.Clock = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return g.Generate(tmpl)
}

func TestGenerateBijection(t *testing.T) {
	for _, name := range condition.Names() {
		s := testScenario(t, 1, name)
		set := Generate(randutil.New(1), s)

		if len(set.Drugs) != len(s.Prescriptions) {
			t.Fatalf("%s: %d drug cards for %d prescriptions", name, len(set.Drugs), len(s.Prescriptions))
		}
		if len(set.Targets) != len(set.Drugs) {
			t.Fatalf("%s: %d targets for %d drugs", name, len(set.Targets), len(set.Drugs))
		}

		drugIDs := make(map[string]bool, len(set.Drugs))
		for _, d := range set.Drugs {
			if drugIDs[d.ID] {
				t.Fatalf("%s: duplicate drug card ID %s", name, d.ID)
			}
			drugIDs[d.ID] = true
		}

		referenced := make(map[string]bool, len(set.Targets))
		for _, tc := range set.Targets {
			if !drugIDs[tc.CorrectDrugID] {
				t.Fatalf("%s: target references unknown drug %s", name, tc.CorrectDrugID)
			}
			if referenced[tc.CorrectDrugID] {
				t.Fatalf("%s: drug %s referenced by two targets", name, tc.CorrectDrugID)
			}
			referenced[tc.CorrectDrugID] = true
		}
	}
}

func TestTargetContentMatchesRecord(t *testing.T) {
	cat, _ := catalog.Default()
	s := testScenario(t, 2, "Heart Failure")
	set := Generate(randutil.New(2), s)

	byID := make(map[string]string, len(set.Drugs))
	for _, d := range set.Drugs {
		byID[d.ID] = d.DrugName
	}

	for _, tc := range set.Targets {
		rec, ok := cat.Lookup(byID[tc.CorrectDrugID])
		if !ok {
			t.Fatalf("drug %q not in catalog", byID[tc.CorrectDrugID])
		}
		switch tc.Kind {
		case KindClass:
			if tc.Content != rec.Class {
				t.Errorf("%s: content %q != class %q", rec.Name, tc.Content, rec.Class)
			}
		case KindIndication:
			if tc.Content != rec.Indication {
				t.Errorf("%s: content %q != indication %q", rec.Name, tc.Content, rec.Indication)
			}
		default:
			t.Errorf("unknown kind %q", tc.Kind)
		}
	}
}

func TestBothKindsOccur(t *testing.T) {
	var class, indication bool
	for seed := uint64(1); seed <= 10; seed++ {
		s := testScenario(t, seed, "Rheumatoid Arthritis")
		set := Generate(randutil.New(seed), s)
		for _, tc := range set.Targets {
			switch tc.Kind {
			case KindClass:
				class = true
			case KindIndication:
				indication = true
			}
		}
	}
	if !class || !indication {
		t.Errorf("expected both target kinds across seeds: class=%v indication=%v", class, indication)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(randutil.New(5), testScenario(t, 5, "Epilepsy"))
	b := Generate(randutil.New(5), testScenario(t, 5, "Epilepsy"))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different matching sets")
	}
}

func TestDuplicatePrescriptionsCollapse(t *testing.T) {
	cat, _ := catalog.Default()
	rec, _ := cat.Lookup("Aspirin")
	s := &scenario.Scenario{
		Prescriptions: []scenario.Prescription{
			{Medication: rec},
			{Medication: rec},
		},
	}
	set := Generate(randutil.New(1), s)
	if len(set.Drugs) != 1 || len(set.Targets) != 1 {
		t.Errorf("duplicate prescriptions produced %d/%d cards, want 1/1", len(set.Drugs), len(set.Targets))
	}
}
