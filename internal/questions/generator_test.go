package questions

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

func TestGenerateQuestionInvariants(t *testing.T) {
	for _, name := range condition.Names() {
		for seed := uint64(1); seed <= 5; seed++ {
			s := testScenario(t, seed, name)
			qs := New(randutil.New(seed), Config{}).Generate(s)

			if len(qs) > DefaultMaxQuestions {
				t.Fatalf("%s: %d questions exceeds max", name, len(qs))
			}
			for _, q := range qs {
				if len(q.Options) != OptionCount {
					t.Fatalf("%s/%s: %d options, want %d", name, q.Rule, len(q.Options), OptionCount)
				}
				seen := make(map[string]bool, len(q.Options))
				for _, o := range q.Options {
					if seen[o] {
						t.Fatalf("%s/%s: duplicate option %q", name, q.Rule, o)
					}
					seen[o] = true
				}
				if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					t.Fatalf("%s/%s: correct index %d out of range", name, q.Rule, q.CorrectIndex)
				}
				if q.Prompt == "" || q.Explanation == "" {
					t.Fatalf("%s/%s: empty prompt or explanation", name, q.Rule)
				}
			}
		}
	}
}

func TestGenerateEmptyScenario(t *testing.T) {
	s := &scenario.Scenario{Patient: scenario.Patient{Name: "Nobody", Age: 50}}
	qs := New(randutil.New(1), Config{}).Generate(s)
	if len(qs) != 0 {
		t.Errorf("scenario with no prescriptions produced %d questions, want 0", len(qs))
	}
}

func TestGenerateTruncation(t *testing.T) {
	s := testScenario(t, 3, "Heart Failure")
	qs := New(randutil.New(3), Config{MaxQuestions: 3}).Generate(s)
	if len(qs) > 3 {
		t.Errorf("got %d questions, want at most 3", len(qs))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := New(randutil.New(21), Config{}).Generate(testScenario(t, 8, "COPD Exacerbation"))
	b := New(randutil.New(21), Config{}).Generate(testScenario(t, 8, "COPD Exacerbation"))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different question sets")
	}
}

func TestGenerateNoDuplicateRules(t *testing.T) {
	s := testScenario(t, 4, "Rheumatoid Arthritis")
	qs := New(randutil.New(4), Config{}).Generate(s)

	seen := make(map[string]bool)
	for _, q := range qs {
		if seen[q.Rule] {
			t.Errorf("rule %q produced more than one question", q.Rule)
		}
		seen[q.Rule] = true
	}
}
