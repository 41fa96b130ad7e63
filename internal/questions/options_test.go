package questions

import (
	"testing"

	"github.com/abhisek/dosewise/internal/randutil"
)

func TestSynthesizeOptionsBasic(t *testing.T) {
	alternatives := []string{"ACE inhibitor", "ARB", "CCB", "Statin", "PPI"}
	options, idx := SynthesizeOptions(randutil.New(1), "Beta-blocker", alternatives, generalFallbackPool, 4)

	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}
	if options[idx] != "Beta-blocker" {
		t.Errorf("options[%d] = %q, want correct answer", idx, options[idx])
	}

	seen := make(map[string]bool)
	fromAlternatives := 0
	for _, o := range options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		for _, a := range alternatives {
			if o == a {
				fromAlternatives++
			}
		}
	}
	if fromAlternatives != 3 {
		t.Errorf("%d options drawn from alternatives, want 3", fromAlternatives)
	}
}

func TestSynthesizeOptionsDeduplicates(t *testing.T) {
	alternatives := []string{"A", "A", "Correct", "B", "B", "C"}
	options, idx := SynthesizeOptions(randutil.New(2), "Correct", alternatives, nil, 4)

	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}
	count := 0
	for _, o := range options {
		if o == "Correct" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("correct answer appears %d times, want exactly 1", count)
	}
	if options[idx] != "Correct" {
		t.Errorf("correctIndex points at %q", options[idx])
	}
}

func TestSynthesizeOptionsFallsBack(t *testing.T) {
	options, idx := SynthesizeOptions(randutil.New(3), "X", []string{"A"}, []string{"F1", "F2", "F3"}, 4)
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4 after fallback", len(options))
	}
	if options[idx] != "X" {
		t.Errorf("correctIndex points at %q", options[idx])
	}
}

// Both pools starved: the result is shorter than the target. The
// synthesizer never pads or fails; callers own that boundary.
func TestSynthesizeOptionsStarved(t *testing.T) {
	options, idx := SynthesizeOptions(randutil.New(4), "X", []string{"A"}, []string{"A"}, 4)
	if len(options) != 2 {
		t.Fatalf("got %d options, want 2 when starved", len(options))
	}
	if options[idx] != "X" {
		t.Errorf("correctIndex points at %q", options[idx])
	}
}

// Exact-string dedup only: case variants pass through as distinct.
func TestSynthesizeOptionsExactMatchOnly(t *testing.T) {
	options, _ := SynthesizeOptions(randutil.New(5), "Statin", []string{"statin", "STATIN", "ARB"}, nil, 4)
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4 (case variants are distinct values)", len(options))
	}
}

func TestSynthesizeOptionsDeterministic(t *testing.T) {
	alternatives := []string{"A", "B", "C", "D", "E"}
	a, ai := SynthesizeOptions(randutil.New(9), "X", alternatives, nil, 4)
	b, bi := SynthesizeOptions(randutil.New(9), "X", alternatives, nil, 4)

	if ai != bi {
		t.Errorf("correct index differs: %d vs %d", ai, bi)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
