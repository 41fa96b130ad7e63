package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/randutil"
)

func testSequencer(t *testing.T, k int) *Sequencer {
	t.Helper()
	g := testGenerator(t, 11)

	var curated []*Scenario
	for _, tmpl := range condition.All() {
		curated = append(curated, g.Generate(tmpl))
	}
	return NewSequencer(g, randutil.New(12), curated, k)
}

func TestSequencerLength(t *testing.T) {
	s := testSequencer(t, 10)
	assert.Equal(t, condition.Count()+10, s.Len())
}

func TestSequencerVisitsEachOncePerCycle(t *testing.T) {
	s := testSequencer(t, 20)
	n := s.Len()

	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		seen[s.Current().ID]++
		s.Advance()
	}

	require.Len(t, seen, n, "cycle should contain n distinct scenarios")
	for id, count := range seen {
		assert.Equal(t, 1, count, "scenario %s visited %d times in one cycle", id, count)
	}
}

// Wrapping the cursor regenerates the random subset while the curated
// scenarios persist. The asymmetry (ever-fresh generated pool, fixed
// curated pool) is intended behavior and pinned here.
func TestSequencerRegeneratesOnWrap(t *testing.T) {
	s := testSequencer(t, 15)
	n := s.Len()

	firstCycle := make(map[string]bool, n)
	curatedIDs := make(map[string]bool)
	for _, c := range s.curated {
		curatedIDs[c.ID] = true
	}

	for i := 0; i < n; i++ {
		firstCycle[s.Current().ID] = true
		s.Advance()
	}

	// Cursor wrapped; list was rebuilt at the same length.
	require.Equal(t, n, s.Len())

	var curatedSeen, generatedRepeats int
	for i := 0; i < n; i++ {
		id := s.Current().ID
		if curatedIDs[id] {
			curatedSeen++
		} else if firstCycle[id] {
			generatedRepeats++
		}
		s.Advance()
	}

	assert.Equal(t, len(curatedIDs), curatedSeen, "every curated scenario recurs each cycle")
	assert.Zero(t, generatedRepeats, "generated scenarios are rebuilt each cycle")
}

func TestSequencerCurrentStableBetweenAdvances(t *testing.T) {
	s := testSequencer(t, 5)
	a := s.Current()
	b := s.Current()
	assert.Same(t, a, b, "Current must not regenerate state")
}
