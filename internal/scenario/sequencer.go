package scenario

import "math/rand/v2"

// DefaultGeneratedPerCycle is the number of freshly generated scenarios
// mixed into each cycle alongside the curated set.
const DefaultGeneratedPerCycle = 50

// Sequencer maintains an ordered, non-repeating-until-exhausted
// sequence of scenarios. Each cycle holds the fixed curated scenarios
// plus K freshly generated ones in a uniformly shuffled order; when the
// cursor wraps, the generated subset is rebuilt and the whole list is
// reshuffled. The curated subset therefore recurs every cycle while the
// generated subset is ever-fresh.
type Sequencer struct {
	gen     *Generator
	rng     *rand.Rand
	curated []*Scenario
	k       int

	list   []*Scenario
	cursor int
}

// NewSequencer builds a sequencer. Curated scenarios are generated once
// from the given templates and kept for the sequencer's lifetime; k
// fresh scenarios are regenerated at every cycle boundary. The curated
// set must be non-empty.
func NewSequencer(gen *Generator, r *rand.Rand, curated []*Scenario, k int) *Sequencer {
	s := &Sequencer{
		gen:     gen,
		rng:     r,
		curated: curated,
		k:       k,
	}
	s.rebuild()
	return s
}

// rebuild composes a new cycle: curated scenarios plus k generated,
// Fisher-Yates shuffled.
func (s *Sequencer) rebuild() {
	list := make([]*Scenario, 0, len(s.curated)+s.k)
	list = append(list, s.curated...)
	for i := 0; i < s.k; i++ {
		list = append(list, s.gen.GenerateRandom())
	}
	s.rng.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
	s.list = list
	s.cursor = 0
}

// Current returns the scenario at the cursor.
func (s *Sequencer) Current() *Scenario {
	return s.list[s.cursor]
}

// Advance moves the cursor forward. On wrap-around the generated subset
// is rebuilt before play continues, so no scenario repeats within a
// cycle and the generated pool changes across cycles.
func (s *Sequencer) Advance() {
	s.cursor = (s.cursor + 1) % len(s.list)
	if s.cursor == 0 {
		s.rebuild()
	}
}

// Len returns the cycle length.
func (s *Sequencer) Len() int {
	return len(s.list)
}
