package questions

import (
	"math/rand/v2"

	"github.com/abhisek/dosewise/internal/scenario"
)

// DefaultMaxQuestions bounds the question set per scenario.
const DefaultMaxQuestions = 10

// Config holds generator settings.
type Config struct {
	// MaxQuestions truncates the shuffled pool. Zero means
	// DefaultMaxQuestions.
	MaxQuestions int
}

// Generator evaluates the rule registry against scenarios.
type Generator struct {
	rng   *rand.Rand
	rules []Rule
	max   int
}

// New creates a Generator using the full registry.
func New(r *rand.Rand, cfg Config) *Generator {
	max := cfg.MaxQuestions
	if max <= 0 {
		max = DefaultMaxQuestions
	}
	return &Generator{rng: r, rules: Registry(), max: max}
}

// Generate produces up to MaxQuestions unique questions for the
// scenario. Scenario data is heterogeneous, so each rule's predicate
// gates its builder; the pool is shuffled before truncation so equally
// composed scenarios do not share a fixed presentation order. A
// scenario matching no rules yields an empty slice — callers present
// an explicit no-assessment path.
func (g *Generator) Generate(s *scenario.Scenario) []Question {
	var pool []Question
	for _, rule := range g.rules {
		if !rule.Applies(s) {
			continue
		}
		cand := rule.Build(g.rng, s)
		if cand == nil {
			continue
		}

		fallback := cand.Fallback
		if fallback == nil {
			fallback = generalFallbackPool
		}
		options, correctIndex := SynthesizeOptions(g.rng, cand.Correct, cand.Alternatives, fallback, OptionCount)

		pool = append(pool, Question{
			Prompt:       cand.Prompt,
			Options:      options,
			CorrectIndex: correctIndex,
			Explanation:  cand.Explanation,
			Rule:         rule.Name,
		})
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > g.max {
		pool = pool[:g.max]
	}
	return pool
}
