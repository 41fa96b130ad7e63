package questions

import "math/rand/v2"

// OptionCount is the target size of a question's option set.
const OptionCount = 4

// SynthesizeOptions builds a shuffled, duplicate-free option set of the
// target size containing the correct answer, and returns the correct
// answer's post-shuffle index.
//
// Alternatives are consumed in order, then the fallback pool; dedup is
// exact string comparison (case and whitespace variants pass through
// as distinct values — intended behavior). When both pools run out the
// result is shorter than size; callers surface that rather than pad.
func SynthesizeOptions(r *rand.Rand, correct string, alternatives, fallbackPool []string, size int) ([]string, int) {
	options := make([]string, 0, size)
	options = append(options, correct)

	appendUnique := func(pool []string) {
		for _, v := range pool {
			if len(options) >= size {
				return
			}
			if !contains(options, v) {
				options = append(options, v)
			}
		}
	}
	appendUnique(alternatives)
	appendUnique(fallbackPool)

	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, v := range options {
		if v == correct {
			correctIndex = i
			break
		}
	}
	return options, correctIndex
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
