package identity

import (
	"math/rand/v2"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestSynthesizeShape(t *testing.T) {
	r := newRand(1)
	postcodeRe := regexp.MustCompile(`^[A-Z]{2}[0-9] [0-9][A-Z]{2}$`)
	nhsRe := regexp.MustCompile(`^[0-9]{3} [0-9]{3} [0-9]{4}$`)

	for i := 0; i < 200; i++ {
		gender := Male
		if i%2 == 1 {
			gender = Female
		}
		id := Synthesize(r, gender)

		if !strings.Contains(id.Name, " ") {
			t.Fatalf("name %q missing surname", id.Name)
		}
		if !postcodeRe.MatchString(id.Postcode) {
			t.Fatalf("postcode %q does not match pattern", id.Postcode)
		}
		if !nhsRe.MatchString(id.NHSNumber) {
			t.Fatalf("NHS number %q does not match pattern", id.NHSNumber)
		}
		if id.Address == "" {
			t.Fatal("empty address")
		}
	}
}

func TestGenderedFirstNames(t *testing.T) {
	femaleSet := make(map[string]bool)
	for _, n := range femaleFirstNames {
		femaleSet[n] = true
	}

	r := newRand(7)
	for i := 0; i < 100; i++ {
		id := Synthesize(r, Male)
		first := strings.SplitN(id.Name, " ", 2)[0]
		if femaleSet[first] {
			t.Fatalf("male identity drew female first name %q", first)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := Synthesize(newRand(42), Female)
	b := Synthesize(newRand(42), Female)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different identities:\n%+v\n%+v", a, b)
	}
}
