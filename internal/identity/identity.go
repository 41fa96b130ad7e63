// Package identity synthesizes plausible but entirely fictional patient
// identities. All fields are cosmetic: postcodes and NHS-style numbers
// follow the surface pattern only and are never validated against real
// registries.
package identity

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Gender is the synthesized patient gender.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Identity holds the cosmetic identity fields of a patient.
type Identity struct {
	Name      string
	Address   string
	Postcode  string
	NHSNumber string
}

var maleFirstNames = []string{
	"Arthur", "Brian", "Colin", "David", "Edward", "Frank", "George",
	"Harold", "James", "Kenneth", "Leonard", "Michael", "Norman",
	"Peter", "Raymond", "Stanley", "Thomas", "Victor", "William",
}

var femaleFirstNames = []string{
	"Audrey", "Barbara", "Carol", "Doris", "Eileen", "Florence",
	"Gladys", "Hilda", "Irene", "Joan", "Kathleen", "Margaret",
	"Nora", "Olive", "Patricia", "Rose", "Sheila", "Vera", "Winifred",
}

var surnames = []string{
	"Atkinson", "Baxter", "Clarke", "Davies", "Edwards", "Fletcher",
	"Griffiths", "Holloway", "Jennings", "Kirkwood", "Lawson",
	"Mercer", "Nicholls", "Osborne", "Pemberton", "Quinn", "Reynolds",
	"Sutton", "Thornton", "Whitfield",
}

var streets = []string{
	"Mill Lane", "Station Road", "Church Street", "Victoria Avenue",
	"The Crescent", "Orchard Close", "Kings Road", "Meadow View",
	"Beech Grove", "Hawthorn Drive", "Elm Terrace", "Chapel Walk",
}

var towns = []string{
	"Ashford", "Brampton", "Caldwell", "Denholm", "Eastleigh",
	"Farnworth", "Greystoke", "Harlington", "Kelsall", "Marsden",
}

// postcodeLetters excludes characters that read ambiguously in print.
const postcodeLetters = "ABCDEFGHJKLMNPRSTUWXY"

// Synthesize produces a random identity for the given gender. Output is
// a pure function of the gender and the RNG state.
func Synthesize(r *rand.Rand, gender Gender) Identity {
	first := maleFirstNames[r.IntN(len(maleFirstNames))]
	if gender == Female {
		first = femaleFirstNames[r.IntN(len(femaleFirstNames))]
	}
	surname := surnames[r.IntN(len(surnames))]

	address := fmt.Sprintf("%d %s, %s",
		1+r.IntN(120),
		streets[r.IntN(len(streets))],
		towns[r.IntN(len(towns))],
	)

	return Identity{
		Name:      first + " " + surname,
		Address:   address,
		Postcode:  postcode(r),
		NHSNumber: nhsNumber(r),
	}
}

// postcode builds a string matching the pattern
// letter,letter,digit space digit,letter,letter.
func postcode(r *rand.Rand) string {
	letter := func() byte { return postcodeLetters[r.IntN(len(postcodeLetters))] }
	digit := func() byte { return byte('0' + r.IntN(10)) }

	var b strings.Builder
	b.WriteByte(letter())
	b.WriteByte(letter())
	b.WriteByte(digit())
	b.WriteByte(' ')
	b.WriteByte(digit())
	b.WriteByte(letter())
	b.WriteByte(letter())
	return b.String()
}

// nhsNumber builds a 10-digit pseudo-ID in "NNN NNN NNNN" display form.
// No check digit; this is display data for documents only.
func nhsNumber(r *rand.Rand) string {
	var digits [10]byte
	for i := range digits {
		digits[i] = byte('0' + r.IntN(10))
	}
	return fmt.Sprintf("%s %s %s", digits[0:3], digits[3:6], digits[6:10])
}
