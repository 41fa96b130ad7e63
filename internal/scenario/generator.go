package scenario

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/identity"
	"github.com/abhisek/dosewise/internal/randutil"
)

// Generator synthesizes concrete scenarios from condition templates.
// All non-determinism flows from the injected RNG; a seeded source
// makes output reproducible.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	log     zerolog.Logger

	// Clock is overridable for tests; document dates derive from it.
	Clock func() time.Time
}

// NewGenerator creates a Generator. The logger records dropped
// medication names; pass zerolog.Nop() to silence it.
func NewGenerator(cat *catalog.Catalog, r *rand.Rand, log zerolog.Logger) *Generator {
	return &Generator{
		catalog: cat,
		rng:     r,
		log:     log,
		Clock:   time.Now,
	}
}

// Generate builds a Scenario from the template. Medication names with
// no catalog match are dropped; the scenario is still produced with
// whatever resolved.
func (g *Generator) Generate(tmpl condition.Template) *Scenario {
	age := tmpl.AgeRange.Min + g.rng.IntN(tmpl.AgeRange.Max-tmpl.AgeRange.Min+1)
	gender := identity.Male
	if g.rng.IntN(2) == 1 {
		gender = identity.Female
	}
	id := identity.Synthesize(g.rng, gender)

	patient := Patient{
		Name:           id.Name,
		Age:            age,
		Gender:         gender,
		Address:        id.Address,
		Postcode:       id.Postcode,
		NHSNumber:      id.NHSNumber,
		Presentation:   tmpl.Presentation,
		MedicalHistory: append([]string(nil), tmpl.History...),
	}

	var prescriptions []Prescription
	for _, name := range tmpl.Medications {
		rec, ok := g.catalog.Lookup(name)
		if !ok {
			g.log.Debug().
				Str("condition", tmpl.Condition).
				Str("medication", name).
				Msg("medication not in catalog, dropped from scenario")
			continue
		}
		prescriptions = append(prescriptions, Prescription{
			Medication:   rec,
			Quantity:     quantityFor(g.rng, rec),
			Instructions: instructionFor(rec),
		})
	}

	dispatch := strings.NewReplacer(
		"{age}", strconv.Itoa(age),
		"{gender}", strings.ToLower(string(gender)),
	).Replace(tmpl.Dispatch)

	// IDs draw from the injected RNG so a fixed seed reproduces the
	// whole scenario, identifiers included.
	scenarioID, err := uuid.NewRandomFromReader(randutil.Reader(g.rng))
	if err != nil {
		scenarioID = uuid.New()
	}

	return &Scenario{
		ID:            scenarioID.String(),
		Condition:     tmpl.Condition,
		Patient:       patient,
		Prescriptions: prescriptions,
		DispatchInfo:  dispatch,
		GPLetters:     append([]string(nil), tmpl.GPLetterTypes...),
		Document:      newDocumentMetadata(g.rng, g.Clock()),
	}
}

// GenerateRandom picks a random template from the bank and generates
// a scenario from it.
func (g *Generator) GenerateRandom() *Scenario {
	all := condition.All()
	return g.Generate(all[g.rng.IntN(len(all))])
}
