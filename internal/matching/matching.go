// Package matching builds the drug-to-target matching puzzle from a
// scenario's prescriptions.
package matching

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/dosewise/internal/randutil"
	"github.com/abhisek/dosewise/internal/scenario"
)

// TargetKind says what a target card shows about its drug.
type TargetKind string

const (
	KindClass      TargetKind = "class"
	KindIndication TargetKind = "indication"
)

// DrugCard is one selectable drug.
type DrugCard struct {
	ID       string
	DrugName string
}

// TargetCard is one selectable target. CorrectDrugID references the
// drug card this target pairs with; card positions carry no pairing
// information.
type TargetCard struct {
	ID            string
	Content       string
	CorrectDrugID string
	Kind          TargetKind
}

// Set is a complete matching puzzle. CorrectDrugID defines a bijection
// between Targets and Drugs.
type Set struct {
	Drugs   []DrugCard
	Targets []TargetCard
}

// Generate builds one drug card and one target card per distinct
// prescription (by medication name). Each target shows the drug's
// class or indication, chosen 50/50, falling back to the other when a
// field is empty. Both slices are shuffled independently.
func Generate(r *rand.Rand, s *scenario.Scenario) Set {
	var set Set
	seen := make(map[string]bool, len(s.Prescriptions))

	for _, p := range s.Prescriptions {
		rec := p.Medication
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true

		drugID := newID(r)
		set.Drugs = append(set.Drugs, DrugCard{
			ID:       drugID,
			DrugName: rec.Name,
		})

		kind := KindClass
		content := rec.Class
		if r.IntN(2) == 1 {
			kind = KindIndication
			content = rec.Indication
		}
		if content == "" {
			if kind == KindClass {
				kind, content = KindIndication, rec.Indication
			} else {
				kind, content = KindClass, rec.Class
			}
		}

		set.Targets = append(set.Targets, TargetCard{
			ID:            newID(r),
			Content:       content,
			CorrectDrugID: drugID,
			Kind:          kind,
		})
	}

	r.Shuffle(len(set.Drugs), func(i, j int) {
		set.Drugs[i], set.Drugs[j] = set.Drugs[j], set.Drugs[i]
	})
	r.Shuffle(len(set.Targets), func(i, j int) {
		set.Targets[i], set.Targets[j] = set.Targets[j], set.Targets[i]
	})
	return set
}

// newID draws a UUID from the injected RNG so sets reproduce under a
// fixed seed.
func newID(r *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(randutil.Reader(r))
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
