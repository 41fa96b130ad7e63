package scenario

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/dosewise/internal/catalog"
)

// instructionFor maps a catalog frequency keyword to label text.
// Unmatched frequencies fall through to a generic direction so a new
// catalog entry can never produce an empty label.
func instructionFor(rec catalog.MedicationRecord) string {
	switch rec.Frequency {
	case "Once":
		return "Take ONE daily"
	case "Twice":
		return "Take ONE twice daily"
	case "Three times":
		return "Take ONE three times daily"
	case "PRN":
		return "Use as required"
	default:
		return "Take as directed - " + rec.Frequency
	}
}

// quantityFor derives the dispensed quantity. Device categories get a
// fixed unit; tablets and capsules get a randomized pack size.
func quantityFor(r *rand.Rand, rec catalog.MedicationRecord) string {
	switch rec.Category {
	case catalog.CategoryInhaler:
		return "1 inhaler"
	case catalog.CategorySpray:
		return "1 spray"
	case catalog.CategoryInjection:
		return "1 pen device"
	default:
		packs := []int{28, 56}
		n := packs[r.IntN(len(packs))]
		return fmt.Sprintf("%d %s", n, strings.ToLower(string(rec.Category))+"s")
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
