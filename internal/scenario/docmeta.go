package scenario

import (
	"fmt"
	"math/rand/v2"
	"time"
)

var gpNames = []string{
	"Dr A. Whitmore", "Dr S. Banerjee", "Dr L. O'Connell",
	"Dr M. Haverford", "Dr P. Lindqvist", "Dr R. Achebe",
	"Dr J. Kowalski", "Dr E. Marchetti",
}

var surgeryNames = []string{
	"Riverside Medical Practice", "The Willows Surgery",
	"Oakfield Health Centre", "Bridge Street Surgery",
	"Longmeadow Family Practice",
}

var pharmacyNames = []string{
	"Hartley's Pharmacy", "Greenway Chemist",
	"Cornmarket Pharmacy", "Bellfield Dispensary",
}

const (
	issueDateOffsetDays = -3
	reviewOffsetMonths  = 6
)

// newDocumentMetadata draws the cosmetic document fields. Dates are
// fixed offsets from now so displayed documents stay internally
// consistent within a scenario.
func newDocumentMetadata(r *rand.Rand, now time.Time) DocumentMetadata {
	return DocumentMetadata{
		GPName:           gpNames[r.IntN(len(gpNames))],
		SurgeryName:      surgeryNames[r.IntN(len(surgeryNames))],
		PharmacyName:     pharmacyNames[r.IntN(len(pharmacyNames))],
		IssueDate:        now.AddDate(0, 0, issueDateOffsetDays),
		ReviewDate:       now.AddDate(0, reviewOffsetMonths, 0),
		PrescriptionCode: fmt.Sprintf("%06d", r.IntN(1000000)),
	}
}
