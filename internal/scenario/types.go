// Package scenario turns condition templates into concrete patient
// cases and sequences them for play. All generated entities are value
// objects: no shared mutable state, no back-references.
package scenario

import (
	"time"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/identity"
)

// Patient is a synthesized patient. Never mutated after creation.
type Patient struct {
	Name           string
	Age            int
	Gender         identity.Gender
	Address        string
	Postcode       string
	NHSNumber      string
	Presentation   string
	MedicalHistory []string
}

// Prescription is a single prescribed medication with dispensing text.
type Prescription struct {
	Medication   catalog.MedicationRecord
	Quantity     string
	Instructions string
}

// DocumentMetadata holds randomized cosmetic fields consumed by
// document renderers. Not covered by any generation invariant.
type DocumentMetadata struct {
	GPName           string
	SurgeryName      string
	PharmacyName     string
	IssueDate        time.Time
	ReviewDate       time.Time
	PrescriptionCode string
}

// Scenario is a concrete patient case ready for presentation and
// assessment. Owned exclusively by the session that requested it.
type Scenario struct {
	ID            string
	Condition     string
	Patient       Patient
	Prescriptions []Prescription
	DispatchInfo  string
	GPLetters     []string
	Document      DocumentMetadata
}

// TimeCriticalMedications returns the prescriptions flagged time
// critical, in prescription order.
func (s *Scenario) TimeCriticalMedications() []Prescription {
	var out []Prescription
	for _, p := range s.Prescriptions {
		if p.Medication.TimeCritical {
			out = append(out, p)
		}
	}
	return out
}

// HasClass reports whether any prescription's class contains the given
// substring (case-sensitive, matching catalog class naming).
func (s *Scenario) HasClass(substr string) bool {
	return s.FirstWithClass(substr) != nil
}

// FirstWithClass returns the first prescription whose class contains
// the given substring, or nil.
func (s *Scenario) FirstWithClass(substr string) *Prescription {
	for i := range s.Prescriptions {
		if containsFold(s.Prescriptions[i].Medication.Class, substr) {
			return &s.Prescriptions[i]
		}
	}
	return nil
}
