package catalog

// Category describes the dispensed form of a medication.
type Category string

const (
	CategoryTablet    Category = "Tablet"
	CategoryCapsule   Category = "Capsule"
	CategoryInhaler   Category = "Inhaler"
	CategorySpray     Category = "Spray"
	CategoryInjection Category = "Injection"
)

// MedicationRecord is a single entry in the medication reference data.
// Records are immutable after load; callers receive copies.
type MedicationRecord struct {
	// Name is the unique key, e.g. "Bisoprolol".
	Name string `json:"name"`

	// Category is the dispensed form (tablet, inhaler, ...).
	Category Category `json:"category"`

	// Class is the pharmacological class, e.g. "Beta-blocker".
	Class string `json:"class"`

	// Dose is the usual adult dose as display text, e.g. "2.5mg".
	Dose string `json:"dose"`

	// Frequency is the dosing frequency keyword used to derive
	// prescription instructions: "Once", "Twice", "Three times", "PRN",
	// or free text such as "Weekly".
	Frequency string `json:"frequency"`

	// Indication is what the medication is prescribed for.
	Indication string `json:"indication"`

	// SideEffects lists recognised side effects, most common first.
	SideEffects []string `json:"sideEffects"`

	// TimeCritical marks medications whose omission or delay causes
	// rapid deterioration (the MISSED mnemonic groups).
	TimeCritical bool `json:"timeCritical"`
}
