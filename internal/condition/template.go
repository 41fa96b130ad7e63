// Package condition holds the read-only bank of condition templates that
// scenarios are synthesized from.
package condition

// AgeRange is an inclusive patient age range.
type AgeRange struct {
	Min int
	Max int
}

// Template is an abstract condition definition. Templates are immutable
// reference data; generation combines a template with catalog lookups
// and a random identity to produce a concrete scenario.
type Template struct {
	// Condition is the display name, e.g. "Heart Failure".
	Condition string

	// AgeRange bounds the synthesized patient age, inclusive.
	AgeRange AgeRange

	// Presentation is the presenting-complaint text attached verbatim
	// to the patient.
	Presentation string

	// Medications lists medication names resolved against the catalog.
	// Names with no catalog match are dropped during generation.
	Medications []string

	// History lists past medical history items.
	History []string

	// Dispatch is the call-handler text. The placeholders {age} and
	// {gender} are interpolated during generation.
	Dispatch string

	// GPLetterTypes optionally lists letter types shown among the
	// patient's documents.
	GPLetterTypes []string
}
