// Package catalog holds the read-only medication reference data consumed
// by scenario and question generation. Records are loaded once from an
// embedded JSON file and validated against a schema.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/medications.json
var medicationsJSON []byte

// Catalog is an immutable set of medication records keyed by name.
type Catalog struct {
	records []MedicationRecord
	byName  map[string]int
}

// New builds a Catalog from the given records. Later duplicates of a
// name replace earlier ones. Intended for tests; production code uses
// Default.
func New(records []MedicationRecord) *Catalog {
	c := &Catalog{
		records: make([]MedicationRecord, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	copy(c.records, records)
	for i := range c.records {
		c.byName[strings.ToLower(c.records[i].Name)] = i
	}
	return c
}

// Load parses and validates the embedded medication data.
func Load() (*Catalog, error) {
	if err := validateData(medicationsJSON); err != nil {
		return nil, fmt.Errorf("medication data: %w", err)
	}

	var records []MedicationRecord
	if err := json.Unmarshal(medicationsJSON, &records); err != nil {
		return nil, fmt.Errorf("parse medication data: %w", err)
	}

	return New(records), nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded data. The load
// happens once; an embedded-data error is a packaging bug and is
// returned on every call.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load()
	})
	return defaultCatalog, defaultErr
}

// Lookup finds a record by name. The match is case-insensitive.
func (c *Catalog) Lookup(name string) (MedicationRecord, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return MedicationRecord{}, false
	}
	return c.records[i], true
}

// All returns a copy of every record.
func (c *Catalog) All() []MedicationRecord {
	out := make([]MedicationRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Classes returns the distinct pharmacological classes in the catalog,
// in first-seen order.
func (c *Catalog) Classes() []string {
	seen := make(map[string]bool, len(c.records))
	var out []string
	for i := range c.records {
		cl := c.records[i].Class
		if cl == "" || seen[cl] {
			continue
		}
		seen[cl] = true
		out = append(out, cl)
	}
	return out
}

// Indications returns the distinct indications in the catalog, in
// first-seen order.
func (c *Catalog) Indications() []string {
	seen := make(map[string]bool, len(c.records))
	var out []string
	for i := range c.records {
		in := c.records[i].Indication
		if in == "" || seen[in] {
			continue
		}
		seen[in] = true
		out = append(out, in)
	}
	return out
}
