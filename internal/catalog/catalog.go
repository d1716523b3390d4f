package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCatalog       = errors.New("catalog has no conditions")
	ErrDuplicateCondition = errors.New("duplicate condition name")
	ErrNoSymptoms         = errors.New("condition has no symptoms")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrUnknownSynonymKey  = errors.New("synonym key is not a canonical symptom")
)

// Catalog is an immutable, ordered set of conditions plus the synonym
// table used to widen matching. Records are addressed by index; the
// order is the tie-break order used when ranking.
type Catalog struct {
	records  []ConditionRecord
	synonyms SynonymTable
}

// New validates and freezes the given records and synonyms. The inputs are
// copied, so later changes by the caller do not reach the catalog.
func New(records []ConditionRecord, synonyms SynonymTable) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(records))
	canonical := make(map[string]struct{})
	frozen := make([]ConditionRecord, 0, len(records))

	for i, rec := range records {
		rec = rec.Clone()
		rec.Name = strings.TrimSpace(rec.Name)
		if rec.Name == "" {
			return nil, fmt.Errorf("condition %d: name is required", i)
		}

		key := strings.ToLower(rec.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCondition, rec.Name)
		}
		seen[key] = struct{}{}

		if !rec.Severity.Valid() {
			return nil, fmt.Errorf("condition %q: %w", rec.Name, ErrInvalidSeverity)
		}

		symptoms := make([]string, 0, len(rec.Symptoms))
		for _, s := range rec.Symptoms {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			symptoms = append(symptoms, s)
			canonical[s] = struct{}{}
		}
		if len(symptoms) == 0 {
			return nil, fmt.Errorf("condition %q: %w", rec.Name, ErrNoSymptoms)
		}
		rec.Symptoms = symptoms

		frozen = append(frozen, rec)
	}

	table := make(SynonymTable, len(synonyms))
	for term, alts := range synonyms {
		term = strings.ToLower(strings.TrimSpace(term))
		if _, ok := canonical[term]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSynonymKey, term)
		}
		for _, alt := range alts {
			alt = strings.ToLower(strings.TrimSpace(alt))
			if alt != "" {
				table[term] = append(table[term], alt)
			}
		}
	}

	return &Catalog{records: frozen, synonyms: table}, nil
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// At returns a copy of the record at index i.
func (c *Catalog) At(i int) ConditionRecord {
	return c.records[i].Clone()
}

// Symptoms returns the canonical symptoms of record i without copying.
// Callers must treat the slice as read-only.
func (c *Catalog) Symptoms(i int) []string {
	return c.records[i].Symptoms
}

// Records returns copies of all records in catalog order.
func (c *Catalog) Records() []ConditionRecord {
	out := make([]ConditionRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// Alternates returns the alternate phrasings registered for a canonical
// symptom, or nil. The returned slice must not be modified.
func (c *Catalog) Alternates(symptom string) []string {
	return c.synonyms[symptom]
}

// Synonyms returns a copy of the whole synonym table.
func (c *Catalog) Synonyms() SynonymTable {
	return c.synonyms.clone()
}
