package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Severity int

const (
	Mild Severity = iota + 1
	Moderate
	Severe
)

var severityNames = map[Severity]string{
	Mild:     "mild",
	Moderate: "moderate",
	Severe:   "severe",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// ParseSeverity accepts the lowercase names in any case.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for sev, n := range severityNames {
		if n == name {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
}

func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeverity, int(s))
	}
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConditionRecord is one entry of the knowledge base. Everything except
// Symptoms is advisory text that the matcher never inspects.
type ConditionRecord struct {
	Name         string   `json:"name" yaml:"name"`
	Symptoms     []string `json:"symptoms" yaml:"symptoms"`
	DoctorType   string   `json:"doctorType" yaml:"doctorType"`
	Description  string   `json:"description" yaml:"description"`
	Causes       []string `json:"causes" yaml:"causes"`
	Prevention   []string `json:"prevention" yaml:"prevention"`
	FoodsToEat   []string `json:"foodsToEat" yaml:"foodsToEat"`
	FoodsToAvoid []string `json:"foodsToAvoid" yaml:"foodsToAvoid"`
	Severity     Severity `json:"severity" yaml:"severity"`
	Category     string   `json:"category" yaml:"category"`
}

// Clone returns a deep copy.
func (r ConditionRecord) Clone() ConditionRecord {
	r.Symptoms = cloneStrings(r.Symptoms)
	r.Causes = cloneStrings(r.Causes)
	r.Prevention = cloneStrings(r.Prevention)
	r.FoodsToEat = cloneStrings(r.FoodsToEat)
	r.FoodsToAvoid = cloneStrings(r.FoodsToAvoid)
	return r
}

// SynonymTable maps a canonical symptom to alternate phrasings. Lookup is
// one-directional and never transitive.
type SynonymTable map[string][]string

func (t SynonymTable) clone() SynonymTable {
	out := make(SynonymTable, len(t))
	for k, v := range t {
		out[k] = cloneStrings(v)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
