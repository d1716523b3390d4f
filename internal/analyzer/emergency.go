package analyzer

import "strings"

// EmergencyWarning is returned by Check whenever an indicator phrase is found.
const EmergencyWarning = "SEEK IMMEDIATE MEDICAL ATTENTION - Some of your symptoms may indicate a medical emergency."

var defaultIndicators = []string{
	"chest pain",
	"shortness of breath",
	"severe headache",
	"difficulty breathing",
	"severe abdominal pain",
	"loss of consciousness",
	"severe allergic reaction",
}

// Detector flags symptoms that contain an emergency indicator phrase. It is
// independent of the catalog and of Engine results.
type Detector struct {
	indicators []string
}

// NewDetector builds a detector over the given phrases, lowercased.
func NewDetector(phrases ...string) *Detector {
	d := &Detector{indicators: make([]string, 0, len(phrases))}
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			d.indicators = append(d.indicators, p)
		}
	}
	return d
}

func DefaultDetector() *Detector {
	return NewDetector(defaultIndicators...)
}

// Check returns the emergency warning and true if any symptom contains an
// indicator phrase.
func (d *Detector) Check(symptoms []string) (string, bool) {
	lowered := lowerAll(symptoms)
	for _, ind := range d.indicators {
		if containsAny(lowered, ind) {
			return EmergencyWarning, true
		}
	}
	return "", false
}

// Indicators lists the indicator phrases present in the symptoms, in the
// detector's order.
func (d *Detector) Indicators(symptoms []string) []string {
	lowered := lowerAll(symptoms)
	var found []string
	for _, ind := range d.indicators {
		if containsAny(lowered, ind) {
			found = append(found, ind)
		}
	}
	return found
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsAny(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
