package analyzer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds raw symptom strings into matchable terms: NFKC, trimmed,
// lowercased. Order and duplicates are kept. Terms that are blank after
// trimming are dropped, since an empty term is a substring of everything.
// Input made only of blanks therefore normalizes to no terms.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		term := normalizeTerm(s)
		if term == "" {
			continue
		}
		out = append(out, term)
	}
	return out
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
