package analyzer

import "strings"

// Predicate decides whether a normalized input term matches a canonical
// symptom. alternates are the synonym phrasings registered for canonical.
type Predicate interface {
	Match(canonical, input string, alternates []string) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(canonical, input string, alternates []string) bool

func (f PredicateFunc) Match(canonical, input string, alternates []string) bool {
	return f(canonical, input, alternates)
}

var (
	// Exact matches identical terms.
	Exact Predicate = PredicateFunc(func(canonical, input string, _ []string) bool {
		return canonical == input
	})

	// Substring matches when either term contains the other, so
	// "severe headache" matches "headache".
	Substring Predicate = PredicateFunc(func(canonical, input string, _ []string) bool {
		return strings.Contains(input, canonical) || strings.Contains(canonical, input)
	})

	// Synonym matches when the input contains any alternate phrasing of the
	// canonical term.
	Synonym Predicate = PredicateFunc(func(_, input string, alternates []string) bool {
		for _, alt := range alternates {
			if strings.Contains(input, alt) {
				return true
			}
		}
		return false
	})
)

// Chain evaluates its predicates in order and stops at the first match.
type Chain []Predicate

func (c Chain) Match(canonical, input string, alternates []string) bool {
	for _, p := range c {
		if p.Match(canonical, input, alternates) {
			return true
		}
	}
	return false
}

// DefaultChain returns the exact, substring, synonym chain.
func DefaultChain() Chain {
	return Chain{Exact, Substring, Synonym}
}
