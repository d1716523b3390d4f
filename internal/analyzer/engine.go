package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Skufu/symptomcheck/internal/catalog"
)

const (
	// MaxProbability keeps the engine from ever claiming near-certainty.
	MaxProbability = 95

	// DefaultProbabilityFloor is the lowest probability a catalog match may
	// have before the generic result is returned instead.
	DefaultProbabilityFloor = 25

	// FallbackProbability is reported for the generic result.
	FallbackProbability = 35

	bonusThreshold = 3
	bonusPoints    = 10
)

// MatchResult is a condition record scored against one query.
type MatchResult struct {
	catalog.ConditionRecord
	Probability          int  `json:"probability"`
	MatchingSymptomCount int  `json:"matchingSymptomCount"`
	Fallback             bool `json:"fallback"`
}

// Clone returns a deep copy of the result.
func (r MatchResult) Clone() MatchResult {
	r.ConditionRecord = r.ConditionRecord.Clone()
	return r
}

// Engine ranks catalog conditions against reported symptoms. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	matcher Predicate
	floor   int
	logger  *zap.Logger
}

type Option func(*Engine)

// WithMatcher replaces the default exact/substring/synonym chain.
func WithMatcher(p Predicate) Option {
	return func(e *Engine) {
		if p != nil {
			e.matcher = p
		}
	}
}

// WithProbabilityFloor sets the probability below which the best match is
// replaced by the generic result.
func WithProbabilityFloor(floor int) Option {
	return func(e *Engine) {
		e.floor = floor
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		matcher: DefaultChain(),
		floor:   DefaultProbabilityFloor,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

type candidate struct {
	index       int
	matched     int
	probability int
}

// Match returns the best-supported condition for the symptoms, or the
// generic result when nothing clears the probability floor. ok is false
// only when symptoms is empty.
func (e *Engine) Match(symptoms []string) (result MatchResult, ok bool) {
	if len(symptoms) == 0 {
		return MatchResult{}, false
	}
	return e.matchTerms(Normalize(symptoms)), true
}

// matchTerms scores already normalized terms. Blank input leaves no terms
// and always yields the generic result.
func (e *Engine) matchTerms(terms []string) MatchResult {
	ranked := e.rank(terms)
	if len(ranked) == 0 || ranked[0].probability < e.floor {
		e.logger.Debug("no confident match, using generic result",
			zap.Int("symptoms", len(terms)),
			zap.Int("candidates", len(ranked)))
		return genericResult(terms)
	}

	best := e.result(ranked[0])
	e.logger.Debug("matched condition",
		zap.String("condition", best.Name),
		zap.Int("probability", best.Probability),
		zap.Int("matching", best.MatchingSymptomCount))
	return best
}

// Rank returns every condition with at least one matching symptom, best
// first. No fallback is applied.
func (e *Engine) Rank(symptoms []string) []MatchResult {
	terms := Normalize(symptoms)
	if len(terms) == 0 {
		return nil
	}

	ranked := e.rank(terms)
	out := make([]MatchResult, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, e.result(c))
	}
	return out
}

func (e *Engine) rank(terms []string) []candidate {
	var ranked []candidate
	for i := 0; i < e.catalog.Len(); i++ {
		symptoms := e.catalog.Symptoms(i)
		matched := e.countMatches(symptoms, terms)
		if matched == 0 {
			continue
		}
		ranked = append(ranked, candidate{
			index:       i,
			matched:     matched,
			probability: probability(matched, len(symptoms)),
		})
	}

	// Stable so that full ties keep catalog order.
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].probability != ranked[b].probability {
			return ranked[a].probability > ranked[b].probability
		}
		return ranked[a].matched > ranked[b].matched
	})
	return ranked
}

// countMatches counts canonical symptoms hit by at least one input term.
func (e *Engine) countMatches(canonical, terms []string) int {
	count := 0
	for _, s := range canonical {
		alternates := e.catalog.Alternates(s)
		for _, term := range terms {
			if e.matcher.Match(s, term, alternates) {
				count++
				break
			}
		}
	}
	return count
}

func probability(matched, total int) int {
	if total == 0 {
		return 0
	}
	p := float64(matched) / float64(total) * 100
	if matched >= bonusThreshold {
		p += bonusPoints
	}
	return min(MaxProbability, int(math.Round(p)))
}

func (e *Engine) result(c candidate) MatchResult {
	return MatchResult{
		ConditionRecord:      e.catalog.At(c.index),
		Probability:          c.probability,
		MatchingSymptomCount: c.matched,
	}
}

func genericResult(terms []string) MatchResult {
	noun := "symptoms"
	if len(terms) == 1 {
		noun = "symptom"
	}

	symptoms := make([]string, len(terms))
	copy(symptoms, terms)
	description := "Based on the symptoms you described, it's recommended to consult with a healthcare professional for proper evaluation."
	if len(terms) > 0 {
		description = fmt.Sprintf("Based on your symptoms (%s), it's recommended to consult with a healthcare professional for proper evaluation.",
			strings.Join(terms, ", "))
	}

	return MatchResult{
		ConditionRecord: catalog.ConditionRecord{
			Name:         fmt.Sprintf("Unspecified Condition (%d %s reported)", len(terms), noun),
			Symptoms:     symptoms,
			DoctorType:   "General Physician",
			Description:  description,
			Causes:       []string{"Various factors could contribute to these symptoms"},
			Prevention:   []string{"Maintain good hygiene", "Eat a balanced diet", "Get adequate rest", "Stay hydrated"},
			FoodsToEat:   []string{"Nutritious whole foods", "Plenty of water", "Fresh fruits and vegetables"},
			FoodsToAvoid: []string{"Processed foods", "Excessive alcohol", "Sugary drinks"},
			Severity:     catalog.Mild,
			Category:     "General",
		},
		Probability: FallbackProbability,
		Fallback:    true,
	}
}
