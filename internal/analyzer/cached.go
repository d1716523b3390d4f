package analyzer

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Matcher is the query surface shared by Engine and Cached.
type Matcher interface {
	Match(symptoms []string) (MatchResult, bool)
	Rank(symptoms []string) []MatchResult
}

// Cached memoizes Match by normalized input. Engine is a pure function of
// its input, so entries never go stale; the TTL only bounds memory.
type Cached struct {
	engine *Engine
	store  *cache.Cache
}

func NewCached(engine *Engine, ttl time.Duration) *Cached {
	return &Cached{
		engine: engine,
		store:  cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Match(symptoms []string) (MatchResult, bool) {
	if len(symptoms) == 0 {
		return MatchResult{}, false
	}

	terms := Normalize(symptoms)
	key := cacheKey(terms)
	if v, found := c.store.Get(key); found {
		return v.(MatchResult).Clone(), true
	}

	result := c.engine.matchTerms(terms)
	c.store.SetDefault(key, result.Clone())
	return result, true
}

// Rank is not memoized.
func (c *Cached) Rank(symptoms []string) []MatchResult {
	return c.engine.Rank(symptoms)
}

// ItemCount reports the number of memoized queries.
func (c *Cached) ItemCount() int {
	return c.store.ItemCount()
}

// cacheKey quotes each term so that no term content, separators included,
// can make two different term lists share a key.
func cacheKey(terms []string) string {
	return fmt.Sprintf("%q", terms)
}
