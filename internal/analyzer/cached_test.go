package analyzer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/symptomcheck/internal/catalog"
)

func TestCachedMatchesEngine(t *testing.T) {
	e := New(catalog.Default())
	c := NewCached(e, time.Minute)

	inputs := [][]string{
		commonCold,
		{"nonexistent symptom xyz"},
		{"headache", "dizziness", "fatigue"},
	}
	for _, in := range inputs {
		want, _ := e.Match(in)
		got, ok := c.Match(in)
		require.True(t, ok)
		assert.Equal(t, want, got)

		again, ok := c.Match(in)
		require.True(t, ok)
		assert.Equal(t, want, again)
	}
	assert.Equal(t, len(inputs), c.ItemCount())
}

func TestCachedKeysOnNormalizedInput(t *testing.T) {
	c := NewCached(New(catalog.Default()), time.Minute)

	_, _ = c.Match([]string{"Fever", " cough"})
	_, _ = c.Match([]string{"fever", "cough "})
	assert.Equal(t, 1, c.ItemCount())

	_, ok := c.Match(nil)
	assert.False(t, ok)
	assert.Equal(t, 1, c.ItemCount())

	result, ok := c.Match([]string{"  "})
	require.True(t, ok)
	assert.True(t, result.Fallback)
	assert.Equal(t, 2, c.ItemCount())
}

func TestCachedKeysDoNotCollide(t *testing.T) {
	e := New(catalog.Default())
	c := NewCached(e, time.Minute)

	inputs := [][]string{
		{"xyz", "abc"},
		{"xyz\x1fabc"},
		{"xyz,abc"},
		{`xyz" "abc`},
	}
	for _, in := range inputs {
		want, _ := e.Match(in)
		got, ok := c.Match(in)
		require.True(t, ok)
		assert.Equal(t, want.Name, got.Name, "input %q", in)
		assert.Equal(t, want.Description, got.Description, "input %q", in)
	}
	assert.Equal(t, len(inputs), c.ItemCount())
}

func TestCachedReturnsCopies(t *testing.T) {
	c := NewCached(New(catalog.Default()), time.Minute)

	first, _ := c.Match(commonCold)
	first.Symptoms[0] = "mutated"
	first.Name = "mutated"

	second, _ := c.Match(commonCold)
	assert.Equal(t, "Common Cold", second.Name)
	assert.Equal(t, "cough", second.Symptoms[0])
}

func TestCachedConcurrentUse(t *testing.T) {
	c := NewCached(New(catalog.Default()), time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, ok := c.Match(commonCold)
			assert.True(t, ok)
			assert.Equal(t, "Common Cold", result.Name)
		}()
	}
	wg.Wait()
}

func TestCachedRank(t *testing.T) {
	e := New(catalog.Default())
	c := NewCached(e, time.Minute)
	assert.Equal(t, e.Rank(commonCold), c.Rank(commonCold))
	assert.Zero(t, c.ItemCount())
}
