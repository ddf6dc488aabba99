package category

import (
	"maps"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the largest normalized edit distance accepted by the
// fuzzy phase. 0 is a perfect match, 1 shares nothing.
const DefaultThreshold = 0.4

type Phase string

const (
	PhaseEmpty    Phase = "empty"
	PhaseExact    Phase = "exact"
	PhaseFuzzy    Phase = "fuzzy"
	PhaseFallback Phase = "default"
)

// Match describes how an input was resolved.
type Match struct {
	Input      string   `json:"input"`
	Normalized string   `json:"normalized"`
	Alias      string   `json:"alias,omitempty"`
	Category   Category `json:"category"`
	Score      float64  `json:"score"`
	Phase      Phase    `json:"phase"`
}

// Resolver maps free-text place types to categories. It is immutable once
// built and safe for concurrent use.
type Resolver struct {
	exact     map[string]Category
	keys      []string // sorted, for deterministic tie-breaks
	threshold float64
}

func NewResolver(table []AliasGroup, threshold float64) *Resolver {
	r := &Resolver{exact: make(map[string]Category, 512), threshold: threshold}
	for _, g := range table {
		for _, a := range g.Aliases {
			k := Normalize(a)
			if k == "" {
				continue
			}
			if _, dup := r.exact[k]; dup {
				continue
			}
			r.exact[k] = g.Category
			r.keys = append(r.keys, k)
		}
	}
	slices.Sort(r.keys)
	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(aliasTable, DefaultThreshold)
})

// DefaultResolver returns the process-wide resolver over the built-in table.
func DefaultResolver() *Resolver { return defaultResolver() }

// Resolve never fails: anything unrecognised maps to Default.
func (r *Resolver) Resolve(raw string) Category {
	return r.Explain(raw).Category
}

func (r *Resolver) Explain(raw string) Match {
	m := Match{Input: raw, Normalized: Normalize(raw), Category: Default, Phase: PhaseEmpty}
	if m.Normalized == "" {
		return m
	}

	if c, ok := r.exact[m.Normalized]; ok {
		m.Alias, m.Category, m.Phase = m.Normalized, c, PhaseExact
		return m
	}

	best, bestScore := "", 2.0
	for _, k := range r.keys {
		// strict less-than keeps the lexicographically first alias on ties
		if s := distance(m.Normalized, k); s < bestScore {
			best, bestScore = k, s
		}
	}
	if best != "" && bestScore <= r.threshold {
		m.Alias, m.Category, m.Score, m.Phase = best, r.exact[best], bestScore, PhaseFuzzy
		return m
	}
	m.Score, m.Phase = bestScore, PhaseFallback
	if best == "" {
		m.Score = 1
	}
	return m
}

// Aliases returns the normalized alias keys and their categories.
func (r *Resolver) Aliases() map[string]Category {
	return maps.Clone(r.exact)
}

func (r *Resolver) Threshold() float64 { return r.threshold }

// distance is the edit distance divided by the longer rune length.
func distance(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(n)
}
