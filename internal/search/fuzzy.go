package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"daypass/internal/domain"
)

// FuzzyThreshold is the worst normalized edit score (0 best, 1 worst) a key may
// have and still count as a match.
const FuzzyThreshold = 0.4

type fuzzyKey struct {
	weight float64
	text   func(domain.SearchLocation) string
}

var locationKeys = []fuzzyKey{
	{weight: 0.7, text: func(l domain.SearchLocation) string { return l.Name }},
	{weight: 0.3, text: func(l domain.SearchLocation) string { return l.State }},
}

type ranked struct {
	loc       domain.SearchLocation
	exact     bool
	relevance float64
}

// FilterLocations returns the whole catalog for a blank query. Otherwise it
// returns entries whose name or state approximately contains the query, best
// first: exact substring matches, then by weighted relevance, then catalog order.
func (c *Catalog) FilterLocations(query string) []domain.SearchLocation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	var hits []ranked
	for _, loc := range c.entries {
		r := ranked{loc: loc}
		matched := false
		for _, k := range locationKeys {
			score, exact, ok := keyScore(q, k.text(loc))
			if !ok {
				continue
			}
			matched = true
			r.exact = r.exact || exact
			r.relevance += k.weight * (1 - score)
		}
		if matched {
			hits = append(hits, r)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].exact != hits[j].exact {
			return hits[i].exact
		}
		return hits[i].relevance > hits[j].relevance
	})

	out := make([]domain.SearchLocation, len(hits))
	for i, h := range hits {
		out[i] = h.loc
	}
	return out
}

// keyScore scores a lowercased query against one key. A substring hit scores 0;
// otherwise the best edit distance to any window of the text of length
// len(q)-1..len(q)+1, divided by len(q).
func keyScore(q, text string) (score float64, exact, ok bool) {
	t := strings.ToLower(text)
	if t == "" {
		return 1, false, false
	}
	if strings.Contains(t, q) {
		return 0, true, true
	}

	qr, tr := []rune(q), []rune(t)
	n := len(qr)
	best := -1
	for size := n - 1; size <= n+1; size++ {
		if size < 1 {
			continue
		}
		if size > len(tr) {
			size = len(tr)
		}
		for i := 0; i+size <= len(tr); i++ {
			d := levenshtein.ComputeDistance(q, string(tr[i:i+size]))
			if best < 0 || d < best {
				best = d
			}
		}
		if size == len(tr) {
			break
		}
	}
	if best < 0 {
		return 1, false, false
	}
	score = float64(best) / float64(n)
	return score, false, score <= FuzzyThreshold
}
