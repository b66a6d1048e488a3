// Package fuzzy provides fuzzy matching for go-combiflag suggestions.
// Used by the top-level driver to point at likely typos in unconsumed
// arguments.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher provides fuzzy matching against a candidate set.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match is one candidate within range of the input.
type Match struct {
	Value    string
	Distance int
}

// FindBest returns the closest candidate, or "" when nothing is within
// the maximum distance.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, closest first. Exact
// matches are skipped; an exactly matching argument would have been
// consumed already.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}
	input = strings.ToLower(input)

	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if input == lower {
			continue
		}
		distance := m.levenshteinDistance(input, lower)
		if distance <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// levenshteinDistance calculates the edit distance between two strings,
// terminating early once the maximum distance is exceeded.
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rows instead of the full matrix.
	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)
	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)
			if currentRow[j] < minInRow {
				minInRow = currentRow[j]
			}
		}
		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}
		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// FindBestName finds the best matching argument name for an unrecognized
// token.
func FindBestName(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
