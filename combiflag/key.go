package combiflag

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Case selects the case policy of a Key.
type Case int

const (
	// CaseInsensitive compares names under Unicode case folding.
	CaseInsensitive Case = iota
	// CaseSensitive compares normalized names byte for byte.
	CaseSensitive
)

// Key is a comparison key: a normalized name together with a case policy.
// Two keys match the same set of strings iff their normalized forms are
// equal under the policy. Keys are immutable once constructed.
type Key struct {
	text        Normalized
	sensitivity Case
}

// NewKey builds a key from s with the given case policy.
func NewKey(s string, sensitivity Case) Key {
	return Key{text: Normalize(s), sensitivity: sensitivity}
}

// String returns the display form of the key (its normalized text).
func (k Key) String() string {
	return k.text.s
}

// IsCaseSensitive reports the key's case policy.
func (k Key) IsCaseSensitive() bool {
	return k.sensitivity == CaseSensitive
}

// Matches reports whether s equals the key after normalization, honoring
// the key's case policy.
func (k Key) Matches(s string) bool {
	return k.matchesNormalized(Normalize(s))
}

func (k Key) matchesNormalized(n Normalized) bool {
	if k.sensitivity == CaseSensitive {
		return k.text.s == n.s
	}
	return foldCase(k.text.s) == foldCase(n.s)
}

// foldCase applies full Unicode case folding. A cases.Caser carries
// internal state and is not safe for concurrent use, so a fresh one is
// created per call; this keeps concurrent parses of one matcher safe.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// StripPrefix returns the remainder of n after the longest grapheme-aligned
// prefix that compares equal to the key, or ok=false when no grapheme
// boundary produces a matching prefix. Multi-codepoint grapheme clusters
// are never split.
func (k Key) StripPrefix(n Normalized) (Normalized, bool) {
	rest := n.s
	boundary := 0
	matched := -1
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		boundary += len(cluster)
		if k.matchesNormalized(asNormalized(n.s[:boundary])) {
			matched = boundary
		}
	}
	if matched < 0 {
		return Normalized{}, false
	}
	return asNormalized(n.s[matched:]), true
}

// sameKey reports whether two keys denote the same comparison: equal
// normalized text and equal case policy.
func sameKey(a, b Key) bool {
	return a.sensitivity == b.sensitivity && a.text.s == b.text.s
}

// anyKeyMatches reports whether any key in keys matches s.
func anyKeyMatches(keys []Key, s string) bool {
	return anyKeyMatchesNormalized(keys, Normalize(s))
}

func anyKeyMatchesNormalized(keys []Key, n Normalized) bool {
	for _, k := range keys {
		if k.matchesNormalized(n) {
			return true
		}
	}
	return false
}

// singleGrapheme returns s and true when s consists of exactly one grapheme
// cluster.
func singleGrapheme(s string) (string, bool) {
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	if cluster == "" || rest != "" {
		return "", false
	}
	return cluster, true
}

// graphemes splits s into its grapheme clusters.
func graphemes(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// graphemeWidth counts grapheme clusters, the unit used for column
// alignment in generated help text.
func graphemeWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
