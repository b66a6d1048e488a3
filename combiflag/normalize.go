package combiflag

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dzonerzy/go-combiflag/internal/intern"
)

// Normalized is a string in Unicode Normalization Form C, with CJK
// compatibility ideographs folded to their canonical equivalents so that
// visually identical names compare equal.
type Normalized struct {
	s string
}

// Normalize converts s into its normalized form. Strings that are already
// NFC and contain no CJK-ish runes are returned as-is without allocation;
// everything else goes through the transform, cached by internal/intern.
func Normalize(s string) Normalized {
	if norm.NFC.IsNormalString(s) && !containsCJKish(s) {
		return Normalized{s}
	}
	if cached, ok := intern.Normalized.Lookup(s); ok {
		return Normalized{cached}
	}
	result := norm.NFC.String(foldCJKCompat(s))
	return Normalized{intern.Normalized.Store(s, result)}
}

// String returns the normalized text.
func (n Normalized) String() string {
	return n.s
}

// IsEmpty reports whether the normalized text is empty.
func (n Normalized) IsEmpty() bool {
	return n.s == ""
}

// asNormalized wraps a substring of an already-normalized string. Only safe
// for cuts at grapheme cluster boundaries.
func asNormalized(s string) Normalized {
	return Normalized{s}
}

// containsCJKish reports whether any rune falls into a CJK-related block.
// Such strings always take the slow normalization path because NFC alone
// does not fold compatibility ideographs.
func containsCJKish(s string) bool {
	for _, r := range s {
		if isCJKish(r) {
			return true
		}
	}
	return false
}

func isCJKish(r rune) bool {
	switch {
	case r >= 0x2E80 && r <= 0x9FFF: // radicals, kana, hangul jamo, unified ideographs
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
		return true
	case r >= 0xF900 && r <= 0xFAFF: // compatibility ideographs
		return true
	case r >= 0xFE30 && r <= 0xFE4F: // compatibility forms
		return true
	case r >= 0x20000 && r <= 0x2FA1F: // ideograph extensions and compat supplement
		return true
	}
	return false
}

// foldCJKCompat rewrites CJK compatibility ideographs to their canonical
// equivalents. NFKC maps these codepoints while NFC leaves them alone, so
// they are folded individually before the final NFC pass.
func foldCJKCompat(s string) string {
	var b strings.Builder
	changed := false
	for _, r := range s {
		if (r >= 0xF900 && r <= 0xFAFF) || (r >= 0x2F800 && r <= 0x2FA1F) {
			b.WriteString(norm.NFKC.String(string(r)))
			changed = true
			continue
		}
		b.WriteRune(r)
	}
	if !changed {
		return s
	}
	return b.String()
}
