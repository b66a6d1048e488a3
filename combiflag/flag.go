package combiflag

import "strconv"

// FlagBool builds a presence flag yielding a bool. The flag is invertible
// with lang's prefix and the conventional "-" infix, so "--flag" yields
// true and "--no-flag" yields false. Without a default the flag is
// required.
func FlagBool[E any](desc Description[bool], lang Language) Arguments[bool, E] {
	return Flag[bool, E](desc, func(b bool) bool { return b }, strconv.FormatBool, lang)
}

// Flag builds a presence flag yielding fromBool(true) when set and
// fromBool(false) when inverted. show renders the default value for help
// text.
func Flag[T, E any](desc Description[T], fromBool func(bool) T, show func(T) string, lang Language) Arguments[T, E] {
	return FlagWith[T, E](desc, fromBool, show,
		NewKey(lang.InvertPrefix, CaseInsensitive),
		NewKey("-", CaseInsensitive))
}

// FlagWith is Flag with an explicit invert prefix and infix, for programs
// that deviate from the language table.
func FlagWith[T, E any](desc Description[T], fromBool func(bool) T, show func(T) string, invertPrefix, invertInfix Key) Arguments[T, E] {
	d := display(desc, show)
	cfg := flagConfig(d, invertPrefix.String(), invertInfix.String(), true)

	var shorts []shortForms
	if len(desc.Short) > 0 {
		shorts = []shortForms{{prefix: desc.ShortPrefix, names: desc.Short}}
	}

	return Arguments[T, E]{
		configs: []Config{cfg},
		shorts:  shorts,
		parse: func(ts []token) (Outcome[T, E], []token) {
			out := make([]token, len(ts))
			copy(out, ts)
			var found *bool
			for i, t := range out {
				if !t.ok {
					continue
				}
				set, matched := matchFlagToken(desc, invertPrefix, invertInfix, t.value)
				if !matched {
					continue
				}
				found = &set
				out[i] = token{}
			}
			switch {
			case found != nil:
				return newValue[T, E](fromBool(*found)), out
			case desc.Default != nil:
				return newValue[T, E](*desc.Default), out
			default:
				err := missingFlagError[E](d, invertPrefix.String(), invertInfix.String())
				return newErrors[T, E]([]ParseError[E]{err}), out
			}
		},
	}
}

// matchFlagToken reports whether raw names this flag, and with which
// polarity. Short bundles are expanded before matchers run, so a short
// token here is always a prefix plus exactly one grapheme cluster.
func matchFlagToken[T any](desc Description[T], invertPrefix, invertInfix Key, raw string) (set, matched bool) {
	n := Normalize(raw)
	if rest, ok := desc.LongPrefix.StripPrefix(n); ok {
		if anyKeyMatchesNormalized(desc.Long, rest) {
			return true, true
		}
		if afterPrefix, ok := invertPrefix.StripPrefix(rest); ok {
			if name, ok := invertInfix.StripPrefix(afterPrefix); ok && anyKeyMatchesNormalized(desc.Long, name) {
				return false, true
			}
		}
		return false, false
	}
	if len(desc.Short) > 0 {
		if rest, ok := desc.ShortPrefix.StripPrefix(n); ok {
			if _, one := singleGrapheme(rest.String()); one && anyKeyMatchesNormalized(desc.Short, rest) {
				return true, true
			}
		}
	}
	return false, false
}
