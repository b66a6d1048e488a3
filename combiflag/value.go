package combiflag

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Value builds an argument that carries a value, written as "--name value",
// "--name=value", "-n value", "-n=value" or "-nvalue". metaVar is the
// placeholder shown in help and error messages; allowed, when non-nil,
// lists the values shown in help (enforcement is up to parse).
func Value[T, E any](desc Description[T], metaVar string, valueInfix Key, allowed []T, parse ParseFunc[T, E], show func(T) string) Arguments[T, E] {
	d := display(desc, show)
	allowedNames := make([]string, len(allowed))
	for i, v := range allowed {
		allowedNames[i] = show(v)
	}
	cfg := valueConfig(d, valueInfix.String(), metaVar, allowedNames)

	return Arguments[T, E]{
		configs: []Config{cfg},
		parse: func(ts []token) (Outcome[T, E], []token) {
			out := make([]token, len(ts))
			copy(out, ts)
			var found *T
			var errs []ParseError[E]
			awaiting := false
			for i, t := range out {
				if awaiting {
					// The value slot is the very next cell, even one
					// already consumed by another matcher.
					awaiting = false
					if !t.ok {
						errs = append(errs, missingValueError[E](d, valueInfix.String(), metaVar))
						continue
					}
					out[i] = token{}
					if v, fail := parse(t.value); fail == nil {
						found = &v
					} else {
						errs = append(errs, parseFailureError(d, valueInfix.String(), metaVar, fail))
					}
					continue
				}
				if !t.ok {
					continue
				}
				inline, hasInline, named := matchValueToken(desc, valueInfix, t.value)
				if !named {
					continue
				}
				out[i] = token{}
				if !hasInline {
					awaiting = true
					continue
				}
				if v, fail := parse(inline); fail == nil {
					found = &v
				} else {
					errs = append(errs, parseFailureError(d, valueInfix.String(), metaVar, fail))
				}
			}
			if awaiting {
				errs = append(errs, missingValueError[E](d, valueInfix.String(), metaVar))
			}
			switch {
			case len(errs) > 0:
				return newErrors[T, E](errs), out
			case found != nil:
				return newValue[T, E](*found), out
			case desc.Default != nil:
				return newValue[T, E](*desc.Default), out
			default:
				err := missingValueError[E](d, valueInfix.String(), metaVar)
				return newErrors[T, E]([]ParseError[E]{err}), out
			}
		},
	}
}

// matchValueToken classifies raw against the argument's names. named
// reports whether the token belongs to this argument at all; hasInline
// whether it already carries the value; inline is that value. Long forms
// require the infix before an inline value, short forms also accept the
// value glued directly to the name.
func matchValueToken[T any](desc Description[T], valueInfix Key, raw string) (inline string, hasInline, named bool) {
	n := Normalize(raw)
	if rest, ok := desc.LongPrefix.StripPrefix(n); ok {
		if anyKeyMatchesNormalized(desc.Long, rest) {
			return "", false, true
		}
		for _, name := range desc.Long {
			after, ok := name.StripPrefix(rest)
			if !ok {
				continue
			}
			if value, ok := valueInfix.StripPrefix(after); ok {
				return value.String(), true, true
			}
		}
		return "", false, false
	}
	if len(desc.Short) == 0 {
		return "", false, false
	}
	rest, ok := desc.ShortPrefix.StripPrefix(n)
	if !ok {
		return "", false, false
	}
	if _, one := singleGrapheme(rest.String()); one && anyKeyMatchesNormalized(desc.Short, rest) {
		return "", false, true
	}
	for _, name := range desc.Short {
		if _, one := singleGrapheme(name.String()); !one {
			continue
		}
		after, ok := name.StripPrefix(rest)
		if !ok {
			continue
		}
		if value, ok := valueInfix.StripPrefix(after); ok {
			return value.String(), true, true
		}
		return after.String(), true, true
	}
	return "", false, false
}

// FromStr builds a value argument from a plain string conversion, using
// lang's meta-variable and the conventional "=" infix. Tokens that are not
// valid Unicode text are rejected before parse runs.
func FromStr[T any](desc Description[T], lang Language, parse func(string) (T, error), show func(T) string) Arguments[T, error] {
	return Value(desc, lang.MetaVar, NewKey("=", CaseInsensitive), nil,
		func(raw string) (T, *Failure[error]) {
			if !utf8.ValidString(raw) {
				var zero T
				return zero, FailInvalid[error](raw)
			}
			v, err := parse(raw)
			if err != nil {
				var zero T
				return zero, Fail(err)
			}
			return v, nil
		}, show)
}

// String builds a plain string value argument.
func String(desc Description[string], lang Language) Arguments[string, error] {
	return FromStr(desc, lang,
		func(raw string) (string, error) { return raw, nil },
		func(s string) string { return s })
}

// Int builds an integer value argument.
func Int(desc Description[int], lang Language) Arguments[int, error] {
	return FromStr(desc, lang,
		func(raw string) (int, error) { return strconv.Atoi(raw) },
		strconv.Itoa)
}

// Float64 builds a floating-point value argument.
func Float64(desc Description[float64], lang Language) Arguments[float64, error] {
	return FromStr(desc, lang,
		func(raw string) (float64, error) { return strconv.ParseFloat(raw, 64) },
		func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
}

// Duration builds a time.Duration value argument in Go's duration syntax.
func Duration(desc Description[time.Duration], lang Language) Arguments[time.Duration, error] {
	return FromStr(desc, lang, time.ParseDuration, time.Duration.String)
}

// Enum builds a value argument restricted to values, matched by their
// rendered names under the same normalization and case folding as argument
// names. The allowed set appears in generated help text.
func Enum[T any](desc Description[T], lang Language, values []T, show func(T) string) Arguments[T, error] {
	keys := make([]Key, len(values))
	for i, v := range values {
		keys[i] = NewKey(show(v), CaseInsensitive)
	}
	return Value(desc, lang.MetaVar, NewKey("=", CaseInsensitive), values,
		func(raw string) (T, *Failure[error]) {
			var zero T
			if !utf8.ValidString(raw) {
				return zero, FailInvalid[error](raw)
			}
			n := Normalize(raw)
			for i, k := range keys {
				if k.matchesNormalized(n) {
					return values[i], nil
				}
			}
			return zero, Fail[error](fmt.Errorf("%s: %q", lang.AllowedValues, raw))
		}, show)
}
