package combiflag

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes a parse error.
type ErrorKind int

const (
	// MissingFlag: a required flag was not present and had no default.
	MissingFlag ErrorKind = iota
	// MissingValue: a value argument was named without a value, or a
	// required value argument was absent with no default.
	MissingValue
	// ParseFailure: the name matched but the value conversion failed.
	ParseFailure
)

// ParseError is one structured parse error. It carries the displayable
// identity of the argument involved (names, prefixes, meta-variable) so a
// human message can be rendered without the original Description.
type ParseError[E any] struct {
	Kind        ErrorKind
	LongPrefix  string
	Long        []string
	ShortPrefix string
	Short       []string

	// MissingFlag only.
	InvertPrefix string
	InvertInfix  string

	// MissingValue and ParseFailure.
	ValueInfix string
	MetaVar    string

	// ParseFailure payload: either the caller-supplied error, or the
	// invalid-string sentinel with the raw token.
	Err          E
	InvalidInput bool
	Raw          string
}

// Message renders the error with the labels of lang.
func (e ParseError[E]) Message(lang Language) string {
	var b strings.Builder
	switch e.Kind {
	case MissingFlag:
		b.WriteString(lang.MissingFlag)
		b.WriteString(": ")
		b.WriteString(e.LongPrefix)
		b.WriteByte('[')
		b.WriteString(e.InvertPrefix)
		b.WriteByte(']')
		b.WriteString(e.InvertInfix)
		writeNamePattern(&b, e.Long)
		if len(e.Short) > 0 {
			b.WriteString(" | ")
			b.WriteString(e.ShortPrefix)
			writeNamePattern(&b, e.Short)
		}
	case MissingValue, ParseFailure:
		if e.Kind == MissingValue {
			b.WriteString(lang.MissingValue)
		} else {
			b.WriteString(lang.ParseFailure)
		}
		b.WriteString(": ")
		b.WriteString(e.LongPrefix)
		writeNamePattern(&b, e.Long)
		b.WriteByte('(')
		b.WriteString(e.ValueInfix)
		b.WriteString("| )")
		b.WriteString(e.MetaVar)
		if len(e.Short) > 0 {
			b.WriteString(" | ")
			b.WriteString(e.ShortPrefix)
			writeNamePattern(&b, e.Short)
			b.WriteByte('[')
			b.WriteString(e.ValueInfix)
			b.WriteString("| ]")
			b.WriteString(e.MetaVar)
		}
		if e.Kind == ParseFailure {
			b.WriteByte('\n')
			if e.InvalidInput {
				b.WriteString(lang.InvalidString)
				b.WriteString(": ")
				b.WriteString(fmt.Sprintf("%q", e.Raw))
			} else {
				b.WriteString(fmt.Sprint(e.Err))
			}
		}
	}
	return b.String()
}

// writeNamePattern renders a single name as-is and several aliases as
// "(a|b|c)".
func writeNamePattern(b *strings.Builder, names []string) {
	if len(names) == 1 {
		b.WriteString(names[0])
		return
	}
	b.WriteByte('(')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
	}
	b.WriteByte(')')
}

// Failure is the result of a failed value conversion: either a
// caller-typed error or the invalid-string sentinel for tokens that are
// not representable as Unicode text.
type Failure[E any] struct {
	err     E
	raw     string
	invalid bool
}

// Fail wraps a caller-supplied conversion error.
func Fail[E any](err E) *Failure[E] {
	return &Failure[E]{err: err}
}

// FailInvalid reports that raw was not valid Unicode text.
func FailInvalid[E any](raw string) *Failure[E] {
	return &Failure[E]{raw: raw, invalid: true}
}

// ParseFunc converts one raw argument token into a value, or reports a
// Failure. Implementations receive the token exactly as the process got
// it, which may not be valid UTF-8.
type ParseFunc[T, E any] func(raw string) (T, *Failure[E])

func missingFlagError[E any](d displayDescription, invertPrefix, invertInfix string) ParseError[E] {
	return ParseError[E]{
		Kind:         MissingFlag,
		LongPrefix:   d.longPrefix,
		Long:         d.long,
		ShortPrefix:  d.shortPrefix,
		Short:        d.short,
		InvertPrefix: invertPrefix,
		InvertInfix:  invertInfix,
	}
}

func missingValueError[E any](d displayDescription, valueInfix, metaVar string) ParseError[E] {
	return ParseError[E]{
		Kind:        MissingValue,
		LongPrefix:  d.longPrefix,
		Long:        d.long,
		ShortPrefix: d.shortPrefix,
		Short:       d.short,
		ValueInfix:  valueInfix,
		MetaVar:     metaVar,
	}
}

func parseFailureError[E any](d displayDescription, valueInfix, metaVar string, f *Failure[E]) ParseError[E] {
	return ParseError[E]{
		Kind:         ParseFailure,
		LongPrefix:   d.longPrefix,
		Long:         d.long,
		ShortPrefix:  d.shortPrefix,
		Short:        d.short,
		ValueInfix:   valueInfix,
		MetaVar:      metaVar,
		Err:          f.err,
		InvalidInput: f.invalid,
		Raw:          f.raw,
	}
}
