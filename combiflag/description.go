package combiflag

import "github.com/rivo/uniseg"

// Void is the payload type of flags that never carry a value or default,
// such as help and version.
type Void struct{}

// Description is the immutable metadata of one logical argument: its long
// name aliases (first is canonical for display), optional single-grapheme
// short names, the prefixes both are written after, help text, and an
// optional default value. A Description is built once and consumed by
// exactly one matcher constructor.
type Description[T any] struct {
	LongPrefix  Key
	Long        []Key
	ShortPrefix Key
	Short       []Key
	Help        string
	Default     *T
}

// Describe builds a description for the given long name and optional
// aliases, with the conventional "--" and "-" prefixes and case-insensitive
// matching. It panics when long is empty: an argument without a long name
// is a programming error, not a runtime input.
func Describe[T any](long string, aliases ...string) Description[T] {
	if long == "" {
		panic("combiflag: argument description requires a non-empty long name")
	}
	names := make([]Key, 0, 1+len(aliases))
	names = append(names, NewKey(long, CaseInsensitive))
	for _, alias := range aliases {
		names = append(names, NewKey(alias, CaseInsensitive))
	}
	return Description[T]{
		LongPrefix:  NewKey("--", CaseInsensitive),
		Long:        names,
		ShortPrefix: NewKey("-", CaseInsensitive),
	}
}

// WithShort adds a short name. Short names longer than one grapheme
// cluster never match anything.
func (d Description[T]) WithShort(short string) Description[T] {
	d.Short = append(append([]Key(nil), d.Short...), NewKey(short, CaseInsensitive))
	return d
}

// WithShortFromLong derives the short name from the first grapheme cluster
// of the canonical long name, so multi-codepoint characters stay intact.
func (d Description[T]) WithShortFromLong() Description[T] {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(d.Long[0].String(), -1)
	if cluster == "" {
		return d
	}
	return d.WithShort(cluster)
}

// WithHelp sets the help text shown in generated help output.
func (d Description[T]) WithHelp(help string) Description[T] {
	d.Help = help
	return d
}

// WithDefault sets the value used when no matching token is present.
func (d Description[T]) WithDefault(value T) Description[T] {
	d.Default = &value
	return d
}

// CaseSensitiveNames switches every long and short name to case-sensitive
// matching. Prefixes keep their policy.
func (d Description[T]) CaseSensitiveNames() Description[T] {
	long := make([]Key, len(d.Long))
	for i, k := range d.Long {
		long[i] = NewKey(k.String(), CaseSensitive)
	}
	short := make([]Key, len(d.Short))
	for i, k := range d.Short {
		short[i] = NewKey(k.String(), CaseSensitive)
	}
	d.Long = long
	d.Short = short
	return d
}

// displayDescription is the type-erased, display-string projection of a
// Description, retained in configurations for help rendering and error
// messages.
type displayDescription struct {
	longPrefix  string
	long        []string
	shortPrefix string
	short       []string
	help        string
	def         *string
}

// display projects d onto display strings, rendering the default value
// with show. The typed default stays with the caller for runtime use.
func display[T any](d Description[T], show func(T) string) displayDescription {
	long := make([]string, len(d.Long))
	for i, k := range d.Long {
		long[i] = k.String()
	}
	short := make([]string, len(d.Short))
	for i, k := range d.Short {
		short[i] = k.String()
	}
	var def *string
	if d.Default != nil {
		s := show(*d.Default)
		def = &s
	}
	return displayDescription{
		longPrefix:  d.LongPrefix.String(),
		long:        long,
		shortPrefix: d.ShortPrefix.String(),
		short:       short,
		help:        d.Help,
		def:         def,
	}
}
