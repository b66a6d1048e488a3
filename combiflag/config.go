package combiflag

// ConfigKind distinguishes the two shapes an argument configuration can
// take in help output.
type ConfigKind int

const (
	// ConfigFlag is a presence flag, possibly invertible, possibly an
	// early-exit flag (not invertible, no default).
	ConfigFlag ConfigKind = iota
	// ConfigValue is an argument that carries a value.
	ConfigValue
)

// Config is the display-string projection of one configured argument.
// Configurations accumulate additively as matchers combine and feed the
// help-text generator and short-bundle detection; parsing never consults
// them.
type Config struct {
	Kind        ConfigKind
	LongPrefix  string
	Long        []string
	ShortPrefix string
	Short       []string
	Help        string
	Default     string
	HasDefault  bool

	// Flag-only: the inverted form "--[prefix][infix]name". Early-exit
	// flags have Invertible false.
	Invertible   bool
	InvertPrefix string
	InvertInfix  string

	// Value-only.
	ValueInfix string
	MetaVar    string
	Allowed    []string
}

func flagConfig(d displayDescription, invertPrefix, invertInfix string, invertible bool) Config {
	c := Config{
		Kind:         ConfigFlag,
		LongPrefix:   d.longPrefix,
		Long:         d.long,
		ShortPrefix:  d.shortPrefix,
		Short:        d.short,
		Help:         d.help,
		Invertible:   invertible,
		InvertPrefix: invertPrefix,
		InvertInfix:  invertInfix,
	}
	if d.def != nil {
		c.Default = *d.def
		c.HasDefault = true
	}
	return c
}

func valueConfig(d displayDescription, valueInfix, metaVar string, allowed []string) Config {
	c := Config{
		Kind:        ConfigValue,
		LongPrefix:  d.longPrefix,
		Long:        d.long,
		ShortPrefix: d.shortPrefix,
		Short:       d.short,
		Help:        d.help,
		ValueInfix:  valueInfix,
		MetaVar:     metaVar,
		Allowed:     allowed,
	}
	if d.def != nil {
		c.Default = *d.def
		c.HasDefault = true
	}
	return c
}
