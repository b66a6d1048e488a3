package combiflag

import (
	"os"
	"path/filepath"
	"strings"
)

// versionLine is the text an auto-generated version flag prints.
func versionLine(program, version string) string {
	if version == "" {
		return program
	}
	return program + " " + version
}

// renderHelp builds the full help text for the given configurations:
// a "program version" header, a usage line with the running executable's
// name, and one aligned row per argument. Column widths count grapheme
// clusters so multi-codepoint names line up.
func renderHelp(program, version string, configs []Config, lang Language) string {
	var b strings.Builder
	b.WriteString(versionLine(program, version))
	b.WriteString("\n\n")
	b.WriteString(exeName(program))
	b.WriteString(" [")
	b.WriteString(lang.Options)
	b.WriteString("]\n\n")
	b.WriteString(lang.Options)
	b.WriteString(":\n")

	longColumn := make([]string, len(configs))
	maxLong := 0
	for i, c := range configs {
		longColumn[i] = longPattern(c)
		if w := graphemeWidth(longColumn[i]); w > maxLong {
			maxLong = w
		}
	}

	rows := make([]string, len(configs))
	maxRow := 0
	for i, c := range configs {
		rows[i] = appendShortPattern(longColumn[i], maxLong, c)
		if w := graphemeWidth(rows[i]); w > maxRow {
			maxRow = w
		}
	}

	for i, c := range configs {
		b.WriteString("  ")
		b.WriteString(rows[i])
		b.WriteString(strings.Repeat(" ", 2+maxRow-graphemeWidth(rows[i])))
		writeRowTail(&b, c, lang)
		b.WriteByte('\n')
	}
	return b.String()
}

func exeName(fallback string) string {
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	if base := filepath.Base(exe); base != "." && base != string(filepath.Separator) {
		return base
	}
	return fallback
}

// longPattern renders the long-form usage of one argument, e.g.
// "--[no]-flag" or "--value(=| )VALUE".
func longPattern(c Config) string {
	var b strings.Builder
	b.WriteString(c.LongPrefix)
	if c.Kind == ConfigFlag {
		if c.Invertible {
			b.WriteByte('[')
			b.WriteString(c.InvertPrefix)
			b.WriteByte(']')
			b.WriteString(c.InvertInfix)
		}
		writeNamePattern(&b, c.Long)
		return b.String()
	}
	writeNamePattern(&b, c.Long)
	b.WriteByte('(')
	b.WriteString(c.ValueInfix)
	b.WriteString("| )")
	b.WriteString(c.MetaVar)
	return b.String()
}

// appendShortPattern pads the long pattern to the shared column and, when
// short names exist, appends " | " and the short-form usage.
func appendShortPattern(long string, maxLong int, c Config) string {
	if len(c.Short) == 0 {
		return long
	}
	var b strings.Builder
	b.WriteString(long)
	b.WriteString(strings.Repeat(" ", maxLong-graphemeWidth(long)))
	b.WriteString(" | ")
	b.WriteString(c.ShortPrefix)
	writeNamePattern(&b, c.Short)
	if c.Kind == ConfigValue {
		b.WriteByte('[')
		b.WriteString(c.ValueInfix)
		b.WriteString("| ]")
		b.WriteString(c.MetaVar)
	}
	return b.String()
}

// writeRowTail appends the help text plus bracketed allowed values and
// default, sharing one bracket when both are present:
// "help [Possible values: a, b | Default: a]".
func writeRowTail(b *strings.Builder, c Config, lang Language) {
	b.WriteString(c.Help)
	if len(c.Allowed) > 0 {
		if c.Help != "" {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		b.WriteString(lang.AllowedValues)
		b.WriteString(": ")
		b.WriteString(strings.Join(c.Allowed, ", "))
		if c.HasDefault {
			b.WriteString(" | ")
		} else {
			b.WriteByte(']')
		}
	}
	if c.HasDefault {
		if len(c.Allowed) == 0 {
			if c.Help != "" {
				b.WriteByte(' ')
			}
			b.WriteByte('[')
		}
		b.WriteString(lang.Default)
		b.WriteString(": ")
		b.WriteString(c.Default)
		b.WriteByte(']')
	}
}
