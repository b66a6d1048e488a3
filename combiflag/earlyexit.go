package combiflag

// EarlyExit wraps the matcher with a flag that aborts normal parsing and
// reports message instead, the mechanism behind help and version flags.
// Every occurrence of the flag contributes one copy of the message; when
// the wrapped matcher itself exits early, its messages come first and this
// one is appended, so messages print in registration order.
func (a Arguments[T, E]) EarlyExit(desc Description[Void], message string) Arguments[T, E] {
	d := display(desc, func(Void) string { return "" })
	configs := append(a.Configs(), flagConfig(d, "", "", false))

	var shorts []shortForms
	shorts = mergeShortForms(shorts, a.shorts)
	if len(desc.Short) > 0 {
		shorts = mergeShortForms(shorts, []shortForms{{prefix: desc.ShortPrefix, names: desc.Short}})
	}

	inner := a.parse
	return Arguments[T, E]{
		configs: configs,
		shorts:  shorts,
		parse: func(ts []token) (Outcome[T, E], []token) {
			out := make([]token, len(ts))
			copy(out, ts)
			var messages []string
			for i, t := range out {
				if !t.ok {
					continue
				}
				if matchExitToken(desc, t.value) {
					messages = append(messages, message)
					out[i] = token{}
				}
			}
			result, rest := inner(out)
			switch {
			case result.Kind() == OutcomeEarlyExit:
				combined := make([]string, 0, len(result.Messages())+len(messages))
				combined = append(combined, result.Messages()...)
				combined = append(combined, messages...)
				return newEarlyExit[T, E](combined), rest
			case len(messages) > 0:
				return newEarlyExit[T, E](messages), rest
			default:
				return result, rest
			}
		},
	}
}

func matchExitToken(desc Description[Void], raw string) bool {
	n := Normalize(raw)
	if rest, ok := desc.LongPrefix.StripPrefix(n); ok {
		return anyKeyMatchesNormalized(desc.Long, rest)
	}
	if len(desc.Short) == 0 {
		return false
	}
	rest, ok := desc.ShortPrefix.StripPrefix(n)
	if !ok {
		return false
	}
	name, ok := singleGrapheme(rest.String())
	return ok && anyKeyMatches(desc.Short, name)
}

// Help adds a help flag named by lang which prints the generated help text
// and exits. version may be empty when the program has none.
func (a Arguments[T, E]) Help(program, version string, lang Language) Arguments[T, E] {
	desc := Describe[Void](lang.HelpLong).
		WithShort(lang.HelpShort).
		WithHelp(lang.HelpDescription)
	return a.HelpWithNames(desc, program, version, lang)
}

// HelpWithNames is Help with a caller-supplied flag description, so the
// names and help text can differ from the language table.
func (a Arguments[T, E]) HelpWithNames(desc Description[Void], program, version string, lang Language) Arguments[T, E] {
	d := display(desc, func(Void) string { return "" })
	configs := append(a.Configs(), flagConfig(d, "", "", false))
	text := renderHelp(program, version, configs, lang)
	return a.EarlyExit(desc, text)
}

// Version adds a version flag named by lang which prints "program version"
// and exits.
func (a Arguments[T, E]) Version(program, version string, lang Language) Arguments[T, E] {
	desc := Describe[Void](lang.VersionLong).
		WithShort(lang.VersionShort).
		WithHelp(lang.VersionDescription)
	return a.VersionWithNames(desc, program, version)
}

// VersionWithNames is Version with a caller-supplied flag description.
func (a Arguments[T, E]) VersionWithNames(desc Description[Void], program, version string) Arguments[T, E] {
	return a.EarlyExit(desc, versionLine(program, version))
}

// HelpAndVersion adds both flags with synchronized program name and
// version. The version flag registers first, so combined occurrences such
// as "-vh" print the version line before the help text.
func (a Arguments[T, E]) HelpAndVersion(program, version string, lang Language) Arguments[T, E] {
	return a.Version(program, version, lang).Help(program, version, lang)
}

// HelpText renders the help text for the current configuration without
// registering a flag, for callers that print it themselves.
func (a Arguments[T, E]) HelpText(program, version string, lang Language) string {
	return renderHelp(program, version, a.Configs(), lang)
}
