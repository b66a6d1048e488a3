package combiflag

import (
	"os"

	combiio "github.com/dzonerzy/go-combiflag/io"
	"github.com/dzonerzy/go-combiflag/internal/fuzzy"
	"github.com/dzonerzy/go-combiflag/internal/pool"
)

// osExit is swapped out in tests.
var osExit = os.Exit

// Parse runs the matcher against args. Short-flag bundles such as "-abc"
// are expanded into "-a -b -c" first, provided every grapheme after the
// prefix names a registered short flag; otherwise the token stays intact.
// The second return value holds the tokens no matcher consumed, in their
// original order.
func (a Arguments[T, E]) Parse(args []string) (Outcome[T, E], []string) {
	expanded := expandShortBundles(a.shorts, args)
	outcome, rest := a.parse(tokenize(expanded))
	return outcome, leftovers(rest)
}

// ParseFromEnv parses the process arguments.
func (a Arguments[T, E]) ParseFromEnv() (Outcome[T, E], []string) {
	return a.Parse(os.Args[1:])
}

// ParseWithEarlyExit parses args, printing early-exit messages to standard
// output and stopping the process with exit code 0 when one triggers.
// Otherwise it returns the parsed value or the collected errors, plus the
// unconsumed tokens.
func (a Arguments[T, E]) ParseWithEarlyExit(args []string) (T, []ParseError[E], []string) {
	return a.parseWithEarlyExit(args, combiio.NewConsole())
}

func (a Arguments[T, E]) parseWithEarlyExit(args []string, con *combiio.Console) (T, []ParseError[E], []string) {
	outcome, rest := a.Parse(args)
	switch outcome.Kind() {
	case OutcomeEarlyExit:
		for _, message := range outcome.Messages() {
			con.Message(message)
		}
		osExit(0)
		var zero T
		return zero, nil, rest
	case OutcomeErrors:
		var zero T
		return zero, outcome.Errors(), rest
	default:
		return outcome.Value(), nil, rest
	}
}

// ParseComplete is the all-inclusive driver: early-exit messages go to
// standard output followed by exit code 0; errors and unconsumed tokens
// are reported on standard error in lang's words followed by errorCode.
// Unconsumed tokens that resemble a configured name get a suggestion.
func (a Arguments[T, E]) ParseComplete(args []string, errorCode int, lang Language) T {
	return a.ParseCompleteWith(args, errorCode, lang, combiio.NewConsole())
}

// ParseCompleteFromEnv is ParseComplete on the process arguments.
func (a Arguments[T, E]) ParseCompleteFromEnv(errorCode int, lang Language) T {
	return a.ParseComplete(os.Args[1:], errorCode, lang)
}

// ParseCompleteWith is ParseComplete writing through con, so callers and
// tests control the destination streams.
func (a Arguments[T, E]) ParseCompleteWith(args []string, errorCode int, lang Language, con *combiio.Console) T {
	value, errs, rest := a.parseWithEarlyExit(args, con)
	if len(errs) > 0 {
		for _, err := range errs {
			con.Error(err.Message(lang))
		}
		osExit(errorCode)
		return value
	}
	if len(rest) > 0 {
		names := a.configuredNames()
		for _, arg := range rest {
			if suggestion := fuzzy.FindBestName(arg, names, 2); suggestion != "" {
				con.Errorf("%s: %q (%s?)", lang.UnusedArgs, arg, suggestion)
			} else {
				con.Errorf("%s: %q", lang.UnusedArgs, arg)
			}
		}
		osExit(errorCode)
	}
	return value
}

// configuredNames lists every prefixed form an argument can be written in,
// the candidate set for typo suggestions.
func (a Arguments[T, E]) configuredNames() []string {
	var names []string
	for _, c := range a.configs {
		for _, long := range c.Long {
			names = append(names, c.LongPrefix+long)
		}
		if c.Kind == ConfigFlag && c.Invertible {
			for _, long := range c.Long {
				names = append(names, c.LongPrefix+c.InvertPrefix+c.InvertInfix+long)
			}
		}
		for _, short := range c.Short {
			names = append(names, c.ShortPrefix+short)
		}
	}
	return names
}

// expandShortBundles rewrites every bundle token into its single-flag
// components. A token is a bundle when one registered short prefix strips
// from it and every grapheme of the remainder names a registered short
// flag under that prefix; the first prefix that strips decides, with no
// partial expansion.
func expandShortBundles(shorts []shortForms, args []string) []string {
	if len(shorts) == 0 {
		return args
	}
	scratch := pool.GetStrings()
	defer pool.PutStrings(scratch)
	for _, arg := range args {
		*scratch = appendExpanded(*scratch, shorts, arg)
	}
	expanded := make([]string, len(*scratch))
	copy(expanded, *scratch)
	return expanded
}

func appendExpanded(dst []string, shorts []shortForms, arg string) []string {
	n := Normalize(arg)
	for _, group := range shorts {
		rest, ok := group.prefix.StripPrefix(n)
		if !ok {
			continue
		}
		start := len(dst)
		for _, cluster := range graphemes(rest.String()) {
			if !anyKeyMatches(group.names, cluster) {
				return append(dst[:start], arg)
			}
			dst = append(dst, group.prefix.String()+cluster)
		}
		if len(dst) > start {
			return dst
		}
	}
	return append(dst, arg)
}
