// Package combiflag provides composable command-line argument matchers.
//
// A program describes each flag or value argument once, as a Description,
// and turns it into an Arguments matcher via Flag, FlagBool, Value or one
// of the typed helpers. Independent matchers are merged with Combine2..9
// into a single matcher over a derived result type. Parsing a token list
// yields a three-way Outcome: a typed value, one or more early-exit
// messages (help/version), or a list of structured parse errors collected
// across every combined argument.
//
// Matchers are immutable after construction. Combining consumes its inputs
// and returns a new owning matcher; a single matcher value may be parsed
// concurrently since all per-call state is local to the call.
//
// Name matching is Unicode-aware: names are compared after NFC
// normalization (with CJK compatibility ideographs folded), optionally
// case-insensitively, and short names are single grapheme clusters so
// that bundles like "-vh" expand correctly even for multi-codepoint
// characters.
package combiflag
