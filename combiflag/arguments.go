package combiflag

// token is one cell of the working argument list. Consumed tokens stay in
// place with ok=false so every matcher sees a list of the original length
// and leftover positions survive intact.
type token struct {
	value string
	ok    bool
}

func tokenize(args []string) []token {
	ts := make([]token, len(args))
	for i, a := range args {
		ts[i] = token{value: a, ok: true}
	}
	return ts
}

func leftovers(ts []token) []string {
	var rest []string
	for _, t := range ts {
		if t.ok {
			rest = append(rest, t.value)
		}
	}
	return rest
}

type parseFunc[T, E any] func(ts []token) (Outcome[T, E], []token)

// shortForms groups the single-grapheme names registered under one short
// prefix, so bundled tokens like -abc can be expanded before matching.
type shortForms struct {
	prefix Key
	names  []Key
}

// Arguments is a self-contained parser for some value of type T with
// conversion errors of type E. Values are immutable: every builder method
// and combinator returns a new Arguments, and a single value may be used
// from multiple goroutines at once.
type Arguments[T, E any] struct {
	configs []Config
	shorts  []shortForms
	parse   parseFunc[T, E]
}

// Configs returns the display configuration of every argument in
// registration order. Help rendering is built on this.
func (a Arguments[T, E]) Configs() []Config {
	out := make([]Config, len(a.configs))
	copy(out, a.configs)
	return out
}

func (a Arguments[T, E]) run(ts []token) (Outcome[T, E], []token) {
	return a.parse(ts)
}

// mergeShortForms folds the short names of src into dst, grouping by
// prefix identity (text and case sensitivity both count).
func mergeShortForms(dst []shortForms, src []shortForms) []shortForms {
	for _, s := range src {
		merged := false
		for i := range dst {
			if sameKey(dst[i].prefix, s.prefix) {
				dst[i].names = append(dst[i].names, s.names...)
				merged = true
				break
			}
		}
		if !merged {
			group := shortForms{prefix: s.prefix, names: make([]Key, len(s.names))}
			copy(group.names, s.names)
			dst = append(dst, group)
		}
	}
	return dst
}
