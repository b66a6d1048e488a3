package combiflag

// Constant builds a matcher that consumes nothing and always yields value.
// Useful as a seed when a combination needs a fixed component.
func Constant[T, E any](value T) Arguments[T, E] {
	return Arguments[T, E]{
		parse: func(ts []token) (Outcome[T, E], []token) {
			return newValue[T, E](value), ts
		},
	}
}

// Map converts the result of a matcher with a pure function, keeping its
// configuration and matching behavior intact.
func Map[T, U, E any](a Arguments[T, E], f func(T) U) Arguments[U, E] {
	return Arguments[U, E]{
		configs: a.configs,
		shorts:  a.shorts,
		parse: func(ts []token) (Outcome[U, E], []token) {
			o, rest := a.parse(ts)
			switch o.Kind() {
			case OutcomeValue:
				return newValue[U, E](f(o.Value())), rest
			case OutcomeEarlyExit:
				return newEarlyExit[U, E](o.Messages()), rest
			default:
				return newErrors[U, E](o.Errors()), rest
			}
		},
	}
}

// erased is a child matcher with its value type hidden, so combinations of
// arbitrary arity share one merge routine.
type erased[E any] struct {
	configs []Config
	shorts  []shortForms
	run     func([]token) (erasedOutcome[E], []token)
}

type erasedOutcome[E any] struct {
	kind     OutcomeKind
	value    any
	messages []string
	errors   []ParseError[E]
}

func erase[T, E any](a Arguments[T, E]) erased[E] {
	return erased[E]{
		configs: a.configs,
		shorts:  a.shorts,
		run: func(ts []token) (erasedOutcome[E], []token) {
			o, rest := a.parse(ts)
			return erasedOutcome[E]{kind: o.kind, value: o.value, messages: o.messages, errors: o.errors}, rest
		},
	}
}

// combineAll runs every child in registration order against the
// progressively shrinking token list and merges the outcomes. All errors
// across children dominate; otherwise all early-exit messages merge in
// registration order; otherwise apply receives the child values.
func combineAll[T, E any](apply func(values []any) T, parts ...erased[E]) Arguments[T, E] {
	var configs []Config
	var shorts []shortForms
	for _, p := range parts {
		configs = append(configs, p.configs...)
		shorts = mergeShortForms(shorts, p.shorts)
	}
	return Arguments[T, E]{
		configs: configs,
		shorts:  shorts,
		parse: func(ts []token) (Outcome[T, E], []token) {
			values := make([]any, len(parts))
			var messages []string
			var errs []ParseError[E]
			rest := ts
			for i, p := range parts {
				var o erasedOutcome[E]
				o, rest = p.run(rest)
				switch o.kind {
				case OutcomeValue:
					values[i] = o.value
				case OutcomeEarlyExit:
					messages = append(messages, o.messages...)
				default:
					errs = append(errs, o.errors...)
				}
			}
			switch {
			case len(errs) > 0:
				return newErrors[T, E](errs), rest
			case len(messages) > 0:
				return newEarlyExit[T, E](messages), rest
			default:
				return newValue[T, E](apply(values)), rest
			}
		},
	}
}

// Combine2 merges two matchers into one producing f of both values.
func Combine2[A, B, T, E any](f func(A, B) T, a Arguments[A, E], b Arguments[B, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B))
	}, erase(a), erase(b))
}

// Combine3 merges three matchers.
func Combine3[A, B, C, T, E any](f func(A, B, C) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C))
	}, erase(a), erase(b), erase(c))
}

// Combine4 merges four matchers.
func Combine4[A, B, C, D, T, E any](f func(A, B, C, D) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D))
	}, erase(a), erase(b), erase(c), erase(d))
}

// Combine5 merges five matchers.
func Combine5[A, B, C, D, F, T, E any](f func(A, B, C, D, F) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E], e Arguments[F, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(F))
	}, erase(a), erase(b), erase(c), erase(d), erase(e))
}

// Combine6 merges six matchers.
func Combine6[A, B, C, D, F, G, T, E any](f func(A, B, C, D, F, G) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E], e Arguments[F, E], g Arguments[G, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(F), vs[5].(G))
	}, erase(a), erase(b), erase(c), erase(d), erase(e), erase(g))
}

// Combine7 merges seven matchers.
func Combine7[A, B, C, D, F, G, H, T, E any](f func(A, B, C, D, F, G, H) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E], e Arguments[F, E], g Arguments[G, E], h Arguments[H, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(F), vs[5].(G), vs[6].(H))
	}, erase(a), erase(b), erase(c), erase(d), erase(e), erase(g), erase(h))
}

// Combine8 merges eight matchers.
func Combine8[A, B, C, D, F, G, H, I, T, E any](f func(A, B, C, D, F, G, H, I) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E], e Arguments[F, E], g Arguments[G, E], h Arguments[H, E], i Arguments[I, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(F), vs[5].(G), vs[6].(H), vs[7].(I))
	}, erase(a), erase(b), erase(c), erase(d), erase(e), erase(g), erase(h), erase(i))
}

// Combine9 merges nine matchers. Larger combinations nest: combine the
// first nine, then combine the result with the rest.
func Combine9[A, B, C, D, F, G, H, I, J, T, E any](f func(A, B, C, D, F, G, H, I, J) T, a Arguments[A, E], b Arguments[B, E], c Arguments[C, E], d Arguments[D, E], e Arguments[F, E], g Arguments[G, E], h Arguments[H, E], i Arguments[I, E], j Arguments[J, E]) Arguments[T, E] {
	return combineAll(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(F), vs[5].(G), vs[6].(H), vs[7].(I), vs[8].(J))
	}, erase(a), erase(b), erase(c), erase(d), erase(e), erase(g), erase(h), erase(i), erase(j))
}
