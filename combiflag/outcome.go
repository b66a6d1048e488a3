package combiflag

// OutcomeKind discriminates the three ways a parse can end.
type OutcomeKind int

const (
	// OutcomeValue: parsing produced a value.
	OutcomeValue OutcomeKind = iota
	// OutcomeEarlyExit: an early-exit argument matched; Messages holds the
	// texts to print, in registration order.
	OutcomeEarlyExit
	// OutcomeErrors: parsing failed; Errors holds every failure found.
	OutcomeErrors
)

// Outcome is the three-way result of parsing. Exactly one of the payloads
// is populated, selected by Kind.
type Outcome[T, E any] struct {
	kind     OutcomeKind
	value    T
	messages []string
	errors   []ParseError[E]
}

func newValue[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{kind: OutcomeValue, value: v}
}

func newEarlyExit[T, E any](messages []string) Outcome[T, E] {
	return Outcome[T, E]{kind: OutcomeEarlyExit, messages: messages}
}

func newErrors[T, E any](errs []ParseError[E]) Outcome[T, E] {
	return Outcome[T, E]{kind: OutcomeErrors, errors: errs}
}

// Kind reports which payload this outcome carries.
func (o Outcome[T, E]) Kind() OutcomeKind { return o.kind }

// Value returns the parsed value. Only meaningful when Kind is
// OutcomeValue; otherwise it is the zero value.
func (o Outcome[T, E]) Value() T { return o.value }

// Messages returns the early-exit texts in registration order.
func (o Outcome[T, E]) Messages() []string { return o.messages }

// Errors returns the collected parse errors.
func (o Outcome[T, E]) Errors() []ParseError[E] { return o.errors }
