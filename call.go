package settings

// Arg is one element of an options call: a bare name reads, an assignment
// writes. Build with Name or Assign.
type Arg struct {
	name     string
	value    any
	assigned bool
}

// Name builds an Arg that reads the named option.
func Name(n string) Arg {
	return Arg{name: n}
}

// Assign builds an Arg that writes value to the named option.
func Assign(n string, value any) Arg {
	return Arg{name: n, value: value, assigned: true}
}

// Option returns the option name the Arg refers to.
func (a Arg) Option() string {
	return a.name
}

// Value returns the carried value and whether the Arg is an assignment.
func (a Arg) Value() (any, bool) {
	return a.value, a.assigned
}

// IsAssignment reports whether the Arg writes.
func (a Arg) IsAssignment() bool {
	return a.assigned
}

// CallKind discriminates the two call shapes.
type CallKind int

const (
	// CallGet reads one or more options, or all of them.
	CallGet CallKind = iota + 1
	// CallSet writes one or more options atomically.
	CallSet
)

func (k CallKind) String() string {
	switch k {
	case CallGet:
		return "get"
	case CallSet:
		return "set"
	default:
		return "unknown"
	}
}

// Call is a classified argument list ready for dispatch.
type Call struct {
	Kind  CallKind
	Names []string
	Pairs []Pair
}

// ParseCall classifies args into a get or a set. Zero args is a get of the
// full option map. Mixing bare names and assignments in one call is rejected;
// the caller's intent would be ambiguous.
func ParseCall(args ...Arg) (Call, error) {
	reads := 0
	writes := 0
	for _, arg := range args {
		if arg.name == "" {
			return Call{}, &InvalidCallError{Reason: "empty option name"}
		}
		if arg.assigned {
			writes++
		} else {
			reads++
		}
	}
	if writes > 0 && reads > 0 {
		return Call{}, &InvalidCallError{Reason: "mixes reads and assignments"}
	}
	if writes > 0 {
		pairs := make([]Pair, 0, writes)
		for _, arg := range args {
			pairs = append(pairs, Pair{Name: arg.name, Value: arg.value})
		}
		return Call{Kind: CallSet, Pairs: pairs}, nil
	}
	names := make([]string, 0, reads)
	for _, arg := range args {
		names = append(names, arg.name)
	}
	return Call{Kind: CallGet, Names: names}, nil
}

// IsSetting reports whether args carry at least one assignment, meaning a
// dispatch would mutate the store.
func IsSetting(args ...Arg) bool {
	for _, arg := range args {
		if arg.assigned {
			return true
		}
	}
	return false
}

// Result carries the outcome of a dispatched call. Names and values stay
// aligned in call order; for a set they hold the post-call values of the
// assigned options.
type Result struct {
	Kind CallKind

	names  []string
	values []any
}

// Names returns the option names the call touched, in call order.
func (r *Result) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Value returns the first value, covering the common one-name get.
func (r *Result) Value() any {
	if len(r.values) == 0 {
		return nil
	}
	return r.values[0]
}

// Values returns the values in call order.
func (r *Result) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the values keyed by option name.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, len(r.names))
	for i, name := range r.names {
		if i < len(r.values) {
			out[name] = r.values[i]
		}
	}
	return out
}

// Pairs returns name/value pairs in call order.
func (r *Result) Pairs() []Pair {
	out := make([]Pair, 0, len(r.names))
	for i, name := range r.names {
		if i < len(r.values) {
			out = append(out, Pair{Name: name, Value: r.values[i]})
		}
	}
	return out
}

// Do executes one options call: zero args reads the full option map, bare
// names read in request order, assignments write atomically. The call shape
// comes from ParseCall.
func (m *Manager) Do(args ...Arg) (*Result, error) {
	call, err := ParseCall(args...)
	if err != nil {
		return nil, err
	}
	if call.Kind == CallSet {
		if err := m.Set(call.Pairs...); err != nil {
			return nil, err
		}
		names := updateNames(call.Pairs)
		values, err := m.Values(names...)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: CallSet, names: names, values: values}, nil
	}
	names := call.Names
	if len(names) == 0 {
		names = m.Names()
	}
	values, err := m.Values(names...)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: CallGet, names: names, values: values}, nil
}
