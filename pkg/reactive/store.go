package reactive

import "reflect"

// Store holds one instance's reactive state: declared public property values
// and tracked slots. The store records mutation; what mutation is legal at a
// given lifecycle point, and whether it schedules a render, is the owning
// instance's policy.
type Store struct {
	values   map[string]any
	assigned map[string]bool
	tracked  map[string]*Tracked
	dirty    bool

	dedupEqual bool
	onMutate   func(name string)
	guard      func(name string) error
}

// NewStore creates an empty store. dedupEqual enables the value-equality
// short-circuit: assigning a property its current value is a no-op. onMutate
// fires after every effective mutation, with the property name.
func NewStore(dedupEqual bool, onMutate func(name string)) *Store {
	return &Store{
		values:     make(map[string]any),
		assigned:   make(map[string]bool),
		tracked:    make(map[string]*Tracked),
		dedupEqual: dedupEqual,
		onMutate:   onMutate,
	}
}

// SetGuard installs a mutation guard consulted by every tracked wrapper
// before applying a mutation. The owner uses it to veto writes at lifecycle
// points where reactive mutation is illegal, such as during a render pass.
func (s *Store) SetGuard(guard func(name string) error) {
	s.guard = guard
}

// Assign replaces the stored value for a public property, marks the store
// dirty, and reports whether the value actually changed. Under the equality
// policy an assignment of the current value changes nothing.
func (s *Store) Assign(name string, value any) bool {
	if s.dedupEqual && s.assigned[name] && equalValues(s.values[name], value) {
		return false
	}
	s.values[name] = value
	s.assigned[name] = true
	s.dirty = true
	if s.onMutate != nil {
		s.onMutate(name)
	}
	return true
}

// Seed stores a value without marking dirty or firing mutation hooks. Used
// for descriptor defaults and attribute-driven initialization.
func (s *Store) Seed(name string, value any) {
	s.values[name] = value
	s.assigned[name] = true
}

// Get returns the stored value and whether the property has been assigned.
func (s *Store) Get(name string) (any, bool) {
	if t, ok := s.tracked[name]; ok {
		return t.Value(), true
	}
	if !s.assigned[name] {
		return nil, false
	}
	return s.values[name], true
}

// AssignTracked reassigns a tracked slot, wrapping the value with
// copy-on-assign semantics. The second result is false when the value is not
// deep-observable (non-plain); callers surface that as an advisory.
func (s *Store) AssignTracked(name string, value any) (*Tracked, bool) {
	t, plain := NewTracked(value, func() error {
		if s.guard == nil {
			return nil
		}
		return s.guard(name)
	}, func() {
		s.dirty = true
		if s.onMutate != nil {
			s.onMutate(name)
		}
	})
	s.tracked[name] = t
	s.assigned[name] = true
	s.dirty = true
	if s.onMutate != nil {
		s.onMutate(name)
	}
	return t, plain
}

// Tracked returns the wrapper for a tracked slot, or nil when the slot has
// not been assigned.
func (s *Store) Tracked(name string) *Tracked {
	return s.tracked[name]
}

// Dirty reports whether any reactive write happened since the last render.
func (s *Store) Dirty() bool {
	return s.dirty
}

// ClearDirty resets the dirty flag after a completed render pass.
func (s *Store) ClearDirty() {
	s.dirty = false
}

// MarkDirty forces the dirty flag, for mutations recorded outside the store.
func (s *Store) MarkDirty() {
	s.dirty = true
}

// Snapshot returns a copy of all assigned values, tracked slots included.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.values)+len(s.tracked))
	for name := range s.assigned {
		if !s.assigned[name] {
			continue
		}
		if t, ok := s.tracked[name]; ok {
			copied, _ := deepCopyPlain(t.Value())
			out[name] = copied
			continue
		}
		out[name] = s.values[name]
	}
	return out
}

// equalValues compares two property values for the dedup policy. Comparable
// values use ==; everything else is treated as unequal so mutation is never
// silently dropped.
func equalValues(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
