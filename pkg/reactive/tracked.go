package reactive

// Tracked is a change-observing wrapper around a tracked property value.
//
// Assignment copies the plain portions of the value (maps, slices,
// primitives) so external mutation of the original after assignment cannot
// retroactively change the stored state. All subsequent mutation funnels
// through the wrapper, which consults the owning store's mutation guard and
// notifies the store. Mutators return the guard's error; a vetoed mutation
// is not applied.
type Tracked struct {
	value    any
	guard    func() error
	onMutate func()
}

// NewTracked wraps value with copy-on-assign semantics. guard, when non-nil,
// is consulted before each mutation and may veto it; onMutate is invoked
// after each applied mutation. The second result is false when the value (or
// something nested in it) is not a plain map/slice/primitive; such values
// are stored as-is and cannot be deep-observed.
func NewTracked(value any, guard func() error, onMutate func()) (*Tracked, bool) {
	copied, plain := deepCopyPlain(value)
	return &Tracked{value: copied, guard: guard, onMutate: onMutate}, plain
}

// Value returns the wrapped root value.
func (t *Tracked) Value() any {
	return t.value
}

// Get reads a key from the wrapped map. Returns nil for non-map roots.
func (t *Tracked) Get(key string) any {
	if m, ok := t.value.(map[string]any); ok {
		return m[key]
	}
	return nil
}

// Set writes a key on the wrapped map and notifies the store.
func (t *Tracked) Set(key string, value any) error {
	if err := t.checkGuard(); err != nil {
		return err
	}
	m, ok := t.value.(map[string]any)
	if !ok {
		return nil
	}
	m[key] = value
	t.mutated()
	return nil
}

// Delete removes a key from the wrapped map and notifies the store.
func (t *Tracked) Delete(key string) error {
	if err := t.checkGuard(); err != nil {
		return err
	}
	m, ok := t.value.(map[string]any)
	if !ok {
		return nil
	}
	if _, present := m[key]; !present {
		return nil
	}
	delete(m, key)
	t.mutated()
	return nil
}

// Index reads an element of the wrapped slice. Returns nil out of range or
// for non-slice roots.
func (t *Tracked) Index(i int) any {
	if s, ok := t.value.([]any); ok && i >= 0 && i < len(s) {
		return s[i]
	}
	return nil
}

// SetIndex writes an element of the wrapped slice and notifies the store.
func (t *Tracked) SetIndex(i int, value any) error {
	if err := t.checkGuard(); err != nil {
		return err
	}
	s, ok := t.value.([]any)
	if !ok || i < 0 || i >= len(s) {
		return nil
	}
	s[i] = value
	t.mutated()
	return nil
}

// Append appends to the wrapped slice and notifies the store.
func (t *Tracked) Append(values ...any) error {
	if err := t.checkGuard(); err != nil {
		return err
	}
	s, ok := t.value.([]any)
	if !ok {
		return nil
	}
	t.value = append(s, values...)
	t.mutated()
	return nil
}

// Sub returns a wrapper over a nested map or slice value so that nested
// mutation still funnels through the instance's guard and marks it dirty.
// Returns nil when the key does not hold a map or slice.
func (t *Tracked) Sub(key string) *Tracked {
	v := t.Get(key)
	switch v.(type) {
	case map[string]any, []any:
		return &Tracked{value: v, guard: t.guard, onMutate: t.onMutate}
	default:
		return nil
	}
}

// SubIndex is Sub for slice roots.
func (t *Tracked) SubIndex(i int) *Tracked {
	v := t.Index(i)
	switch v.(type) {
	case map[string]any, []any:
		return &Tracked{value: v, guard: t.guard, onMutate: t.onMutate}
	default:
		return nil
	}
}

func (t *Tracked) checkGuard() error {
	if t.guard != nil {
		return t.guard()
	}
	return nil
}

func (t *Tracked) mutated() {
	if t.onMutate != nil {
		t.onMutate()
	}
}

// deepCopyPlain copies plain values: maps keyed by string, slices, and
// primitives. Anything else is returned as-is with plain=false.
func deepCopyPlain(v any) (copied any, plain bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case map[string]any:
		out := make(map[string]any, len(val))
		plain = true
		for k, nested := range val {
			c, p := deepCopyPlain(nested)
			out[k] = c
			plain = plain && p
		}
		return out, plain
	case []any:
		out := make([]any, len(val))
		plain = true
		for i, nested := range val {
			c, p := deepCopyPlain(nested)
			out[i] = c
			plain = plain && p
		}
		return out, plain
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val, true
	default:
		return val, false
	}
}
