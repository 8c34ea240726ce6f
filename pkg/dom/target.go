package dom

// Listener is a callback invoked with the dispatched event.
type Listener func(event *Event)

// ListenerID uniquely identifies a registered listener for removal. Go
// functions cannot be compared for equality, so registration returns an ID.
type ListenerID uint64

// ListenerOptions mirrors the DOM addEventListener options the core honors.
type ListenerOptions struct {
	// Capture invokes the listener during the capture phase instead of the
	// target/bubble phases.
	Capture bool
	// Once removes the listener after its first invocation.
	Once bool
}

type listenerEntry struct {
	id   ListenerID
	fn   Listener
	opts ListenerOptions
}

// eventTarget stores per-type listener lists. Embedded by Element and
// ShadowRoot.
type eventTarget struct {
	listeners map[string][]listenerEntry
	nextID    ListenerID
}

func (t *eventTarget) add(eventType string, fn Listener, opts ListenerOptions) ListenerID {
	if fn == nil {
		return 0
	}
	if t.listeners == nil {
		t.listeners = make(map[string][]listenerEntry)
	}
	t.nextID++
	t.listeners[eventType] = append(t.listeners[eventType], listenerEntry{
		id:   t.nextID,
		fn:   fn,
		opts: opts,
	})
	return t.nextID
}

func (t *eventTarget) remove(eventType string, id ListenerID) bool {
	entries := t.listeners[eventType]
	for i := range entries {
		if entries[i].id == id {
			t.listeners[eventType] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// invoke runs the listeners registered for the event type in the given phase.
// capture selects capture-phase listeners; at the target both kinds run.
func (t *eventTarget) invoke(ev *Event, capture, atTarget bool) {
	entries := t.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	// Snapshot so listeners can remove themselves mid-dispatch.
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		if !atTarget && entry.opts.Capture != capture {
			continue
		}
		if ev.stoppedImmediate {
			return
		}
		if entry.opts.Once {
			t.remove(ev.Type, entry.id)
		}
		entry.fn(ev)
	}
}

// AddEventListener registers a listener on the element.
func (e *Element) AddEventListener(eventType string, fn Listener, opts ListenerOptions) ListenerID {
	return e.target.add(eventType, fn, opts)
}

// RemoveEventListener removes a previously registered listener.
func (e *Element) RemoveEventListener(eventType string, id ListenerID) bool {
	return e.target.remove(eventType, id)
}

// AddEventListener registers a listener on the shadow root.
func (s *ShadowRoot) AddEventListener(eventType string, fn Listener, opts ListenerOptions) ListenerID {
	return s.target.add(eventType, fn, opts)
}

// RemoveEventListener removes a previously registered listener.
func (s *ShadowRoot) RemoveEventListener(eventType string, id ListenerID) bool {
	return s.target.remove(eventType, id)
}
