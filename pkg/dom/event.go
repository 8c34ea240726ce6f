package dom

// Node is a participant in event dispatch: an Element or a ShadowRoot.
type Node interface {
	targetRef() *eventTarget
	// pathParent returns the next node outward. crossed is true when the step
	// leaves a shadow tree through its host; a nil node ends the path.
	pathParent(composed bool) (node Node, crossed bool)
}

func (e *Element) targetRef() *eventTarget { return &e.target }

func (e *Element) pathParent(composed bool) (Node, bool) {
	if e.parent != nil {
		return e.parent, false
	}
	if e.container != nil {
		return e.container, false
	}
	return nil, false
}

func (s *ShadowRoot) targetRef() *eventTarget { return &s.target }

func (s *ShadowRoot) pathParent(composed bool) (Node, bool) {
	if !composed {
		return nil, false
	}
	return s.host, true
}

// Event is a dispatched event, following the shape of the W3C DOM Event.
type Event struct {
	// Type is the event type name (e.g. "click", "notify").
	Type string
	// Bubbles indicates whether ancestor bubble-phase listeners run.
	Bubbles bool
	// Cancelable indicates whether PreventDefault has an effect.
	Cancelable bool
	// Composed indicates whether the event may cross a shadow boundary.
	Composed bool
	// Detail carries custom event data.
	Detail any

	target           Node
	currentTarget    Node
	defaultPrevented bool
	stopped          bool
	stoppedImmediate bool
}

// CustomEventOptions configures NewCustomEvent.
type CustomEventOptions struct {
	Detail     any
	Bubbles    bool
	Cancelable bool
	Composed   bool
}

// NewCustomEvent creates an event carrying custom detail data.
func NewCustomEvent(eventType string, opts CustomEventOptions) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    opts.Bubbles,
		Cancelable: opts.Cancelable,
		Composed:   opts.Composed,
		Detail:     opts.Detail,
	}
}

// Target returns the node the event was dispatched on, as visible from the
// current listener. Outside a shadow boundary the target is retargeted to
// the boundary's host; listeners on the host itself still see the internal
// node when the event is composed.
func (e *Event) Target() Node {
	return e.target
}

// CurrentTarget returns the node whose listener is currently running.
func (e *Event) CurrentTarget() Node {
	return e.currentTarget
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// StopPropagation prevents any further nodes from seeing the event.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation additionally prevents remaining listeners on the
// current node from running.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedImmediate = true
}

// pathEntry pairs a node on the propagation path with the target the event
// presents while that node's listeners run.
type pathEntry struct {
	node   Node
	target Node
}

// buildPath computes the propagation path from the dispatch target outward.
// A non-composed event's path ends at the enclosing shadow root; a composed
// event continues through the host, and nodes above the host observe the
// host as the event target.
func buildPath(origin Node, composed bool) []pathEntry {
	var path []pathEntry
	visible := origin
	cur := origin
	for cur != nil {
		path = append(path, pathEntry{node: cur, target: visible})
		next, crossed := cur.pathParent(composed)
		if crossed {
			// The host itself still sees the internal target; everything
			// above it sees the host.
			if host, ok := next.(*Element); ok {
				path = append(path, pathEntry{node: host, target: visible})
				visible = host
				cur, _ = host.pathParent(composed)
				continue
			}
		}
		cur = next
	}
	return path
}

// DispatchEvent dispatches the event on the element, running capture, target
// and bubble phases along the propagation path. It returns false when a
// listener cancelled the event via PreventDefault.
func (e *Element) DispatchEvent(ev *Event) bool {
	return dispatch(e, ev)
}

// DispatchEvent dispatches the event with the shadow root as target.
func (s *ShadowRoot) DispatchEvent(ev *Event) bool {
	return dispatch(s, ev)
}

func dispatch(origin Node, ev *Event) bool {
	if ev == nil || ev.Type == "" {
		return true
	}
	path := buildPath(origin, ev.Composed)

	// Capture phase, outermost first, excluding the target itself.
	for i := len(path) - 1; i > 0; i-- {
		if ev.stopped {
			break
		}
		entry := path[i]
		ev.target = entry.target
		ev.currentTarget = entry.node
		ev.stoppedImmediate = false
		entry.node.targetRef().invoke(ev, true, false)
	}

	// Target phase.
	if !ev.stopped {
		ev.target = path[0].target
		ev.currentTarget = path[0].node
		ev.stoppedImmediate = false
		path[0].node.targetRef().invoke(ev, false, true)
	}

	// Bubble phase.
	if ev.Bubbles {
		for i := 1; i < len(path); i++ {
			if ev.stopped {
				break
			}
			entry := path[i]
			ev.target = entry.target
			ev.currentTarget = entry.node
			ev.stoppedImmediate = false
			entry.node.targetRef().invoke(ev, false, false)
		}
	}

	ev.currentTarget = nil
	return !ev.defaultPrevented
}
