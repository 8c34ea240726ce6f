package component

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/dom"
)

// validEventType is the recommended event naming pattern: lowercase, starts
// with a letter, alphanumeric only.
var validEventType = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// listenerRecord ties a wrapped listener to the original so removal stays
// symmetric. Go functions are not comparable, so records key the original by
// its code pointer. Distinct closures created from the same function literal
// share a code pointer and are indistinguishable here; callers that register
// such closures remove them precisely via the returned ListenerID.
type listenerRecord struct {
	onShadow    bool
	eventType   string
	id          dom.ListenerID
	originalPtr uintptr
	opts        dom.ListenerOptions
}

// DispatchEvent dispatches an event from the host element through the native
// dispatch mechanism.
//
// Dispatch during construction is fatal: the element has no rendering
// context. Dispatch while disconnected succeeds but is unreachable by any
// ancestor listener, which produces an advisory: events propagate outward
// only between connectedCallback and disconnectedCallback. Event type names
// outside the lowercase alphanumeric pattern also produce an advisory, and
// the dispatch still proceeds.
func (in *Instance) DispatchEvent(ev *dom.Event) (bool, error) {
	if in.state == StateConstructing {
		return false, in.constructionError("dispatchEvent", "the element is not yet attached to a rendering context")
	}
	if ev != nil && !validEventType.MatchString(ev.Type) {
		diag.Warnf(in.sink, diag.Advisory{
			Kind:      diag.KindEventName,
			Component: in.def.Name,
			Instance:  in.id,
			EventType: ev.Type,
			Message:   fmt.Sprintf("event type %q does not follow the lowercase alphanumeric naming convention", ev.Type),
		})
	}
	if in.state == StateDisconnected {
		eventType := ""
		if ev != nil {
			eventType = ev.Type
		}
		diag.Warnf(in.sink, diag.Advisory{
			Kind:      diag.KindUnreachableEvent,
			Component: in.def.Name,
			Instance:  in.id,
			EventType: eventType,
			Message:   fmt.Sprintf("Unreachable event %q dispatched from a disconnected element: events can propagate to ancestor listeners only between connectedCallback and disconnectedCallback", eventType),
		})
	}
	return in.host.DispatchEvent(ev), nil
}

// AddEventListener registers a listener on the host element. The boundary
// owns the wrapping: RemoveEventListener with the same original listener
// removes the wrapped one. The returned ListenerID removes exactly this
// registration, which matters when several closures share a code pointer.
func (in *Instance) AddEventListener(eventType string, fn dom.Listener, opts dom.ListenerOptions) dom.ListenerID {
	return in.addListener(false, eventType, fn, opts)
}

// RemoveEventListener removes a host listener previously registered through
// the instance, by its original function. When several registrations share
// the function's code pointer the most recent one is removed.
func (in *Instance) RemoveEventListener(eventType string, fn dom.Listener) bool {
	return in.removeListener(false, eventType, fn)
}

// RemoveEventListenerByID removes the single host registration identified by
// id, regardless of code-pointer collisions.
func (in *Instance) RemoveEventListenerByID(eventType string, id dom.ListenerID) bool {
	return in.removeListenerByID(false, eventType, id)
}

func (in *Instance) addListener(onShadow bool, eventType string, fn dom.Listener, opts dom.ListenerOptions) dom.ListenerID {
	if fn == nil {
		return 0
	}
	wrapped := func(ev *dom.Event) {
		fn(ev)
	}
	var id dom.ListenerID
	if onShadow {
		id = in.shadow.AddEventListener(eventType, wrapped, opts)
	} else {
		id = in.host.AddEventListener(eventType, wrapped, opts)
	}
	in.listeners = append(in.listeners, &listenerRecord{
		onShadow:    onShadow,
		eventType:   eventType,
		id:          id,
		originalPtr: reflect.ValueOf(fn).Pointer(),
		opts:        opts,
	})
	return id
}

func (in *Instance) removeListener(onShadow bool, eventType string, fn dom.Listener) bool {
	if fn == nil {
		return false
	}
	ptr := reflect.ValueOf(fn).Pointer()
	// Newest first, so an add/remove pair with ambiguous pointers undoes the
	// latest registration.
	for i := len(in.listeners) - 1; i >= 0; i-- {
		rec := in.listeners[i]
		if rec.onShadow != onShadow || rec.eventType != eventType || rec.originalPtr != ptr {
			continue
		}
		in.listeners = append(in.listeners[:i], in.listeners[i+1:]...)
		return in.removeFromTarget(onShadow, eventType, rec.id)
	}
	return false
}

func (in *Instance) removeListenerByID(onShadow bool, eventType string, id dom.ListenerID) bool {
	for i, rec := range in.listeners {
		if rec.onShadow != onShadow || rec.eventType != eventType || rec.id != id {
			continue
		}
		in.listeners = append(in.listeners[:i], in.listeners[i+1:]...)
		return in.removeFromTarget(onShadow, eventType, id)
	}
	return false
}

func (in *Instance) removeFromTarget(onShadow bool, eventType string, id dom.ListenerID) bool {
	if onShadow {
		return in.shadow.RemoveEventListener(eventType, id)
	}
	return in.host.RemoveEventListener(eventType, id)
}
