package component

import "github.com/helenasilkina/lwc/pkg/dom"

// Template is the read-only handle over the instance's shadow root: the
// encapsulated boundary where the component's own markup lives, queryable
// only through the component's own reference.
type Template struct {
	in *Instance
}

// QuerySelector returns the first matching element inside the shadow tree.
func (t *Template) QuerySelector(selector string) *dom.Element {
	return t.in.shadow.QuerySelector(selector)
}

// QuerySelectorAll returns all matching elements inside the shadow tree.
func (t *Template) QuerySelectorAll(selector string) []*dom.Element {
	return t.in.shadow.QuerySelectorAll(selector)
}

// ActiveElement returns the focused element inside the shadow tree, or nil.
func (t *Template) ActiveElement() *dom.Element {
	return t.in.shadow.ActiveElement()
}

// AddEventListener registers a listener scoped to the internal root. Events
// dispatched on internal nodes and observed here report the internal node as
// their target. The returned ListenerID removes exactly this registration.
func (t *Template) AddEventListener(eventType string, fn dom.Listener, opts dom.ListenerOptions) dom.ListenerID {
	return t.in.addListener(true, eventType, fn, opts)
}

// RemoveEventListener removes a listener previously registered on the
// internal root, by its original function. When several registrations share
// the function's code pointer the most recent one is removed.
func (t *Template) RemoveEventListener(eventType string, fn dom.Listener) bool {
	return t.in.removeListener(true, eventType, fn)
}

// RemoveEventListenerByID removes the single internal-root registration
// identified by id.
func (t *Template) RemoveEventListenerByID(eventType string, id dom.ListenerID) bool {
	return t.in.removeListenerByID(true, eventType, id)
}

// Root exposes the shadow root for the patcher and tests.
func (t *Template) Root() *dom.ShadowRoot {
	return t.in.shadow
}
