package dom

// ShadowRoot is the encapsulated rendering boundary attached to a host
// element. The component's own markup lives here and is queryable only
// through the component's template handle.
type ShadowRoot struct {
	target eventTarget

	host     *Element
	children []*Element
	active   *Element
}

// AttachShadow creates (or returns) the element's shadow root.
func (e *Element) AttachShadow() *ShadowRoot {
	if e.shadow == nil {
		e.shadow = &ShadowRoot{host: e}
	}
	return e.shadow
}

// Shadow returns the element's shadow root, or nil when none is attached.
func (e *Element) Shadow() *ShadowRoot {
	return e.shadow
}

// Host returns the element owning this shadow root.
func (s *ShadowRoot) Host() *Element {
	return s.host
}

// Children returns a copy of the shadow root's child list.
func (s *ShadowRoot) Children() []*Element {
	out := make([]*Element, len(s.children))
	copy(out, s.children)
	return out
}

// AppendChild attaches child as the last child of the shadow root.
func (s *ShadowRoot) AppendChild(child *Element) {
	if child == nil || child == s.host {
		return
	}
	child.detach()
	child.container = s
	s.children = append(s.children, child)
	if s.host.IsConnected() {
		notifyConnected(child)
	}
}

// RemoveChild detaches child from the shadow root.
func (s *ShadowRoot) RemoveChild(child *Element) {
	if child == nil || child.container != s {
		return
	}
	child.detach()
}

// Clear detaches all shadow children without connectivity notification
// churn beyond the per-child hooks.
func (s *ShadowRoot) Clear() {
	for len(s.children) > 0 {
		s.children[0].detach()
	}
	s.active = nil
}

// ActiveElement returns the focused element inside this shadow root, or nil.
func (s *ShadowRoot) ActiveElement() *Element {
	return s.active
}

// Focus marks the element as the active element of its containing shadow
// root, if any.
func (e *Element) Focus() {
	cur := e
	for cur != nil {
		if cur.container != nil {
			cur.container.active = e
			return
		}
		cur = cur.parent
	}
}
