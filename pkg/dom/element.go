// Package dom provides the host document substrate the lwc core wraps:
// an element tree with attributes, shadow roots, connectivity notification,
// and DOM-style event dispatch across the shadow boundary.
//
// The package models the native primitives only. Lifecycle policy (what is
// legal when, reflection, advisories) lives in pkg/component; dom fires the
// hooks and keeps the tree consistent.
package dom

import "strings"

// Attr is a single attribute on an element.
type Attr struct {
	NS    string
	Name  string
	Value string
}

// AttributeChange describes one attribute mutation, delivered to the
// element's OnAttributeChanged hook after the mutation is applied.
type AttributeChange struct {
	NS         string
	Name       string
	Old        string
	New        string
	OldPresent bool
	NewPresent bool
}

// Element is a node in the host tree. An element belongs to at most one
// parent: either another element's child list or a shadow root's child list.
type Element struct {
	target eventTarget

	tag       string
	attrs     []Attr
	parent    *Element
	container *ShadowRoot // set when this element is a direct child of a shadow root
	children  []*Element
	shadow    *ShadowRoot
	docRoot   bool

	// OnAttributeChanged fires after every attribute mutation on this
	// element, including mutations through the TokenList.
	OnAttributeChanged func(AttributeChange)
	// OnConnected fires when the element enters the document, parent first.
	OnConnected func()
	// OnDisconnected fires when the element leaves the document.
	OnDisconnected func()
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag)}
}

// TagName returns the element's tag name in lower case.
func (e *Element) TagName() string {
	return e.tag
}

// IsConnected reports whether the element is attached to a document,
// crossing shadow boundaries through their hosts.
func (e *Element) IsConnected() bool {
	cur := e
	for {
		if cur.docRoot {
			return true
		}
		switch {
		case cur.parent != nil:
			cur = cur.parent
		case cur.container != nil:
			cur = cur.container.host
		default:
			return false
		}
	}
}

// ParentElement returns the parent element, or nil for detached elements and
// shadow-root children.
func (e *Element) ParentElement() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child as the last child of e. A child that is already
// attached elsewhere is removed first, firing its disconnection hooks; the
// removal and insertion are never coalesced.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	child.detach()
	child.parent = e
	e.children = append(e.children, child)
	if e.IsConnected() {
		notifyConnected(child)
	}
}

// RemoveChild detaches child from e, firing disconnection hooks if the
// subtree was connected. It is a no-op when child is not a child of e.
func (e *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != e {
		return
	}
	child.detach()
}

// Remove detaches the element from its parent or containing shadow root.
func (e *Element) Remove() {
	e.detach()
}

func (e *Element) detach() {
	wasConnected := e.IsConnected()
	switch {
	case e.parent != nil:
		p := e.parent
		for i, c := range p.children {
			if c == e {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		e.parent = nil
	case e.container != nil:
		sr := e.container
		for i, c := range sr.children {
			if c == e {
				sr.children = append(sr.children[:i], sr.children[i+1:]...)
				break
			}
		}
		e.container = nil
	default:
		return
	}
	if wasConnected {
		notifyDisconnected(e)
	}
}

// notifyConnected walks the subtree parent first, including shadow subtrees,
// invoking OnConnected hooks.
func notifyConnected(e *Element) {
	if e.OnConnected != nil {
		e.OnConnected()
	}
	if e.shadow != nil {
		for _, c := range e.shadow.children {
			notifyConnected(c)
		}
	}
	for _, c := range e.children {
		notifyConnected(c)
	}
}

// notifyDisconnected walks the subtree parent first, including shadow
// subtrees, invoking OnDisconnected hooks.
func notifyDisconnected(e *Element) {
	if e.OnDisconnected != nil {
		e.OnDisconnected()
	}
	if e.shadow != nil {
		for _, c := range e.shadow.children {
			notifyDisconnected(c)
		}
	}
	for _, c := range e.children {
		notifyDisconnected(c)
	}
}
