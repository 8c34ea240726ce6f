package dom

import "strings"

// SetAttribute sets a no-namespace attribute. Names are case-insensitive and
// stored lower-cased.
func (e *Element) SetAttribute(name, value string) {
	e.setAttr("", name, value)
}

// SetAttributeNS sets a namespaced attribute.
func (e *Element) SetAttributeNS(ns, name, value string) {
	e.setAttr(ns, name, value)
}

// GetAttribute returns the value of a no-namespace attribute and whether it
// is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	return e.getAttr("", name)
}

// GetAttributeNS returns the value of a namespaced attribute.
func (e *Element) GetAttributeNS(ns, name string) (string, bool) {
	return e.getAttr(ns, name)
}

// HasAttribute reports whether a no-namespace attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.getAttr("", name)
	return ok
}

// RemoveAttribute removes a no-namespace attribute if present.
func (e *Element) RemoveAttribute(name string) {
	e.removeAttr("", name)
}

// RemoveAttributeNS removes a namespaced attribute if present.
func (e *Element) RemoveAttributeNS(ns, name string) {
	e.removeAttr(ns, name)
}

// Attributes returns a copy of the attribute list in insertion order.
func (e *Element) Attributes() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

func (e *Element) setAttr(ns, name, value string) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].NS == ns && e.attrs[i].Name == name {
			old := e.attrs[i].Value
			e.attrs[i].Value = value
			e.attributeChanged(AttributeChange{
				NS: ns, Name: name,
				Old: old, New: value,
				OldPresent: true, NewPresent: true,
			})
			return
		}
	}
	e.attrs = append(e.attrs, Attr{NS: ns, Name: name, Value: value})
	e.attributeChanged(AttributeChange{
		NS: ns, Name: name,
		New: value, NewPresent: true,
	})
}

func (e *Element) getAttr(ns, name string) (string, bool) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].NS == ns && e.attrs[i].Name == name {
			return e.attrs[i].Value, true
		}
	}
	return "", false
}

func (e *Element) removeAttr(ns, name string) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].NS == ns && e.attrs[i].Name == name {
			old := e.attrs[i].Value
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.attributeChanged(AttributeChange{
				NS: ns, Name: name,
				Old: old, OldPresent: true,
			})
			return
		}
	}
}

func (e *Element) attributeChanged(change AttributeChange) {
	if e.OnAttributeChanged != nil {
		e.OnAttributeChanged(change)
	}
}
