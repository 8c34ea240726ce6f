package component

import (
	"fmt"

	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/dom"
	"github.com/helenasilkina/lwc/pkg/errors"
	"github.com/helenasilkina/lwc/pkg/reflection"
)

// SetAttribute sets a host attribute through the guarded component surface.
// Illegal during construction. Undeclared attributes pass through untouched
// and are not reactive triggers.
func (in *Instance) SetAttribute(name, value string) error {
	if err := in.attributeMutationGuard("setAttribute", name); err != nil {
		return err
	}
	in.host.SetAttribute(name, value)
	return nil
}

// SetAttributeNS sets a namespaced host attribute.
func (in *Instance) SetAttributeNS(ns, name, value string) error {
	if err := in.attributeMutationGuard("setAttributeNS", name); err != nil {
		return err
	}
	in.host.SetAttributeNS(ns, name, value)
	return nil
}

// RemoveAttribute removes a host attribute.
func (in *Instance) RemoveAttribute(name string) error {
	if err := in.attributeMutationGuard("removeAttribute", name); err != nil {
		return err
	}
	in.host.RemoveAttribute(name)
	return nil
}

// RemoveAttributeNS removes a namespaced host attribute.
func (in *Instance) RemoveAttributeNS(ns, name string) error {
	if err := in.attributeMutationGuard("removeAttributeNS", name); err != nil {
		return err
	}
	in.host.RemoveAttributeNS(ns, name)
	return nil
}

// GetAttribute reads a host attribute. Reads are legal in every state.
func (in *Instance) GetAttribute(name string) (string, bool) {
	return in.host.GetAttribute(name)
}

// GetAttributeNS reads a namespaced host attribute.
func (in *Instance) GetAttributeNS(ns, name string) (string, bool) {
	return in.host.GetAttributeNS(ns, name)
}

func (in *Instance) attributeMutationGuard(api, name string) error {
	if in.state == StateConstructing {
		return errors.NewAttributeConstructionError(in.def.Name, api)
	}
	if in.rendering {
		prop := reflection.PropertyName(name)
		if desc, ok := in.props[prop]; ok && desc.Reflected {
			return in.renderSideEffect(prop)
		}
	}
	return nil
}

// ClassList returns the guarded class token list for the host element.
func (in *Instance) ClassList() *ClassList {
	return &ClassList{in: in}
}

// ClassList is the guarded view over the host's class attribute. Mutation is
// illegal during construction; reads are always legal.
type ClassList struct {
	in *Instance
}

// Add appends tokens to the host's class attribute.
func (c *ClassList) Add(tokens ...string) error {
	if c.in.state == StateConstructing {
		return errors.NewAttributeConstructionError(c.in.def.Name, "classList.add")
	}
	c.in.host.ClassList().Add(tokens...)
	return nil
}

// Remove deletes tokens from the host's class attribute.
func (c *ClassList) Remove(tokens ...string) error {
	if c.in.state == StateConstructing {
		return errors.NewAttributeConstructionError(c.in.def.Name, "classList.remove")
	}
	c.in.host.ClassList().Remove(tokens...)
	return nil
}

// Contains reports whether a token is present.
func (c *ClassList) Contains(token string) bool {
	return c.in.host.ClassList().Contains(token)
}

// String returns the serialized class attribute.
func (c *ClassList) String() string {
	return c.in.host.ClassList().String()
}

// hostAttributeChanged observes every attribute mutation on the host. A
// mutation that collides with a declared reflected property and did not come
// from the instance's own reflection is a detectable misuse: it can
// desynchronize the reflected value from internal state, so it emits an
// encapsulation advisory naming the instance and property.
func (in *Instance) hostAttributeChanged(change dom.AttributeChange) {
	if in.reflecting || change.NS != "" {
		return
	}
	prop := reflection.PropertyName(change.Name)
	desc, ok := in.props[prop]
	if !ok || !desc.Reflected || in.accessors().HasAccessorPair(prop) {
		return
	}
	diag.Warnf(in.sink, diag.Advisory{
		Kind:      diag.KindEncapsulation,
		Component: in.def.Name,
		Instance:  in.id,
		Property:  prop,
		Message:   fmt.Sprintf("attribute %q was mutated through the generic attribute API; use the %s property instead, direct mutation can desynchronize the reflected value", change.Name, prop),
	})
}
