// Package reactive implements the per-instance property store: declared
// public properties, tracked deep-observed state, dirty marking, and
// explicit accessor-chain resolution.
package reactive

import "github.com/helenasilkina/lwc/pkg/reflection"

// PropertyDescriptor declares one public property at the class level.
type PropertyDescriptor struct {
	// Name is the camelCase property name.
	Name string
	// Default is the initial value. Only meaningful when HasDefault is true;
	// a property without a default reads as unassigned until the owner
	// provides a value.
	Default any
	// HasDefault marks Default as present (nil is a valid default).
	HasDefault bool
	// Reflected synchronizes the property with its host attribute.
	Reflected bool
	// Type selects the attribute serialization for reflected properties.
	Type reflection.AttrType
}

// Getter reads a property from the component instance. The host argument is
// the owning instance, passed opaquely so user accessors can reach their own
// state.
type Getter func(host any) any

// Setter writes a property on the component instance.
type Setter func(host any, value any)

// Accessors is one class's declared getter/setter table. A class that does
// not redeclare an accessor inherits the nearest ancestor's definition.
type Accessors struct {
	Getters map[string]Getter
	Setters map[string]Setter
}

// Chain is an ordered list of class accessor tables, most-derived first.
// The target model has no implicit prototype chains, so inheritance is an
// explicit walk: the first definition found wins, and getter and setter
// resolve independently.
type Chain []*Accessors

// ResolveGetter returns the most-derived getter declared for name.
func (c Chain) ResolveGetter(name string) (Getter, bool) {
	for _, acc := range c {
		if acc == nil {
			continue
		}
		if g, ok := acc.Getters[name]; ok {
			return g, true
		}
	}
	return nil, false
}

// ResolveSetter returns the most-derived setter declared for name.
func (c Chain) ResolveSetter(name string) (Setter, bool) {
	for _, acc := range c {
		if acc == nil {
			continue
		}
		if s, ok := acc.Setters[name]; ok {
			return s, true
		}
	}
	return nil, false
}

// HasAccessorPair reports whether both a getter and a setter resolve for
// name. Reflection is suppressed only when the full pair is user-defined.
func (c Chain) HasAccessorPair(name string) bool {
	_, g := c.ResolveGetter(name)
	_, s := c.ResolveSetter(name)
	return g && s
}
