// Package component implements the lifecycle and reactivity controller that
// sits between the public custom-element surface and the external patcher.
//
// A Definition is the class-level declaration of a component: its public
// properties, tracked state, accessors, methods, and lifecycle callbacks.
// An Instance is one upgraded host element governed by the lifecycle state
// machine constructing → constructed → connected ⇄ disconnected.
package component

import (
	"regexp"

	"github.com/helenasilkina/lwc/pkg/errors"
	"github.com/helenasilkina/lwc/pkg/reactive"
)

var validTagName = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)

// Method is a publicly invokable component method.
type Method func(in *Instance, args ...any) any

// Definition declares a component class. Definitions are immutable after
// registration; per-instance accessor registration happens on the Instance.
type Definition struct {
	// Name is the custom element tag name (lower case, at least one dash).
	Name string
	// Props declares the public properties.
	Props []reactive.PropertyDescriptor
	// Tracked names the deep-observed state slots.
	Tracked []string
	// Methods maps publicly invokable method names to their implementations.
	Methods map[string]Method
	// Accessors is this class's own getter/setter table. Nil entries fall
	// through to the ancestor chain.
	Accessors *reactive.Accessors
	// Extends is the parent class, or nil.
	Extends *Definition

	// Constructor runs while the instance is in the constructing state.
	Constructor func(in *Instance)
	// ConnectedCallback runs when the host enters the document, before the
	// first render of that connection.
	ConnectedCallback func(in *Instance)
	// RenderedCallback runs after each completed render pass.
	RenderedCallback func(in *Instance)
	// DisconnectedCallback runs when the host leaves the document.
	DisconnectedCallback func(in *Instance)
	// Render produces the template descriptor handed to the patcher. It must
	// be a pure function of the instance's current props and state.
	Render func(in *Instance) TemplateDescriptor
}

// Validate checks the definition is registrable.
func (d *Definition) Validate() error {
	if d == nil {
		return &errors.DefinitionError{Reason: "definition is nil"}
	}
	if d.Name == "" {
		return &errors.DefinitionError{Reason: "tag name is empty"}
	}
	if !validTagName.MatchString(d.Name) {
		return &errors.DefinitionError{Component: d.Name, Reason: "tag name must be lower case and contain a dash"}
	}
	seen := make(map[string]bool, len(d.Props))
	for _, p := range d.Props {
		if p.Name == "" {
			return &errors.DefinitionError{Component: d.Name, Reason: "property with empty name"}
		}
		if seen[p.Name] {
			return &errors.DefinitionError{Component: d.Name, Reason: "duplicate property " + p.Name}
		}
		seen[p.Name] = true
	}
	for _, t := range d.Tracked {
		if seen[t] {
			return &errors.DefinitionError{Component: d.Name, Reason: "property " + t + " declared both public and tracked"}
		}
	}
	return nil
}

// lineage returns the class chain, most-derived first.
func (d *Definition) lineage() []*Definition {
	var out []*Definition
	for cur := d; cur != nil; cur = cur.Extends {
		out = append(out, cur)
	}
	return out
}

// accessorChain returns the explicit accessor resolution chain,
// most-derived first.
func (d *Definition) accessorChain() reactive.Chain {
	var chain reactive.Chain
	for _, def := range d.lineage() {
		chain = append(chain, def.Accessors)
	}
	return chain
}

// effectiveProps merges declared properties across the chain; the most
// derived declaration for a name wins.
func (d *Definition) effectiveProps() map[string]*reactive.PropertyDescriptor {
	out := make(map[string]*reactive.PropertyDescriptor)
	line := d.lineage()
	for i := len(line) - 1; i >= 0; i-- {
		for j := range line[i].Props {
			p := line[i].Props[j]
			out[p.Name] = &p
		}
	}
	return out
}

// effectiveTracked merges tracked slot names across the chain.
func (d *Definition) effectiveTracked() map[string]bool {
	out := make(map[string]bool)
	for _, def := range d.lineage() {
		for _, name := range def.Tracked {
			out[name] = true
		}
	}
	return out
}

// resolveMethod returns the most-derived implementation for name.
func (d *Definition) resolveMethod(name string) (Method, bool) {
	for _, def := range d.lineage() {
		if m, ok := def.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

func (d *Definition) resolveRender() func(*Instance) TemplateDescriptor {
	for _, def := range d.lineage() {
		if def.Render != nil {
			return def.Render
		}
	}
	return nil
}

func (d *Definition) resolveConnected() func(*Instance) {
	for _, def := range d.lineage() {
		if def.ConnectedCallback != nil {
			return def.ConnectedCallback
		}
	}
	return nil
}

func (d *Definition) resolveRendered() func(*Instance) {
	for _, def := range d.lineage() {
		if def.RenderedCallback != nil {
			return def.RenderedCallback
		}
	}
	return nil
}

func (d *Definition) resolveDisconnected() func(*Instance) {
	for _, def := range d.lineage() {
		if def.DisconnectedCallback != nil {
			return def.DisconnectedCallback
		}
	}
	return nil
}

func (d *Definition) resolveConstructor() func(*Instance) {
	for _, def := range d.lineage() {
		if def.Constructor != nil {
			return def.Constructor
		}
	}
	return nil
}
