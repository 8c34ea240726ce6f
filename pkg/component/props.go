package component

import (
	"fmt"
	"time"

	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/errors"
	"github.com/helenasilkina/lwc/pkg/reactive"
	"github.com/helenasilkina/lwc/pkg/reflection"
)

// Prop reads a declared public or tracked property. Resolution is a live
// capability check on every call: instance-registered accessors first, then
// the class chain, then the default reflected or stored behavior.
func (in *Instance) Prop(name string) (any, error) {
	if getter, ok := in.accessors().ResolveGetter(name); ok {
		return getter(in), nil
	}

	if desc, declared := in.props[name]; declared {
		if in.state == StateConstructing {
			if _, assigned := in.store.Get(name); !assigned {
				return nil, &errors.PropertyAccessError{
					Component: in.def.Name,
					Property:  name,
					Timestamp: time.Now(),
				}
			}
		}
		if desc.Reflected && !in.accessors().HasAccessorPair(name) {
			attr := reflection.AttributeName(name)
			value, present := in.host.GetAttribute(attr)
			if present || desc.Type == reflection.TypeBoolean {
				return reflection.Deserialize(desc.Type, value, present), nil
			}
			v, _ := in.store.Get(name)
			return v, nil
		}
		v, _ := in.store.Get(name)
		return v, nil
	}

	if in.tracked[name] {
		if t := in.store.Tracked(name); t != nil {
			return t.Value(), nil
		}
		return nil, nil
	}

	return nil, &errors.DefinitionError{Component: in.def.Name, Reason: "no declared property " + name}
}

// SetProp writes a declared public or tracked property.
//
// A user-defined setter takes over entirely: no implicit reactivity, no
// reflection, no automatic re-render. Otherwise the write replaces the
// stored value, marks the instance dirty, and schedules a render when the
// instance is connected and has rendered at least once.
func (in *Instance) SetProp(name string, value any) error {
	if setter, ok := in.accessors().ResolveSetter(name); ok {
		setter(in, value)
		return nil
	}

	if in.tracked[name] {
		if in.rendering {
			return in.renderSideEffect(name)
		}
		_, plain := in.store.AssignTracked(name, value)
		if !plain && value != nil {
			diag.Warnf(in.sink, diag.Advisory{
				Kind:      diag.KindTrackedValue,
				Component: in.def.Name,
				Instance:  in.id,
				Property:  name,
				Message:   fmt.Sprintf("value of type %T assigned to tracked property %q is not a plain object and cannot be deep-observed", value, name),
			})
		}
		return nil
	}

	desc, declared := in.props[name]
	if !declared {
		return &errors.DefinitionError{Component: in.def.Name, Reason: "no declared property " + name}
	}
	if in.rendering {
		return in.renderSideEffect(name)
	}
	if desc.Reflected && in.state == StateConstructing {
		return errors.NewAttributeConstructionError(in.def.Name, name)
	}

	changed := in.store.Assign(name, value)
	if changed && desc.Reflected {
		in.reflectToAttribute(desc, value)
	}
	return nil
}

// TrackedSlot returns the change-observing wrapper for a tracked property,
// or nil when the slot has not been assigned yet. Mutations through the
// wrapper mark the instance dirty and schedule a render; while a render pass
// is running they fail with a RenderSideEffectError and are not applied.
func (in *Instance) TrackedSlot(name string) *reactive.Tracked {
	if !in.tracked[name] {
		return nil
	}
	return in.store.Tracked(name)
}

func (in *Instance) reflectToAttribute(desc *reactive.PropertyDescriptor, value any) {
	attr := reflection.AttributeName(desc.Name)
	serialized, present := reflection.Serialize(desc.Type, value)
	in.reflecting = true
	if present {
		in.host.SetAttribute(attr, serialized)
	} else {
		in.host.RemoveAttribute(attr)
	}
	in.reflecting = false
}

// mutationGuard vetoes reactive writes while render() is running. Tracked
// wrapper mutations consult it, so the purity guard covers slot.Set and the
// nested Sub wrappers the same way it covers SetProp.
func (in *Instance) mutationGuard(name string) error {
	if in.rendering {
		return in.renderSideEffect(name)
	}
	return nil
}

func (in *Instance) renderSideEffect(name string) *errors.RenderSideEffectError {
	return &errors.RenderSideEffectError{
		Component: in.def.Name,
		Property:  name,
		Timestamp: time.Now(),
	}
}
