package component

import (
	"time"

	"github.com/helenasilkina/lwc/pkg/dom"
	"github.com/helenasilkina/lwc/pkg/errors"
)

// TemplateDescriptor is the opaque value produced by a component's render
// function. The core never inspects it; it hands the previous and next
// descriptors to the patcher and trusts the result.
type TemplateDescriptor any

// Patcher applies a template descriptor to the shadow tree. It is an
// external collaborator: the core invokes it once per render pass with the
// previously rendered descriptor and the new one.
type Patcher interface {
	Patch(root *dom.ShadowRoot, prev, next TemplateDescriptor) error
}

// PatcherFunc adapts a function to the Patcher interface.
type PatcherFunc func(root *dom.ShadowRoot, prev, next TemplateDescriptor) error

// Patch implements Patcher.
func (f PatcherFunc) Patch(root *dom.ShadowRoot, prev, next TemplateDescriptor) error {
	return f(root, prev, next)
}

// RenderPass performs one render: it invokes render(), hands the descriptor
// to the patcher, and runs renderedCallback. A pass for a non-connected
// instance is dropped silently. On failure the error propagates to the
// caller and the instance stays dirty, so the next scheduled mutation
// attempts again; nothing retries automatically.
func (in *Instance) RenderPass() error {
	if in.state != StateConnected {
		if in.observer != nil {
			in.observer.RenderDropped(in)
		}
		return nil
	}

	next, err := in.invokeRender()
	if err != nil {
		return err
	}
	if in.patcher != nil {
		if err := in.patcher.Patch(in.shadow, in.rendered, next); err != nil {
			return &errors.RenderError{
				Component: in.def.Name,
				Err:       err,
				Timestamp: time.Now(),
			}
		}
	}

	in.rendered = next
	in.hasRendered = true
	in.store.ClearDirty()
	if in.observer != nil {
		in.observer.RenderCompleted(in)
	}
	if cb := in.def.resolveRendered(); cb != nil {
		cb(in)
	}
	return nil
}

// invokeRender runs the component's render function under the purity guard,
// converting panics into RenderError.
func (in *Instance) invokeRender() (next TemplateDescriptor, err error) {
	render := in.def.resolveRender()
	if render == nil {
		return nil, nil
	}
	in.rendering = true
	defer func() {
		in.rendering = false
		if r := recover(); r != nil {
			err = &errors.RenderError{
				Component:  in.def.Name,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
	}()
	next = render(in)
	return next, nil
}

// LastRendered returns the descriptor produced by the most recent completed
// render pass.
func (in *Instance) LastRendered() TemplateDescriptor {
	return in.rendered
}

// HasRendered reports whether at least one render pass has completed.
func (in *Instance) HasRendered() bool {
	return in.hasRendered
}
