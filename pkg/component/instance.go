package component

import (
	"github.com/google/uuid"

	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/dom"
	"github.com/helenasilkina/lwc/pkg/errors"
	"github.com/helenasilkina/lwc/pkg/reactive"
	"github.com/helenasilkina/lwc/pkg/reflection"
	"github.com/helenasilkina/lwc/pkg/scheduler"
)

// State is the lifecycle state of a component instance.
type State int

const (
	// StateConstructing covers the constructor body. Attribute mutation,
	// event dispatch and host-derived reads are illegal in this state.
	StateConstructing State = iota
	// StateConstructed covers the window between construction and the first
	// connection.
	StateConstructed
	// StateConnected means the host is in the document and renders flow.
	StateConnected
	// StateDisconnected means the host left the document. Reactive state is
	// retained; a reconnection resumes with prior values.
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "constructing"
	case StateConstructed:
		return "constructed"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Observer receives lifecycle notifications, used by the engine for runtime
// stats. All methods are optional call sites; a nil observer is fine.
type Observer interface {
	Connected(in *Instance)
	Disconnected(in *Instance)
	RenderScheduled(in *Instance)
	RenderCompleted(in *Instance)
	RenderDropped(in *Instance)
}

// Options carries the collaborators injected into a new instance.
type Options struct {
	// Scheduler batches this instance's renders. Required for reactivity.
	Scheduler *scheduler.Scheduler
	// Patcher applies template descriptors to the shadow tree.
	Patcher Patcher
	// Sink receives advisories. Nil disables advisories.
	Sink diag.Sink
	// DedupEqual enables the value-equality render skip policy.
	DedupEqual bool
	// Observer receives lifecycle stats notifications.
	Observer Observer
}

// Instance is one upgraded host element and its reactive state.
type Instance struct {
	id       string
	def      *Definition
	host     *dom.Element
	shadow   *dom.ShadowRoot
	template *Template

	state   State
	store   *reactive.Store
	chain   reactive.Chain
	dynamic *reactive.Accessors
	props   map[string]*reactive.PropertyDescriptor
	tracked map[string]bool

	sink     diag.Sink
	sched    *scheduler.Scheduler
	patcher  Patcher
	observer Observer

	rendered    TemplateDescriptor
	hasRendered bool
	rendering   bool
	reflecting  bool

	listeners  []*listenerRecord
	connectErr error
}

// New upgrades the host element into a component instance: it attaches the
// shadow root, seeds declared defaults and attribute-derived values, wires
// the host hooks, and runs the constructor under the constructing guards.
//
// The constructor's own violations surface as errors on the guarded calls it
// makes; New itself fails only on an invalid definition.
func New(def *Definition, host *dom.Element, opts Options) (*Instance, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if host == nil {
		return nil, &errors.DefinitionError{Component: def.Name, Reason: "host element is nil"}
	}

	in := &Instance{
		id:       uuid.NewString(),
		def:      def,
		host:     host,
		shadow:   host.AttachShadow(),
		state:    StateConstructing,
		chain:    def.accessorChain(),
		dynamic:  &reactive.Accessors{Getters: map[string]reactive.Getter{}, Setters: map[string]reactive.Setter{}},
		props:    def.effectiveProps(),
		tracked:  def.effectiveTracked(),
		sink:     opts.Sink,
		sched:    opts.Scheduler,
		patcher:  opts.Patcher,
		observer: opts.Observer,
	}
	in.template = &Template{in: in}
	in.store = reactive.NewStore(opts.DedupEqual, in.propMutated)
	in.store.SetGuard(in.mutationGuard)

	for _, p := range in.props {
		if p.HasDefault {
			in.store.Seed(p.Name, p.Default)
		}
	}
	// Attributes present on the host before upgrade initialize their
	// reflected properties.
	for _, p := range in.props {
		if !p.Reflected || in.accessors().HasAccessorPair(p.Name) {
			continue
		}
		attr := reflection.AttributeName(p.Name)
		if value, present := host.GetAttribute(attr); present {
			in.store.Seed(p.Name, reflection.Deserialize(p.Type, value, true))
		}
	}

	host.OnAttributeChanged = in.hostAttributeChanged
	host.OnConnected = func() {
		in.connectErr = in.Connect()
	}
	host.OnDisconnected = func() {
		in.Disconnect()
	}

	if ctor := def.resolveConstructor(); ctor != nil {
		ctor(in)
	}
	in.state = StateConstructed
	return in, nil
}

// ID returns the stable instance identity used in diagnostics and snapshots.
func (in *Instance) ID() string {
	return in.id
}

// Definition returns the class the instance was upgraded with.
func (in *Instance) Definition() *Definition {
	return in.def
}

// State returns the current lifecycle state.
func (in *Instance) State() State {
	return in.state
}

// HostElement returns the host. The host's generic attribute surface bypasses
// the instance guards; writes through it that collide with declared reflected
// properties are flagged via encapsulation advisories.
func (in *Instance) HostElement() *dom.Element {
	return in.host
}

// Template returns the read-only handle over the shadow root.
func (in *Instance) Template() *Template {
	return in.template
}

// Dirty reports whether reactive mutations are pending a render.
func (in *Instance) Dirty() bool {
	return in.store.Dirty()
}

// StateSnapshot returns a copy of the instance's assigned reactive values.
// Tracked slots are included only when includeTracked is set; their values
// are deep-copied so the snapshot cannot observe later mutation.
func (in *Instance) StateSnapshot(includeTracked bool) map[string]any {
	snap := in.store.Snapshot()
	if !includeTracked {
		for name := range in.tracked {
			delete(snap, name)
		}
	}
	return snap
}

// TagName returns the host tag name. Illegal during construction: the
// element is not attached to a rendering context yet.
func (in *Instance) TagName() (string, error) {
	if in.state == StateConstructing {
		return "", in.constructionError("tagName", "the element is not yet attached to a rendering context")
	}
	return in.host.TagName(), nil
}

// TakeConnectError returns and clears the error produced by the most recent
// host-driven connection, if any. Mount surfaces in the engine consume this.
func (in *Instance) TakeConnectError() error {
	err := in.connectErr
	in.connectErr = nil
	return err
}

// Connect transitions the instance to connected. Synchronously, in order:
// connectedCallback, one render pass, renderedCallback. This ordering holds
// for every connection, including reconnections after a move.
func (in *Instance) Connect() error {
	if in.state == StateConnected || in.state == StateConstructing {
		return nil
	}
	in.state = StateConnected
	if in.observer != nil {
		in.observer.Connected(in)
	}
	if cb := in.def.resolveConnected(); cb != nil {
		cb(in)
	}
	return in.RenderPass()
}

// Disconnect transitions the instance to disconnected and runs
// disconnectedCallback. Reactive state is retained: a reconnection resumes
// with prior property values.
func (in *Instance) Disconnect() {
	if in.state != StateConnected {
		return
	}
	in.state = StateDisconnected
	if in.observer != nil {
		in.observer.Disconnected(in)
	}
	if cb := in.def.resolveDisconnected(); cb != nil {
		cb(in)
	}
}

// accessors returns the live resolution chain: instance-registered accessors
// first, then the class chain most-derived first. Resolution is consulted at
// every reflective get/set call, so accessors registered mid-lifetime take
// effect immediately.
func (in *Instance) accessors() reactive.Chain {
	return append(reactive.Chain{in.dynamic}, in.chain...)
}

// DefineAccessor registers a custom accessor pair for a property on this
// instance. Either function may be nil to leave that side resolving through
// the class chain.
func (in *Instance) DefineAccessor(name string, getter reactive.Getter, setter reactive.Setter) {
	if getter != nil {
		in.dynamic.Getters[name] = getter
	}
	if setter != nil {
		in.dynamic.Setters[name] = setter
	}
}

// Invoke calls a publicly declared component method.
func (in *Instance) Invoke(name string, args ...any) (any, error) {
	m, ok := in.def.resolveMethod(name)
	if !ok {
		return nil, &errors.DefinitionError{Component: in.def.Name, Reason: "no public method " + name}
	}
	return m(in, args...), nil
}

func (in *Instance) constructionError(api, reason string) *errors.ConstructionError {
	return &errors.ConstructionError{
		Component:  in.def.Name,
		API:        api,
		Reason:     reason,
		StackTrace: errors.CaptureStack(),
	}
}

// propMutated is the store's mutation hook: it schedules a render once the
// instance is connected and has rendered at least once. Mutations while
// disconnected only leave the store dirty; reconnection renders anyway.
func (in *Instance) propMutated(name string) {
	if in.state != StateConnected || !in.hasRendered {
		return
	}
	if in.sched != nil {
		in.sched.Schedule(in)
		if in.observer != nil {
			in.observer.RenderScheduled(in)
		}
	}
}
