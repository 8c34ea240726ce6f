// Package engine composes the lwc core: the host document, the render
// scheduler, the definition registry, the diagnostics sink and the runtime
// configuration, behind one construction surface.
package engine

import (
	"strings"

	"github.com/helenasilkina/lwc/pkg/component"
	"github.com/helenasilkina/lwc/pkg/diag"
	"github.com/helenasilkina/lwc/pkg/dom"
	"github.com/helenasilkina/lwc/pkg/errors"
	"github.com/helenasilkina/lwc/pkg/scheduler"
)

// Engine owns everything a set of component instances shares.
type Engine struct {
	doc     *dom.Document
	sched   *scheduler.Scheduler
	sink    diag.Sink
	cfg     Config
	patcher component.Patcher
	defs    map[string]*component.Definition
	stats   *RuntimeStats
}

// New creates an engine. patcher applies template descriptors to shadow
// trees; sink receives advisories and may be nil to disable them.
func New(cfg Config, patcher component.Patcher, sink diag.Sink) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		doc:     dom.NewDocument(),
		sched:   scheduler.New(),
		cfg:     cfg,
		patcher: patcher,
		defs:    make(map[string]*component.Definition),
		stats:   &RuntimeStats{},
	}
	e.sink = e.stats.wrapSink(sink)
	return e
}

// Document returns the engine's host document.
func (e *Engine) Document() *dom.Document {
	return e.doc
}

// Scheduler returns the engine's render scheduler.
func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.sched
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Define registers a component definition under its tag name.
func (e *Engine) Define(def *component.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	name := strings.ToLower(def.Name)
	if _, exists := e.defs[name]; exists {
		return &errors.DefinitionError{Component: name, Reason: "tag already defined"}
	}
	e.defs[name] = def
	e.stats.definitionRegistered()
	return nil
}

// Definition returns the registered definition for a tag, or nil.
func (e *Engine) Definition(tag string) *component.Definition {
	return e.defs[strings.ToLower(tag)]
}

// CreateElement creates a detached host element for a registered tag and
// upgrades it: the instance is constructed and left in the constructed
// state, awaiting connection.
func (e *Engine) CreateElement(tag string) (*component.Instance, error) {
	def := e.Definition(tag)
	if def == nil {
		return nil, &errors.DefinitionError{Component: tag, Reason: "tag is not defined"}
	}
	host := dom.NewElement(tag)
	in, err := component.New(def, host, component.Options{
		Scheduler:  e.sched,
		Patcher:    e.patcher,
		Sink:       e.sink,
		DedupEqual: e.cfg.dedupEqual(),
		Observer:   e.stats,
	})
	if err != nil {
		return nil, err
	}
	e.stats.instanceUpgraded()
	return in, nil
}

// Mount appends the instance's host under parent (the document body when
// parent is nil), driving the synchronous connect sequence. The first
// render's failure, if any, is returned.
func (e *Engine) Mount(parent *dom.Element, in *component.Instance) error {
	if parent == nil {
		parent = e.doc.Body()
	}
	parent.AppendChild(in.HostElement())
	return in.TakeConnectError()
}

// Unmount removes the instance's host from the tree, driving the synchronous
// disconnect sequence.
func (e *Engine) Unmount(in *component.Instance) {
	in.HostElement().Remove()
}

// Move removes the instance's host and reinserts it under newParent. The
// disconnect and connect are sequenced, never coalesced: the instance
// observes one extra disconnect, one extra connect, and one extra render.
func (e *Engine) Move(newParent *dom.Element, in *component.Instance) error {
	if newParent == nil {
		newParent = e.doc.Body()
	}
	in.HostElement().Remove()
	newParent.AppendChild(in.HostElement())
	return in.TakeConnectError()
}

// Flush runs the scheduler: the externally observable checkpoint at which
// all batched mutations collapse into at most one render per instance.
func (e *Engine) Flush() error {
	err := e.sched.Flush()
	e.stats.flushed()
	return err
}

// Pending returns the number of instances awaiting the next flush.
func (e *Engine) Pending() int {
	return e.sched.Pending()
}

// Stats returns a copy of the engine's runtime counters.
func (e *Engine) Stats() StatsSnapshot {
	return e.stats.snapshot()
}
