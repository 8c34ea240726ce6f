package engine

import (
	"sync"

	"github.com/helenasilkina/lwc/pkg/component"
	"github.com/helenasilkina/lwc/pkg/diag"
)

// StatsSnapshot is a copy of the engine's runtime counters.
type StatsSnapshot struct {
	Definitions      uint64 `json:"definitions"`
	Upgrades         uint64 `json:"upgrades"`
	Connects         uint64 `json:"connects"`
	Disconnects      uint64 `json:"disconnects"`
	RendersScheduled uint64 `json:"rendersScheduled"`
	RendersCompleted uint64 `json:"rendersCompleted"`
	RendersDropped   uint64 `json:"rendersDropped"`
	Flushes          uint64 `json:"flushes"`
	Advisories       uint64 `json:"advisories"`
}

// RuntimeStats counts lifecycle activity across the engine. It implements
// component.Observer and wraps the advisory sink so advisory volume is
// counted without the sink knowing.
type RuntimeStats struct {
	mu   sync.Mutex
	snap StatsSnapshot
}

func (s *RuntimeStats) definitionRegistered() {
	s.mu.Lock()
	s.snap.Definitions++
	s.mu.Unlock()
}

func (s *RuntimeStats) instanceUpgraded() {
	s.mu.Lock()
	s.snap.Upgrades++
	s.mu.Unlock()
}

func (s *RuntimeStats) flushed() {
	s.mu.Lock()
	s.snap.Flushes++
	s.mu.Unlock()
}

// Connected implements component.Observer.
func (s *RuntimeStats) Connected(in *component.Instance) {
	s.mu.Lock()
	s.snap.Connects++
	s.mu.Unlock()
}

// Disconnected implements component.Observer.
func (s *RuntimeStats) Disconnected(in *component.Instance) {
	s.mu.Lock()
	s.snap.Disconnects++
	s.mu.Unlock()
}

// RenderScheduled implements component.Observer.
func (s *RuntimeStats) RenderScheduled(in *component.Instance) {
	s.mu.Lock()
	s.snap.RendersScheduled++
	s.mu.Unlock()
}

// RenderCompleted implements component.Observer.
func (s *RuntimeStats) RenderCompleted(in *component.Instance) {
	s.mu.Lock()
	s.snap.RendersCompleted++
	s.mu.Unlock()
}

// RenderDropped implements component.Observer.
func (s *RuntimeStats) RenderDropped(in *component.Instance) {
	s.mu.Lock()
	s.snap.RendersDropped++
	s.mu.Unlock()
}

func (s *RuntimeStats) snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// wrapSink returns a sink that counts advisories before forwarding them.
// A nil inner sink still counts.
func (s *RuntimeStats) wrapSink(inner diag.Sink) diag.Sink {
	return &countingSink{stats: s, inner: inner}
}

type countingSink struct {
	stats *RuntimeStats
	inner diag.Sink
}

func (c *countingSink) Warn(adv *diag.Advisory) {
	c.stats.mu.Lock()
	c.stats.snap.Advisories++
	c.stats.mu.Unlock()
	if c.inner != nil {
		c.inner.Warn(adv)
	}
}

func (c *countingSink) Error(adv *diag.Advisory) {
	c.stats.mu.Lock()
	c.stats.snap.Advisories++
	c.stats.mu.Unlock()
	if c.inner != nil {
		c.inner.Error(adv)
	}
}
