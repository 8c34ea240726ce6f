// Package diag defines the advisory diagnostics sink used by the lwc core.
//
// Advisories are non-fatal observations: they aid debugging but never alter
// control flow. The core holds no ambient logging state; a Sink is injected
// at engine construction and threaded down to every component instance.
package diag

import (
	"time"
)

// AdvisoryKind identifies the category of an advisory.
type AdvisoryKind int

const (
	// KindUnknown indicates an advisory of unknown category.
	KindUnknown AdvisoryKind = iota
	// KindEncapsulation indicates external attribute mutation bypassing a
	// declared property accessor.
	KindEncapsulation
	// KindUnreachableEvent indicates an event dispatched from a disconnected
	// element, which no ancestor listener can observe.
	KindUnreachableEvent
	// KindEventName indicates an event type name outside the recommended
	// lowercase alphanumeric pattern.
	KindEventName
	// KindTrackedValue indicates a non-plain value assigned to a tracked slot.
	KindTrackedValue
)

func (k AdvisoryKind) String() string {
	switch k {
	case KindEncapsulation:
		return "encapsulation"
	case KindUnreachableEvent:
		return "unreachable-event"
	case KindEventName:
		return "event-name"
	case KindTrackedValue:
		return "tracked-value"
	default:
		return "unknown"
	}
}

// Advisory is a single non-fatal diagnostic produced by the core.
type Advisory struct {
	// Kind categorizes the advisory.
	Kind AdvisoryKind
	// Component is the tag name of the component that produced the advisory.
	Component string
	// Instance is the stable identity of the offending instance, if known.
	Instance string
	// Property is the involved property name, if applicable.
	Property string
	// EventType is the involved event type, if applicable.
	EventType string
	// Message is the human-readable advisory text.
	Message string
	// Timestamp is when the advisory was produced.
	Timestamp time.Time
}

// Sink receives advisories from the core.
//
// Implementations must not panic; advisories are strictly observability and
// a throwing sink would turn them into control flow.
type Sink interface {
	// Warn receives a warning-level advisory.
	Warn(adv *Advisory)
	// Error receives an error-level advisory.
	Error(adv *Advisory)
}

// Warnf builds an Advisory and sends it to the sink at warning level.
// A nil sink is a no-op, so callers never need to guard.
func Warnf(sink Sink, adv Advisory) {
	if sink == nil {
		return
	}
	if adv.Timestamp.IsZero() {
		adv.Timestamp = time.Now()
	}
	sink.Warn(&adv)
}

// Errorf builds an Advisory and sends it to the sink at error level.
// A nil sink is a no-op.
func Errorf(sink Sink, adv Advisory) {
	if sink == nil {
		return
	}
	if adv.Timestamp.IsZero() {
		adv.Timestamp = time.Now()
	}
	sink.Error(&adv)
}
