// Package errors provides the structured error taxonomy for the lwc core.
package errors

import (
	"fmt"
	"time"
)

// ConstructionError reports an illegal host interaction while a component
// constructor is still running. The host element has no rendering context at
// that point, so attribute mutation, event dispatch, and host-derived reads
// are all rejected.
type ConstructionError struct {
	// Component is the tag name of the component being constructed.
	Component string
	// API is the public surface call that was rejected (e.g. "setAttribute").
	API string
	// Reason explains the violated invariant.
	Reason string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s call during construction of <%s>: %s", e.API, e.Component, e.Reason)
}

// NewAttributeConstructionError builds the ConstructionError for attribute
// mutation inside a constructor. The reason wording is part of the public
// contract and is asserted by consumers.
func NewAttributeConstructionError(component, api string) *ConstructionError {
	return &ConstructionError{
		Component:  component,
		API:        api,
		Reason:     "the result must not have attributes",
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// RenderSideEffectError reports a reactive mutation performed inside render().
// render() must be a pure function of the instance's current props and state.
type RenderSideEffectError struct {
	// Component is the tag name of the rendering component.
	Component string
	// Property is the reactive slot that was mutated.
	Property string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *RenderSideEffectError) Error() string {
	return fmt.Sprintf("render() of <%s> must be a pure function: mutating %q during render is not allowed", e.Component, e.Property)
}

// PropertyAccessError reports a read of a declared public property before the
// owner assigned it a value.
type PropertyAccessError struct {
	// Component is the tag name of the component.
	Component string
	// Property is the declared public property that was read.
	Property string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *PropertyAccessError) Error() string {
	return fmt.Sprintf("<%s>.%s was read before the owner provided a value", e.Component, e.Property)
}

// RenderError represents a failure during a render pass: either a recovered
// panic from the component's render function or an error returned by the
// patcher. It propagates to the flush caller; the instance stays dirty.
type RenderError struct {
	// Component is the tag name of the component that failed to render.
	Component string
	// Recovered is the panic value (nil for patcher errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in <%s> render(): %v", e.Component, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error rendering <%s>: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("unknown error rendering <%s>", e.Component)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// DefinitionError reports an invalid component definition at registration
// time (empty tag name, duplicate registration, malformed property set).
type DefinitionError struct {
	// Component is the tag name being registered, if known.
	Component string
	// Reason explains what is wrong with the definition.
	Reason string
}

func (e *DefinitionError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("invalid definition for <%s>: %s", e.Component, e.Reason)
	}
	return fmt.Sprintf("invalid component definition: %s", e.Reason)
}
