package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAttributeConstructionError_Message(t *testing.T) {
	err := NewAttributeConstructionError("x-widget", "setAttribute")
	msg := err.Error()
	if !strings.Contains(msg, "must not have attributes") {
		t.Errorf("expected attribute invariant wording, got %q", msg)
	}
	if !strings.Contains(msg, "setAttribute") || !strings.Contains(msg, "x-widget") {
		t.Errorf("expected API and component in %q", msg)
	}
	if err.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if err.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
}

func TestRenderSideEffectError_Message(t *testing.T) {
	err := &RenderSideEffectError{Component: "x-widget", Property: "tabIndex"}
	msg := err.Error()
	if !strings.Contains(msg, "pure function") || !strings.Contains(msg, "tabIndex") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestPropertyAccessError_Message(t *testing.T) {
	err := &PropertyAccessError{Component: "x-widget", Property: "label"}
	if !strings.Contains(err.Error(), "before the owner provided a value") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestRenderError_Variants(t *testing.T) {
	panicked := &RenderError{Component: "x-widget", Recovered: "boom"}
	if !strings.Contains(panicked.Error(), "panic in <x-widget>") {
		t.Errorf("unexpected message %q", panicked.Error())
	}

	wrapped := fmt.Errorf("patch failed")
	patch := &RenderError{Component: "x-widget", Err: wrapped}
	if !goerrors.Is(patch, wrapped) {
		t.Error("expected Unwrap to expose the patcher error")
	}
}

func TestDefinitionError_Message(t *testing.T) {
	err := &DefinitionError{Component: "x-widget", Reason: "duplicate property value"}
	if !strings.Contains(err.Error(), "x-widget") || !strings.Contains(err.Error(), "duplicate property") {
		t.Errorf("unexpected message %q", err.Error())
	}

	bare := &DefinitionError{Reason: "definition is nil"}
	if !strings.Contains(bare.Error(), "definition is nil") {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "errors_test.go") && !strings.Contains(stack, "testing.tRunner") {
		t.Errorf("stack looks wrong: %q", stack)
	}
}
