package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New(PhaseResolve, KindCapabilityMissing).
		GoType("*myapp.Context").
		Detail("no Resources method").
		Build()

	msg := err.Error()
	if !strings.HasPrefix(msg, "[resolve] capability_missing") {
		t.Errorf("unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "*myapp.Context") {
		t.Errorf("missing Go type: %s", msg)
	}
	if !strings.Contains(msg, "no Resources method") {
		t.Errorf("missing detail: %s", msg)
	}
}

func TestErrorFormatWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseHost, KindAllocation, cause, "alloc")

	msg := err.Error()
	if !strings.Contains(msg, "caused by: boom") {
		t.Errorf("missing cause: %s", msg)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain should reach cause")
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := InvalidHandle(PhaseLookup, 7)

	if !stderrors.Is(err, &Error{Phase: PhaseLookup, Kind: KindInvalidHandle}) {
		t.Error("expected match on (phase, kind)")
	}
	if stderrors.Is(err, &Error{Phase: PhaseResolve, Kind: KindInvalidHandle}) {
		t.Error("phase mismatch should not match")
	}
	if stderrors.Is(err, &Error{Phase: PhaseLookup, Kind: KindNotFound}) {
		t.Error("kind mismatch should not match")
	}
}

func TestDetailFormatting(t *testing.T) {
	err := New(PhaseLoad, KindInvalidInput).Detail("id %d taken by %q", 42, "hello").Build()
	if err.Detail != `id 42 taken by "hello"` {
		t.Errorf("unexpected detail: %s", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err   *Error
		phase Phase
		kind  Kind
		want  string
	}{
		{InvalidHandle(PhaseLookup, 9), PhaseLookup, KindInvalidHandle, "handle 9"},
		{CapabilityMissing(PhaseResolve, "int", "Resources"), PhaseResolve, KindCapabilityMissing, "no Resources capability"},
		{NotFound(PhaseResolve, "resource id", "9999"), PhaseResolve, KindNotFound, `resource id "9999" not found`},
		{NoMemory(PhaseHost), PhaseHost, KindNoMemory, "no linear memory"},
		{AllocationFailed(PhaseHost, 16, 1, nil), PhaseHost, KindAllocation, "allocate 16 bytes"},
		{Registration(PhaseHost, "localekit:resources/strings@0.1.0", "resolve-string", nil), PhaseHost, KindRegistration, "resolve-string"},
	}

	for _, tt := range tests {
		if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
			t.Errorf("%v: got (%s, %s), want (%s, %s)", tt.err, tt.err.Phase, tt.err.Kind, tt.phase, tt.kind)
		}
		if !strings.Contains(tt.err.Error(), tt.want) {
			t.Errorf("%v: expected substring %q", tt.err, tt.want)
		}
	}
}
