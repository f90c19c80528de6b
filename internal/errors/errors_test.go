package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Newf(TypeSolve, "no root from seed %g", 2.0)
	msg := err.Error()
	if !strings.Contains(msg, "SOLVE_ERROR") || !strings.Contains(msg, "seed 2") {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("singular matrix")
	err := Fit("fitting demand curve", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}
	if !strings.Contains(err.Error(), "singular matrix") {
		t.Errorf("cause missing from message: %s", err.Error())
	}
}

func TestIsType(t *testing.T) {
	err := Scenario("bad observations")
	if !IsType(err, TypeScenario) {
		t.Error("IsType(TypeScenario) = false")
	}
	if IsType(err, TypeFit) {
		t.Error("IsType(TypeFit) = true for a scenario error")
	}
	if IsType(stderrors.New("plain"), TypeScenario) {
		t.Error("IsType matched a plain error")
	}
}

func TestWithContext(t *testing.T) {
	err := New(TypeConfig, "invalid tolerance").WithContext("tolerance", -1.0)
	if err.Context["tolerance"] != -1.0 {
		t.Errorf("context = %v", err.Context)
	}
}
