package bootstrap

import (
	"context"
	"errors"
	"testing"

	platformerrors "voxterview-server-go/internal/platform/errors"
)

func TestInitGraphOrder(t *testing.T) {
	steps := InitGraph()
	want := []string{
		"config:load",
		"logging:init",
		"store:load",
		"speech:init-service",
		"scoring:init",
	}
	if len(steps) != len(want) {
		t.Fatalf("unexpected step count: got %d want %d", len(steps), len(want))
	}
	for i, step := range steps {
		if step.ID != want[i] {
			t.Fatalf("step %d mismatch: got %s want %s", i, step.ID, want[i])
		}
	}
}

func TestExecuteInitSteps_DependencyOrderEnforced(t *testing.T) {
	steps := []initStep{
		{
			ID:        "second",
			DependsOn: []string{"first"},
			Execute:   func(context.Context, *appState) error { return nil },
		},
	}
	if err := executeInitSteps(context.Background(), steps, &appState{}); err == nil {
		t.Fatal("expected an error for an unsatisfied dependency")
	}
}

func TestExecuteInitSteps_WrapsStepFailure(t *testing.T) {
	boom := errors.New("boom")
	steps := []initStep{
		{
			ID:      "failing",
			Kind:    platformerrors.KindStore,
			Execute: func(context.Context, *appState) error { return boom },
		},
	}

	err := executeInitSteps(context.Background(), steps, &appState{})
	if err == nil {
		t.Fatal("expected the step failure to surface")
	}
	if !errors.Is(err, boom) {
		t.Errorf("wrapped error lost its cause: %v", err)
	}
	var typed *platformerrors.Error
	if !errors.As(err, &typed) || typed.Kind != platformerrors.KindStore {
		t.Errorf("expected a %s-kind error, got %v", platformerrors.KindStore, err)
	}
}

func TestExecuteInitSteps_PreservesTypedErrors(t *testing.T) {
	typed := platformerrors.New(platformerrors.KindConfig, "config:load", "bad port")
	steps := []initStep{
		{
			ID:      "config:load",
			Kind:    platformerrors.KindBootstrap,
			Execute: func(context.Context, *appState) error { return typed },
		},
	}

	err := executeInitSteps(context.Background(), steps, &appState{})
	var got *platformerrors.Error
	if !errors.As(err, &got) || got.Kind != platformerrors.KindConfig {
		t.Errorf("typed errors must pass through unwrapped, got %v", err)
	}
}

func TestExecuteInitSteps_NilState(t *testing.T) {
	if err := executeInitSteps(context.Background(), InitGraph(), nil); err == nil {
		t.Fatal("expected an error for a nil state")
	}
}
