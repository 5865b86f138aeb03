package main

import (
	"testing"

	"github.com/banshee-data/cluster.report/internal/agglo"
	"github.com/banshee-data/cluster.report/internal/config"
)

func TestMethodFlagDefaults(t *testing.T) {
	// The flags are defined in the main package's var block; none of the
	// method selectors is set by default.
	if *methodAvg || *methodMin || *methodMax {
		t.Errorf("expected all method flags to default to false, got avg=%v min=%v max=%v",
			*methodAvg, *methodMin, *methodMax)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantPositionals []string
		wantMethods     []string
		wantErr         bool
	}{
		{
			name:            "file only",
			args:            []string{"points.txt"},
			wantPositionals: []string{"points.txt"},
		},
		{
			name:            "file and count",
			args:            []string{"points.txt", "3"},
			wantPositionals: []string{"points.txt", "3"},
		},
		{
			name:            "trailing method flag",
			args:            []string{"points.txt", "3", "--min"},
			wantPositionals: []string{"points.txt", "3"},
			wantMethods:     []string{"min"},
		},
		{
			name:            "single-dash method flag",
			args:            []string{"points.txt", "-max"},
			wantPositionals: []string{"points.txt"},
			wantMethods:     []string{"max"},
		},
		{
			name:    "unknown flag",
			args:    []string{"points.txt", "--median"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positionals, methods, err := splitArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(positionals) != len(tt.wantPositionals) {
				t.Fatalf("positionals: expected %v, got %v", tt.wantPositionals, positionals)
			}
			for i := range positionals {
				if positionals[i] != tt.wantPositionals[i] {
					t.Errorf("positional %d: expected %q, got %q", i, tt.wantPositionals[i], positionals[i])
				}
			}
			if len(methods) != len(tt.wantMethods) {
				t.Fatalf("methods: expected %v, got %v", tt.wantMethods, methods)
			}
			for i := range methods {
				if methods[i] != tt.wantMethods[i] {
					t.Errorf("method %d: expected %q, got %q", i, tt.wantMethods[i], methods[i])
				}
			}
		})
	}
}

func TestResolveMethod_DefaultFromConfig(t *testing.T) {
	cfg := config.EmptyTuningConfig()

	method, err := resolveMethod(cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != agglo.Average {
		t.Errorf("expected default method avg, got %s", method)
	}
}

func TestResolveMethod_Trailing(t *testing.T) {
	cfg := config.EmptyTuningConfig()

	method, err := resolveMethod(cfg, []string{"max"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != agglo.Max {
		t.Errorf("expected max, got %s", method)
	}
}

func TestResolveMethod_Conflict(t *testing.T) {
	cfg := config.EmptyTuningConfig()

	if _, err := resolveMethod(cfg, []string{"min", "max"}); err == nil {
		t.Error("expected error for conflicting methods")
	}
}

func TestResolveMethod_RepeatedSameMethod(t *testing.T) {
	cfg := config.EmptyTuningConfig()

	// Naming the same method twice is harmless.
	method, err := resolveMethod(cfg, []string{"min", "min"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != agglo.Min {
		t.Errorf("expected min, got %s", method)
	}
}
