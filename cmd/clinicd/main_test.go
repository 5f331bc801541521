package main

import (
	"testing"

	"github.com/secourse/clinic-scheduler/internal/infrastructure/config"
	"github.com/secourse/clinic-scheduler/internal/infrastructure/idgen"
)

func TestAccountIDs(t *testing.T) {
	gen, err := accountIDs(config.AccountIDConfig{Strategy: config.StrategySequence})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gen.(*idgen.Sequence); !ok {
		t.Errorf("expected *idgen.Sequence, got %T", gen)
	}

	gen, err = accountIDs(config.AccountIDConfig{Strategy: config.StrategyRandom, Range: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := gen.Next(func(int) bool { return false })
	if err != nil || id < 0 || id >= 10 {
		t.Errorf("random id %d out of range (%v)", id, err)
	}

	if _, err := accountIDs(config.AccountIDConfig{Strategy: "uuid"}); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestServeCmd_PortFlag(t *testing.T) {
	cmd := serveCmd()
	if err := cmd.Flags().Set("port", "9191"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got, _ := cmd.Flags().GetString("port"); got != "9191" {
		t.Errorf("expected 9191, got %q", got)
	}
}
