package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" || cfg.LogPretty {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.AccountIDs.Strategy != StrategySequence || cfg.AccountIDs.Range != 1000000 {
		t.Errorf("unexpected account id defaults: %+v", cfg.AccountIDs)
	}
	if cfg.IsProduction() {
		t.Error("development must not report production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                "9090",
		"ENV":                 "production",
		"LOG_LEVEL":           "debug",
		"LOG_PRETTY":          "true",
		"ACCOUNT_ID_STRATEGY": "random",
		"ACCOUNT_ID_RANGE":    "5000",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" || cfg.LogLevel != "debug" || !cfg.LogPretty || !cfg.IsProduction() {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AccountIDs.Strategy != StrategyRandom || cfg.AccountIDs.Range != 5000 {
		t.Errorf("account id overrides not applied: %+v", cfg.AccountIDs)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown strategy": {"ACCOUNT_ID_STRATEGY": "uuid"},
		"zero range":       {"ACCOUNT_ID_RANGE": "0"},
		"malformed range":  {"ACCOUNT_ID_RANGE": "lots"},
		"malformed bool":   {"LOG_PRETTY": "sometimes"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(context.Background(), envconfig.MapLookuper(env)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
