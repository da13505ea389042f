package config

import (
	"testing"
	"time"
)

func TestParseArgsRequiresConfigFile(t *testing.T) {
	_, err := ParseArgs([]string{"--www-root", "./static"})
	if err == nil {
		t.Fatalf("expected an error when --config-file is missing")
	}
}

func TestParseArgsRequiresWWWRoot(t *testing.T) {
	_, err := ParseArgs([]string{"--config-file", "./data/map.json"})
	if err == nil {
		t.Fatalf("expected an error when --www-root is missing")
	}
}

func TestParseArgsDefaultsToManualTick(t *testing.T) {
	args, err := ParseArgs([]string{"--config-file", "./data/map.json", "--www-root", "./static"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.HasTickPeriod {
		t.Fatalf("expected HasTickPeriod = false without --tick-period")
	}
	if args.RandomizeSpawnPoint {
		t.Fatalf("expected RandomizeSpawnPoint = false by default")
	}
}

func TestParseArgsTickPeriodAndRandomize(t *testing.T) {
	args, err := ParseArgs([]string{
		"--config-file", "./data/map.json",
		"--www-root", "./static",
		"--tick-period", "100",
		"--randomize-spawn-points",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !args.HasTickPeriod || args.TickPeriod != 100*time.Millisecond {
		t.Fatalf("tick period = %v (has=%v), want 100ms", args.TickPeriod, args.HasTickPeriod)
	}
	if !args.RandomizeSpawnPoint {
		t.Fatalf("expected RandomizeSpawnPoint = true")
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--bogus-flag", "x"})
	if err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}
