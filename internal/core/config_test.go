package core

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TickRate = 10
	cfg.RevealIntervalMS = 100
	cfg.StrictGuesses = true
	cfg.Daily.Salt = "pepper"
	cfg.Theme.Correct = "#00ff00"

	rc := FromConfig(cfg)
	if rc.TickRate != 10 {
		t.Errorf("TickRate = %d, expected 10", rc.TickRate)
	}
	if rc.RevealInterval != 100*time.Millisecond {
		t.Errorf("RevealInterval = %v, expected 100ms", rc.RevealInterval)
	}
	if !rc.Strict || rc.DailySalt != "pepper" || rc.Theme.Correct != "#00ff00" {
		t.Errorf("FromConfig() = %+v", rc)
	}
	if rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", rc.ScreenW, rc.ScreenH)
	}
}

func TestSeedOrNow(t *testing.T) {
	rc := DefaultConfig()
	rc.Seed = 99
	if rc.SeedOrNow() != 99 {
		t.Errorf("SeedOrNow() = %d, expected 99", rc.SeedOrNow())
	}
	rc.Seed = 0
	if rc.SeedOrNow() == 0 {
		t.Error("SeedOrNow() = 0 with no seed set")
	}
}
