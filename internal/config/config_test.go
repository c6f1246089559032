package config

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want time.Weekday
	}{
		{"sunday", time.Sunday},
		{"Sun", time.Sunday},
		{"monday", time.Monday},
		{"SATURDAY", time.Saturday},
		{"", time.Monday},
		{"noday", time.Monday},
	}
	for _, tc := range cases {
		if got := ParseWeekday(tc.in); got != tc.want {
			t.Fatalf("ParseWeekday(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 7
	cfg.General.DefaultCurrency = "EUR"
	cfg.General.FirstWeekday = "sunday"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
}
