package scrape

import (
	"testing"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2.05", 2.05, false},
		{" 3,20 ", 3.20, false},
		{"1.01", 1.01, false},
		{"1.0", 0, true},   // not a legal decimal odd
		{"0.95", 0, true},
		{"-2.5", 0, true},
		{"", 0, true},
		{"suspended", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePrice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(&config.ScraperConfig{}); err == nil {
		t.Error("missing URL should be rejected")
	}

	cfg := &config.ScraperConfig{URL: "https://example.com/match"}
	if _, err := New(cfg); err == nil {
		t.Error("missing selectors should be rejected")
	}

	cfg.Selectors.Home = ".odds-home"
	if _, err := New(cfg); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
