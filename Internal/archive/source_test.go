package archive

import (
	"testing"
)

func TestNewSourceFromEnv(t *testing.T) {
	cfg := testConfig("http://example.invalid")

	t.Run("archive source by default", func(t *testing.T) {
		t.Setenv("ARCHIVE_API_KEY", "key")
		cfg.Archive.Source = ""

		src, err := NewSourceFromEnv(cfg)
		if err != nil {
			t.Fatalf("NewSourceFromEnv: %v", err)
		}
		if _, ok := src.(*Client); !ok {
			t.Errorf("source is %T, want *Client", src)
		}
	})

	t.Run("archive source requires key", func(t *testing.T) {
		t.Setenv("ARCHIVE_API_KEY", "")
		cfg.Archive.Source = "archive"

		if _, err := NewSourceFromEnv(cfg); err == nil {
			t.Error("expected missing-credential error")
		}
	})

	t.Run("alpaca source", func(t *testing.T) {
		t.Setenv("ALPACA_API_KEY", "key")
		t.Setenv("ALPACA_API_SECRET", "secret")
		cfg.Archive.Source = "alpaca"
		cfg.Archive.AlpacaSymbols = []string{"AAPL"}

		src, err := NewSourceFromEnv(cfg)
		if err != nil {
			t.Fatalf("NewSourceFromEnv: %v", err)
		}
		if _, ok := src.(*AlpacaNewsSource); !ok {
			t.Errorf("source is %T, want *AlpacaNewsSource", src)
		}
	})

	t.Run("alpaca source requires both credentials", func(t *testing.T) {
		t.Setenv("ALPACA_API_KEY", "key")
		t.Setenv("ALPACA_API_SECRET", "")
		cfg.Archive.Source = "alpaca"

		if _, err := NewSourceFromEnv(cfg); err == nil {
			t.Error("expected missing-credential error")
		}
	})

	t.Run("unknown source rejected", func(t *testing.T) {
		cfg.Archive.Source = "carrier-pigeon"

		if _, err := NewSourceFromEnv(cfg); err == nil {
			t.Error("expected unknown-source error")
		}
	})
}
