package archive

import (
	"fmt"
	"os"

	"github.com/fazecat/newspulse/Internal/utils/config"
)

// NewSourceFromEnv builds the headline source selected by
// archive.source in config, pulling its credentials from the environment.
// A missing credential is reported here so entrypoints can fail at startup
// instead of discovering it mid-harvest.
func NewSourceFromEnv(cfg *config.Config) (HeadlineSource, error) {
	switch cfg.Archive.Source {
	case "", "archive":
		apiKey := os.Getenv("ARCHIVE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ARCHIVE_API_KEY is not set")
		}
		return NewClient(cfg, apiKey), nil

	case "alpaca":
		apiKey := os.Getenv("ALPACA_API_KEY")
		secretKey := os.Getenv("ALPACA_API_SECRET")
		if apiKey == "" || secretKey == "" {
			return nil, fmt.Errorf("ALPACA_API_KEY and ALPACA_API_SECRET are not set")
		}
		return NewAlpacaNewsSource(apiKey, secretKey, cfg.Archive.AlpacaSymbols), nil

	default:
		return nil, fmt.Errorf("unknown headline source %q", cfg.Archive.Source)
	}
}
