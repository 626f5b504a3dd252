package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Archive struct {
		// Source picks the headline provider: "archive" (keyword search
		// against the archive API) or "alpaca" (symbol-driven market news).
		Source  string `yaml:"source"`
		BaseURL string `yaml:"base_url"`
		Query   string `yaml:"query"`
		// Location is matched against the API's glocations facet.
		Location string `yaml:"location"`
		// AlpacaSymbols is only consulted when Source is "alpaca".
		AlpacaSymbols []string `yaml:"alpaca_symbols"`
		// StepDays controls the period-walk stride. The reference pipeline
		// samples one day per week (7); set 1 for full daily coverage.
		StepDays            int `yaml:"step_days"`
		CooldownSeconds     int `yaml:"cooldown_seconds"`
		MaxRateLimitRetries int `yaml:"max_rate_limit_retries"`
		RequestTimeoutSecs  int `yaml:"request_timeout_seconds"`
	} `yaml:"archive"`

	Window struct {
		StartYear  int `yaml:"start_year"`
		StartMonth int `yaml:"start_month"`
		EndYear    int `yaml:"end_year"`
		EndMonth   int `yaml:"end_month"`
	} `yaml:"window"`

	Stance struct {
		SupportPhrases    []string `yaml:"support_phrases"`
		OppositionPhrases []string `yaml:"opposition_phrases"`
	} `yaml:"stance"`

	Output struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"output"`
}

func LoadConfig() (*Config, error) {
	// Resolve path relative to this file first
	_, filePath, _, ok := runtime.Caller(0)
	var basePath string
	if ok {
		basePath = filepath.Dir(filePath)
	}

	// Get current working directory as fallback
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Try multiple paths to find config.yaml
	possiblePaths := []string{}
	if basePath != "" {
		possiblePaths = append(possiblePaths, filepath.Join(basePath, "config.yaml"))
	}
	possiblePaths = append(possiblePaths,
		filepath.Join(cwd, "Internal", "utils", "config", "config.yaml"),
		"Internal/utils/config/config.yaml",
		"config.yaml",
	)

	var data []byte

	for _, path := range possiblePaths {
		data, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}

	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills zero values so a sparse config file still produces a
// runnable pipeline matching the reference behavior.
func (c *Config) applyDefaults() {
	if c.Archive.Source == "" {
		c.Archive.Source = "archive"
	}
	if c.Archive.BaseURL == "" {
		c.Archive.BaseURL = "https://api.nytimes.com/svc/search/v2/articlesearch.json"
	}
	if c.Archive.StepDays <= 0 {
		c.Archive.StepDays = 7
	}
	if c.Archive.CooldownSeconds <= 0 {
		c.Archive.CooldownSeconds = 60
	}
	if c.Archive.MaxRateLimitRetries <= 0 {
		c.Archive.MaxRateLimitRetries = 10
	}
	if c.Archive.RequestTimeoutSecs <= 0 {
		c.Archive.RequestTimeoutSecs = 30
	}
	if c.Output.CSVPath == "" {
		c.Output.CSVPath = "sorted_articles.csv"
	}
}
