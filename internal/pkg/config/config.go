package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	OddsAPI  OddsAPIConfig  `yaml:"odds_api"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Monitor  MonitorConfig  `yaml:"monitor"`
	Engine   EngineConfig   `yaml:"engine"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	API      APIConfig      `yaml:"api"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type OddsAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // ODDS_API_KEY env wins over this
	Sports  []string      `yaml:"sports"`  // e.g. soccer_brazil_campeonato
	Regions string        `yaml:"regions"` // comma-separated, e.g. "eu,us"
	Markets string        `yaml:"markets"` // comma-separated, e.g. "h2h,totals"
	Timeout time.Duration `yaml:"timeout"`
}

type ScraperConfig struct {
	URL        string          `yaml:"url"`
	Bookmaker  string          `yaml:"bookmaker"`
	Interval   time.Duration   `yaml:"interval"`
	Iterations int             `yaml:"iterations"`
	Timeout    time.Duration   `yaml:"timeout"`
	Selectors  SelectorConfig  `yaml:"selectors"`
}

// SelectorConfig holds the CSS selectors for the three result-market
// price elements on the scraped page.
type SelectorConfig struct {
	Home string `yaml:"home"`
	Draw string `yaml:"draw"`
	Away string `yaml:"away"`
}

type MonitorConfig struct {
	Interval     time.Duration `yaml:"interval"`
	Iterations   int           `yaml:"iterations"`
	PersistEvery int           `yaml:"persist_every"` // persist/export every N iterations
	ExportDir    string        `yaml:"export_dir"`
}

// EngineConfig carries the engine knobs. Both defaults are inherited
// heuristics with no stated derivation, so they stay overridable.
type EngineConfig struct {
	ValueThreshold float64 `yaml:"value_threshold"` // default 0.60
	TotalsLine     float64 `yaml:"totals_line"`     // default 2.5
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type APIConfig struct {
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"` // TELEGRAM_BOT_TOKEN env wins over this
	ChatID   int64  `yaml:"chat_id"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.OddsAPI.BaseURL == "" {
		c.OddsAPI.BaseURL = "https://api.the-odds-api.com/v4"
	}
	if c.OddsAPI.Regions == "" {
		c.OddsAPI.Regions = "eu,us"
	}
	if c.OddsAPI.Markets == "" {
		c.OddsAPI.Markets = "h2h,totals"
	}
	if c.OddsAPI.Timeout <= 0 {
		c.OddsAPI.Timeout = 15 * time.Second
	}
	if c.Monitor.Interval <= 0 {
		c.Monitor.Interval = 20 * time.Minute
	}
	if c.Monitor.Iterations <= 0 {
		c.Monitor.Iterations = 6
	}
	if c.Monitor.PersistEvery <= 0 {
		c.Monitor.PersistEvery = 2
	}
	if c.Monitor.ExportDir == "" {
		c.Monitor.ExportDir = "."
	}
	if c.Engine.ValueThreshold <= 0 {
		c.Engine.ValueThreshold = 0.60
	}
	if c.Engine.TotalsLine <= 0 {
		c.Engine.TotalsLine = 2.5
	}
	if c.Scraper.Interval <= 0 {
		c.Scraper.Interval = 5 * time.Minute
	}
	if c.Scraper.Iterations <= 0 {
		c.Scraper.Iterations = 12
	}
	if c.Scraper.Timeout <= 0 {
		c.Scraper.Timeout = 60 * time.Second
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = time.Hour
	}
	if c.API.ReadHeaderTimeout <= 0 {
		c.API.ReadHeaderTimeout = 10 * time.Second
	}
}

// applyEnvOverrides lets secrets come from the environment (usually a
// .env file loaded at startup) instead of the checked-in yaml.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		c.OddsAPI.APIKey = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
}
