// Package config holds runtime settings for the Teamspace client.
// Values come from defaults, then an optional JSON file, then flags;
// later sources win.
package config

import "time"

type Config struct {
	// ServerAddr is the base URL of the record store server.
	ServerAddr string

	// SessionFile and BudgetFile are the two durable local records.
	SessionFile string
	BudgetFile  string

	// SlideshowInterval is the auto-advance period of the photo gallery.
	SlideshowInterval time.Duration

	// RequestTimeout bounds every store call.
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.SessionFile = "teamspace/session.json"
	c.BudgetFile = "teamspace/budgets.json"
	c.SlideshowInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config from defaults overlaid with JSON file
// values and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
