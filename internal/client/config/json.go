package config

import (
	"encoding/json"
	"os"

	"teamspace/internal/flagx"
	"teamspace/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. Durations accept
// either "3s" strings or integer nanoseconds.
type jsonConfig struct {
	ServerAddr        string         `json:"server_addr"`
	SessionFile       string         `json:"session_file"`
	BudgetFile        string         `json:"budget_file"`
	SlideshowInterval timex.Duration `json:"slideshow_interval"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag means no file is loaded. Read or parse errors panic: a config
// file that exists but cannot be used is an operator mistake to surface
// immediately, not to paper over.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.BudgetFile != "" {
		cfg.BudgetFile = jc.BudgetFile
	}
	if jc.SlideshowInterval.Duration != 0 {
		cfg.SlideshowInterval = jc.SlideshowInterval.Duration
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
