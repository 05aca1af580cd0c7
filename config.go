package symposium

import (
	"github.com/synclore/symposium/journal"
	"github.com/synclore/symposium/service/philosopher"
)

// Config is a serialisable representation of the simulator configuration.
// It can be populated from YAML, JSON, flags or environment variables. The
// zero-value of nested fields inherits their package defaults.
type Config struct {
	Table   philosopher.Config `json:"table" yaml:"table"`
	Journal JournalConfig      `json:"journal" yaml:"journal"`
	Trace   TraceConfig        `json:"trace" yaml:"trace"`
}

// JournalConfig enables the per-run event log.
type JournalConfig struct {
	Enabled        bool `json:"enabled" yaml:"enabled"`
	journal.Config `yaml:",inline"`
}

// TraceConfig enables OpenTelemetry span export.
type TraceConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the package defaults: five
// philosophers, 3s phases, journal and tracing off.
func DefaultConfig() *Config {
	return &Config{
		Table:   philosopher.DefaultConfig(),
		Journal: JournalConfig{Config: journal.DefaultConfig()},
	}
}

// Validate returns an error describing invalid settings or nil. A table of
// fewer than two philosophers is a startup error; no actor is launched.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	return c.Table.Validate()
}
