package config

import (
	"fmt"

	"github.com/kilianp07/gridcost/infra/mqtt"
)

// CSVSinkConfig controls the tabular file export.
type CSVSinkConfig struct {
	Enabled     bool   `json:"enabled"`
	HourlyPath  string `json:"hourly_path"`
	SummaryPath string `json:"summary_path"`
}

// PrometheusSinkConfig controls the Prometheus exposition endpoint.
type PrometheusSinkConfig struct {
	Enabled bool   `json:"enabled"`
	Port    string `json:"port"`
}

// InfluxSinkConfig controls the InfluxDB sink.
type InfluxSinkConfig struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
	Token   string `json:"token"`
	Org     string `json:"org"`
	Bucket  string `json:"bucket"`
}

// MQTTSinkConfig controls report publishing over MQTT. The connection
// parameters sit flat in the section, so the squash option is required for
// the decoder to fill the embedded struct.
type MQTTSinkConfig struct {
	Enabled bool   `json:"enabled"`
	Topic   string `json:"topic"`

	mqtt.Config `json:",squash"`
}

// HistorySinkConfig controls the sqlite run-history store.
type HistorySinkConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// SinksConfig selects where a finished report goes. Every sink is opt-in; the
// built-in scenario enables CSV export only.
type SinksConfig struct {
	CSV        CSVSinkConfig        `json:"csv"`
	Prometheus PrometheusSinkConfig `json:"prometheus"`
	Influx     InfluxSinkConfig     `json:"influx"`
	MQTT       MQTTSinkConfig       `json:"mqtt"`
	History    HistorySinkConfig    `json:"history"`
}

// SetDefaults applies sink defaults.
func (c *SinksConfig) SetDefaults() {
	if c.CSV.HourlyPath == "" {
		c.CSV.HourlyPath = "hourly_ledger.csv"
	}
	if c.CSV.SummaryPath == "" {
		c.CSV.SummaryPath = "cost_summary.csv"
	}
	if c.Prometheus.Port == "" {
		c.Prometheus.Port = ":9090"
	}
	if c.MQTT.Topic == "" {
		c.MQTT.Topic = "gridcost/report"
	}
	if c.History.Path == "" {
		c.History.Path = "gridcost_history.db"
	}
}

// Validate checks enabled sinks for required fields.
func (c SinksConfig) Validate() error {
	if c.Influx.Enabled && c.Influx.URL == "" {
		return fmt.Errorf("influx sink enabled without url")
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt sink enabled without broker")
	}
	return nil
}
