// Package app assembles the calculation pipeline and its output sinks from a
// loaded configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/gridcost/config"
	"github.com/kilianp07/gridcost/core/analysis"
	"github.com/kilianp07/gridcost/core/genset"
	"github.com/kilianp07/gridcost/core/grid"
	"github.com/kilianp07/gridcost/core/profile"
	"github.com/kilianp07/gridcost/core/report"
	"github.com/kilianp07/gridcost/infra/export"
	"github.com/kilianp07/gridcost/infra/history"
	"github.com/kilianp07/gridcost/infra/logger"
	"github.com/kilianp07/gridcost/infra/metrics"
	"github.com/kilianp07/gridcost/infra/mqtt"
)

// Service runs the scenario described by its configuration and fans the
// resulting report out to the configured sinks.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink report.Sink

	closers     []func()
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []report.Sink
	var closers []func()
	if cfg.Sinks.CSV.Enabled {
		sinks = append(sinks, export.CSVSink{
			HourlyPath:  cfg.Sinks.CSV.HourlyPath,
			SummaryPath: cfg.Sinks.CSV.SummaryPath,
		})
	}
	if cfg.Sinks.Prometheus.Enabled {
		sink, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Sinks.Influx.Enabled {
		in := cfg.Sinks.Influx
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(in.URL, in.Token, in.Org, in.Bucket))
	}
	if cfg.Sinks.MQTT.Enabled {
		sink, err := mqtt.NewSink(cfg.Sinks.MQTT.Config, cfg.Sinks.MQTT.Topic)
		if err != nil {
			return nil, fmt.Errorf("mqtt sink: %w", err)
		}
		sinks = append(sinks, sink)
		closers = append(closers, sink.Close)
	}
	if cfg.Sinks.History.Enabled {
		store, err := history.NewStore(cfg.Sinks.History.Path)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		sinks = append(sinks, store)
		closers = append(closers, func() { _ = store.Close() })
	}

	var sink report.Sink = report.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = report.NewMultiSink(sinks...)
	}

	return &Service{
		cfg:         cfg,
		log:         logg,
		sink:        sink,
		closers:     closers,
		promEnabled: cfg.Sinks.Prometheus.Enabled,
		promPort:    cfg.Sinks.Prometheus.Port,
	}, nil
}

// Run executes the pipeline once and records the report. When the Prometheus
// sink is enabled the exposition endpoint is served until the context is
// cancelled, so scrapers can pick up the gauges.
func (s *Service) Run(ctx context.Context) (report.Report, error) {
	r, err := s.Evaluate()
	if err != nil {
		return report.Report{}, err
	}

	if err := s.sink.Record(r); err != nil {
		return report.Report{}, fmt.Errorf("record report: %w", err)
	}
	s.log.Infof("run %s: demand %.2f kWh, generator %.2f kWh, fuel %.2f L, cost %.0f NGN",
		r.RunID, r.Summary.Demand.TotalKWh, r.Summary.GeneratorKWh, r.Summary.FuelLitres, r.Summary.TotalCostNGN)
	for _, o := range r.Overloads {
		s.log.Warnf("%s", o)
	}

	if s.promEnabled {
		s.log.Infof("serving metrics on %s", s.promPort)
		if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}
	return r, nil
}

// Evaluate computes the report for the configured scenario without recording
// it anywhere.
func (s *Service) Evaluate() (report.Report, error) {
	demand, err := profile.Build(s.cfg.Household.Model())
	if err != nil {
		return report.Report{}, fmt.Errorf("build profile: %w", err)
	}
	avail := s.cfg.Grid.Model()
	met, unmet, err := grid.Split(demand, avail)
	if err != nil {
		return report.Report{}, fmt.Errorf("split demand: %w", err)
	}
	gen := s.cfg.Generator.Model()
	usage, err := genset.Run(unmet, gen)
	if err != nil {
		return report.Report{}, fmt.Errorf("generator usage: %w", err)
	}
	stats, err := analysis.Summarize(demand)
	if err != nil {
		return report.Report{}, fmt.Errorf("summarize demand: %w", err)
	}
	econ, err := analysis.Evaluate(stats, met, unmet, usage, gen, s.cfg.Economics.Model())
	if err != nil {
		return report.Report{}, fmt.Errorf("evaluate economics: %w", err)
	}
	return report.Build(uuid.NewString(), s.cfg.Scenario, time.Now().UTC(), demand, met, unmet, usage, econ), nil
}

// Sweep recomputes the daily generator cost across the configured fuel price
// range.
func (s *Service) Sweep() ([]analysis.PricePoint, error) {
	r, err := s.Evaluate()
	if err != nil {
		return nil, err
	}
	return analysis.FuelPriceSweep(r.Summary.FuelLitres, s.cfg.Sensitivity.Model())
}

// Close releases resources held by the sinks.
func (s *Service) Close() {
	for _, c := range s.closers {
		c()
	}
}
