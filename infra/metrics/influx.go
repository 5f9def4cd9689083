package metrics

import (
	"context"
	"math"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/gridcost/core/report"
	"github.com/kilianp07/gridcost/infra/logger"
)

// InfluxSink writes the hourly ledger and the run summary to an InfluxDB
// instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// nop sink if the health check fails, so a missing backend never aborts a run.
func NewInfluxSinkWithFallback(url, token, org, bucket string) report.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return report.NopSink{}
	}
	return sink
}

// Record implements report.Sink. Each hour becomes one point tagged with the
// run id, followed by a single summary point.
func (s *InfluxSink) Record(r report.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, row := range r.Rows {
		p := write.NewPointWithMeasurement("household_hour").
			AddTag("run_id", r.RunID).
			AddTag("scenario", r.Scenario).
			AddTag("hour", row.Label).
			AddField("demand_kwh", round3(row.DemandKWh)).
			AddField("grid_kwh", round3(row.GridKWh)).
			AddField("generator_kwh", round3(row.GeneratorKWh)).
			AddField("fuel_litres", round3(row.FuelLitres)).
			AddField("fuel_cost_ngn", round3(row.FuelCostNGN)).
			AddField("overloaded", row.Overloaded).
			SetTime(r.GeneratedAt.Add(time.Duration(row.Hour) * time.Hour))
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	sum := r.Summary
	p := write.NewPointWithMeasurement("run_summary").
		AddTag("run_id", r.RunID).
		AddTag("scenario", r.Scenario).
		AddField("daily_energy_kwh", round3(sum.Demand.TotalKWh)).
		AddField("peak_demand_kw", round3(sum.Demand.PeakKW)).
		AddField("load_factor", round3(sum.Demand.LoadFactor)).
		AddField("fuel_litres", round3(sum.FuelLitres)).
		AddField("total_cost_ngn", round3(sum.TotalCostNGN)).
		AddField("cost_per_kwh_ngn", round3(sum.CostPerKWh)).
		SetTime(r.GeneratedAt)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
