// Package history persists run summaries in a SQLite database so successive
// scenario runs can be compared.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kilianp07/gridcost/core/report"
)

// Entry is one stored run summary.
type Entry struct {
	RunID         string
	Time          time.Time
	Scenario      string
	DailyKWh      float64
	PeakKW        float64
	LoadFactor    float64
	FuelLitres    float64
	TotalCostNGN  float64
	CostPerKWhNGN float64
	OverloadHours int
}

// Store persists run entries.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at path and ensures the schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS runs (
        run_id TEXT PRIMARY KEY,
        ts INTEGER,
        scenario TEXT,
        daily_kwh REAL,
        peak_kw REAL,
        load_factor REAL,
        fuel_litres REAL,
        total_cost_ngn REAL,
        cost_per_kwh_ngn REAL,
        overload_hours INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record implements report.Sink.
func (s *Store) Record(r report.Report) error {
	sum := r.Summary
	_, err := s.db.Exec(`INSERT INTO runs
        (run_id, ts, scenario, daily_kwh, peak_kw, load_factor, fuel_litres, total_cost_ngn, cost_per_kwh_ngn, overload_hours)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(run_id) DO NOTHING`,
		r.RunID, r.GeneratedAt.Unix(), r.Scenario,
		sum.Demand.TotalKWh, sum.Demand.PeakKW, sum.Demand.LoadFactor,
		sum.FuelLitres, sum.TotalCostNGN, sum.CostPerKWh, len(r.Overloads))
	return err
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT run_id, ts, scenario, daily_kwh, peak_kw, load_factor,
        fuel_litres, total_cost_ngn, cost_per_kwh_ngn, overload_hours
        FROM runs ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.RunID, &ts, &e.Scenario, &e.DailyKWh, &e.PeakKW, &e.LoadFactor,
			&e.FuelLitres, &e.TotalCostNGN, &e.CostPerKWhNGN, &e.OverloadHours); err != nil {
			return nil, err
		}
		e.Time = time.Unix(ts, 0).UTC()
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
