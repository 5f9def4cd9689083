package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `scenario: "lagos-flat"
household:
  appliances:
    - name: "Refrigerator"
      category: "cooling"
      quantity: 1
      power_w: 150
      windows:
        - start: 0
          end: 24
          duty: 1
grid:
  outages:
    - start: 19
      end: 23
generator:
  name: "test genset"
  rated_kw: 8.8
  fuel_price_ngn: 1100
  operating_points:
    - load_fraction: 0.25
      efficiency: 0.60
      fuel_l_per_kwh: 0.727
    - load_fraction: 1.00
      efficiency: 0.78
      fuel_l_per_kwh: 0.591
sinks:
  csv:
    enabled: true
    hourly_path: "out/hourly.csv"
  mqtt:
    enabled: true
    broker: "tcp://localhost:1883"
    topic: "household/report"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"scenario", cfg.Scenario, "lagos-flat"},
		{"appliance", cfg.Household.Appliances[0].Name, "Refrigerator"},
		{"outage_start", cfg.Grid.Outages[0].Start, 19},
		{"generator_name", cfg.Generator.Name, "test genset"},
		{"fuel_price", cfg.Generator.FuelPriceNGN, 1100.0},
		{"energy_density_default", cfg.Generator.EnergyDensity, 9.7},
		{"tariff_default", *cfg.Economics.GridTariffNGN, 110.0},
		{"csv_path", cfg.Sinks.CSV.HourlyPath, "out/hourly.csv"},
		{"summary_path_default", cfg.Sinks.CSV.SummaryPath, "cost_summary.csv"},
		{"mqtt_broker", cfg.Sinks.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt_topic", cfg.Sinks.MQTT.Topic, "household/report"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}

	avail := cfg.Grid.Model()
	if avail[20] != 0 || avail[10] != 1 {
		t.Errorf("outage window not applied: %v", avail)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("generator:\n  fuel_price_ngn: 900\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GC_GENERATOR__FUEL_PRICE_NGN", "1250")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Generator.FuelPriceNGN != 1250 {
		t.Errorf("env override ignored: %v", cfg.Generator.FuelPriceNGN)
	}
}

func TestLoadExplicitZeroEconomics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `economics:
  grid_tariff_ngn: 0
  resale_fraction: 0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	econ := cfg.Economics.Model()
	if econ.GridTariffNGN != 0 {
		t.Errorf("explicit zero tariff replaced by default: %v", econ.GridTariffNGN)
	}
	if econ.ResaleFraction != 0 {
		t.Errorf("explicit zero resale fraction replaced by default: %v", econ.ResaleFraction)
	}
	if econ.MaintenanceFactor != 1.2 {
		t.Errorf("omitted maintenance factor not defaulted: %v", econ.MaintenanceFactor)
	}
}

func TestLoadBadOutageWindow(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"inverted", "grid:\n  outages:\n    - start: 23\n      end: 19\n"},
		{"empty", "grid:\n  outages:\n    - start: 12\n      end: 12\n"},
		{"past_midnight", "grid:\n  outages:\n    - start: 20\n      end: 30\n"},
		{"negative", "grid:\n  outages:\n    - start: -1\n      end: 5\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected outage window rejection")
			}
		})
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Scenario != "urban-household" {
		t.Errorf("expected built-in scenario, got %q", cfg.Scenario)
	}
	if len(cfg.Household.Appliances) == 0 {
		t.Error("built-in scenario has no appliances")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("built-in scenario invalid: %v", err)
	}
	if !cfg.Sinks.CSV.Enabled {
		t.Error("built-in scenario should export CSV")
	}
}
