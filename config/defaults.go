package config

// Default returns the built-in scenario: a five-occupant urban Nigerian
// household backed by an 11 kVA petrol generator at current market prices.
func Default() Config {
	cfg := Config{
		Scenario: "urban-household",
		Household: HouseholdConfig{
			Appliances: defaultAppliances(),
		},
		Grid: GridConfig{
			Outages: []OutageConfig{{Start: 19, End: 23}},
		},
		Generator: defaultGenerator(),
		Sinks:     SinksConfig{CSV: CSVSinkConfig{Enabled: true}},
	}
	cfg.SetDefaults()
	return cfg
}

func defaultGenerator() GeneratorConfig {
	// 11 kVA at 0.8 power factor; calibration from manufacturer fuel-rate
	// figures (2.0 / 3.5 / 5.0 / 6.5 L/h at quarter-load steps).
	return GeneratorConfig{
		Name:          "11 kVA petrol (PMS)",
		RatedKW:       8.8,
		FuelPriceNGN:  900,
		EnergyDensity: 9.7,
		OperatingPoints: []OperatingPointConfig{
			{LoadFraction: 0.25, Efficiency: 0.60, FuelLPerKWh: 0.727},
			{LoadFraction: 0.50, Efficiency: 0.70, FuelLPerKWh: 0.636},
			{LoadFraction: 0.75, Efficiency: 0.75, FuelLPerKWh: 0.606},
			{LoadFraction: 1.00, Efficiency: 0.78, FuelLPerKWh: 0.591},
		},
	}
}

func defaultAppliances() []ApplianceConfig {
	return []ApplianceConfig{
		{Name: "Refrigerator", Category: "cooling", Quantity: 1, PowerW: 150,
			Windows: []WindowConfig{{Start: 0, End: 24, Duty: 1}}},
		{Name: "Freezer", Category: "cooling", Quantity: 1, PowerW: 200,
			Windows: []WindowConfig{{Start: 0, End: 24, Duty: 0.75}}},
		{Name: "Air Conditioner", Category: "cooling", Quantity: 1, PowerW: 1500,
			Windows: []WindowConfig{{Start: 19, End: 22, Duty: 1}}},
		{Name: "Ceiling Fans", Category: "cooling", Quantity: 5, PowerW: 60,
			Windows: []WindowConfig{{Start: 0, End: 6, Duty: 1}, {Start: 18, End: 24, Duty: 1}}},
		{Name: "Standing Fans", Category: "cooling", Quantity: 2, PowerW: 45,
			Windows: []WindowConfig{{Start: 12, End: 20, Duty: 1}}},
		{Name: "Television", Category: "entertainment", Quantity: 1, PowerW: 50,
			Windows: []WindowConfig{{Start: 18, End: 23, Duty: 1}}},
		{Name: "DSTV Decoder", Category: "entertainment", Quantity: 1, PowerW: 15,
			Windows: []WindowConfig{{Start: 18, End: 23, Duty: 1}}},
		{Name: "Laptops", Category: "work", Quantity: 2, PowerW: 60,
			Windows: []WindowConfig{{Start: 9, End: 13, Duty: 1}}},
		{Name: "Smartphones", Category: "work", Quantity: 5, PowerW: 10,
			Windows: []WindowConfig{{Start: 20, End: 22, Duty: 1}}},
		{Name: "WiFi Router", Category: "work", Quantity: 1, PowerW: 10,
			Windows: []WindowConfig{{Start: 0, End: 24, Duty: 1}}},
		{Name: "Microwave", Category: "kitchen", Quantity: 1, PowerW: 800,
			Windows: []WindowConfig{{Start: 18, End: 19, Duty: 0.5}}},
		{Name: "Electric Kettle", Category: "kitchen", Quantity: 1, PowerW: 1500,
			Windows: []WindowConfig{{Start: 6, End: 7, Duty: 0.25}}},
		{Name: "Electric Iron", Category: "laundry", Quantity: 1, PowerW: 1000,
			Windows: []WindowConfig{{Start: 6, End: 7, Duty: 0.33}}},
		{Name: "Water Heater", Category: "kitchen", Quantity: 1, PowerW: 2000,
			Windows: []WindowConfig{{Start: 6, End: 7, Duty: 0.5}}},
		{Name: "LED Lighting", Category: "lighting", Quantity: 8, PowerW: 10,
			Windows: []WindowConfig{{Start: 18, End: 23, Duty: 1}}},
		{Name: "Blender", Category: "kitchen", Quantity: 1, PowerW: 300,
			Windows: []WindowConfig{{Start: 6, End: 7, Duty: 0.25}}},
		{Name: "Washing Machine", Category: "laundry", Quantity: 1, PowerW: 400,
			Windows: []WindowConfig{{Start: 10, End: 11, Duty: 0.5}}},
		{Name: "Audio System", Category: "entertainment", Quantity: 1, PowerW: 30,
			Windows: []WindowConfig{{Start: 17, End: 19, Duty: 1}}},
	}
}
