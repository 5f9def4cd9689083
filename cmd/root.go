// Package cmd holds the CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcost/app"
	"github.com/kilianp07/gridcost/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "gridcost",
	Short: "Household load profile and generator cost calculator",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	r, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sum := r.Summary
	fmt.Fprintf(out, "Scenario %s (run %s)\n", r.Scenario, r.RunID)
	fmt.Fprintf(out, "Daily demand:      %.2f kWh (peak %.2f kW, load factor %.2f)\n",
		sum.Demand.TotalKWh, sum.Demand.PeakKW, sum.Demand.LoadFactor)
	fmt.Fprintf(out, "Grid supplied:     %.2f kWh (%.0f NGN)\n", sum.GridKWh, sum.GridCostNGN)
	fmt.Fprintf(out, "Generator:         %.2f kWh, %.2f L fuel (%.0f NGN/day with maintenance and capital)\n",
		sum.GeneratorKWh, sum.FuelLitres, sum.TotalCostNGN)
	fmt.Fprintf(out, "Cost per kWh:      %.1f NGN (grid tariff premium x%.2f)\n", sum.CostPerKWh, sum.GridPremium)
	fmt.Fprintf(out, "Monthly projection: %.0f NGN, annual %.0f NGN, CO2 %.1f kg/yr\n",
		sum.Monthly.CombinedCostNGN, sum.Annual.CombinedCostNGN, sum.Annual.CO2Kg)
	for _, o := range r.Overloads {
		fmt.Fprintf(out, "warning: %s\n", o)
	}
	return nil
}
