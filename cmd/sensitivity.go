package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcost/app"
	"github.com/kilianp07/gridcost/config"
	"github.com/kilianp07/gridcost/core/analysis"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep daily generator cost across a fuel price range",
	RunE:  runSensitivity,
}

func init() {
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	points, err := svc.Sweep()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-14s %-14s %s\n", "fuel NGN/L", "daily NGN", "monthly NGN")
	for _, p := range points {
		fmt.Fprintf(out, "%-14.0f %-14.0f %.0f\n", p.FuelPriceNGN, p.DailyCostNGN, p.DailyCostNGN*analysis.DaysPerMonth)
	}
	return nil
}
