package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/gridcost/config"
	"github.com/kilianp07/gridcost/infra/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored runs, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := history.NewStore(cfg.Sinks.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = store.Close() }()

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "no runs recorded")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s  %-20s %.2f kWh  %.2f L  %.0f NGN  %.1f NGN/kWh\n",
			e.Time.Format("2006-01-02 15:04"), e.RunID, e.Scenario,
			e.DailyKWh, e.FuelLitres, e.TotalCostNGN, e.CostPerKWhNGN)
	}
	return nil
}
