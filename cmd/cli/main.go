package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fourcast/adapters/excel"
	"fourcast/adapters/report"
	"fourcast/adapters/stats"
	"fourcast/app"
	"fourcast/domain/backtest"
	"fourcast/domain/draw"
	"fourcast/domain/wager"
	"fourcast/internal"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "fourcast",
		Short: "Walk-forward backtesting for lottery digit prediction heuristics",
	}

	rootCmd.AddCommand(
		newSweepCmd(),
		newProfileCmd(),
		newColdCmd(),
		newFilterCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSweepCmd() *cobra.Command {
	var (
		file    string
		windows []int
		topK    []int
		alpha   float64
		format  string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a walk-forward backtest sweep across window sizes",
		Long: `Run the digit-prediction backtest for each configured window size and
report accuracy against the K/10 random baseline.

Example: fourcast sweep --file draws.xlsx --windows 12,24,52 --topk 1,3,5 --alpha 1.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := excel.NewDrawReader(file).History(context.Background())
			if err != nil {
				return err
			}

			cfg := backtest.DefaultSweepConfig()
			cfg.WindowSizes = windows
			cfg.TopK = topK
			cfg.Alpha = alpha

			svc := app.NewSweepService(internal.NewDefaultLogger())
			result, err := svc.Run(context.Background(), history, cfg)
			if err != nil {
				return err
			}

			renderer := report.NewMarkdownRenderer()
			switch format {
			case "json":
				return json.NewEncoder(os.Stdout).Encode(result)
			case "html":
				doc, err := renderer.RenderHTML(result)
				if err != nil {
					return err
				}
				fmt.Println(doc)
			default:
				doc, err := renderer.Render(result)
				if err != nil {
					return err
				}
				fmt.Println(doc)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "xlsx/csv file with historical draws (required)")
	cmd.Flags().IntSliceVar(&windows, "windows", []int{12, 24, 52, 100}, "window sizes to sweep")
	cmd.Flags().IntSliceVar(&topK, "topk", []int{1, 3, 5}, "top-K thresholds to evaluate")
	cmd.Flags().Float64Var(&alpha, "alpha", 1.0, "Bayesian smoothing constant")
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown, html or json")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print a descriptive profile of the draw history digit distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := excel.NewDrawReader(file).History(context.Background())
			if err != nil {
				return err
			}
			profile := stats.ProfileHistory(history, draw.DefaultWeights())
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(profile)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "xlsx/csv file with historical draws (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newColdCmd() *cobra.Command {
	var (
		file   string
		window int
	)

	cmd := &cobra.Command{
		Use:   "cold",
		Short: "List under-represented digits over the most recent draws",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := excel.NewDrawReader(file).History(context.Background())
			if err != nil {
				return err
			}
			if window > history.Len() {
				window = history.Len()
			}
			freq := stats.WeightedDigitFrequencies(history.Last(window), draw.DefaultWeights())

			out := map[string]interface{}{
				"window":          window,
				"never_drawn":     stats.ZeroPriorityDigits(freq),
				"below_average":   stats.LowOccurrenceDigits(freq, -1),
				"tied_for_lowest": stats.LowestOccurrenceDigits(freq),
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "xlsx/csv file with historical draws (required)")
	cmd.Flags().IntVar(&window, "window", 52, "number of most recent draws to inspect")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newFilterCmd() *cobra.Command {
	var (
		file       string
		recentSpan int
		longSpan   int
	)

	cmd := &cobra.Command{
		Use:   "filter [numbers...]",
		Short: "Filter candidate numbers against historical winners",
		Long: `Drop candidates that won any prize recently, won a top-3 prize within the
long span, or won more than once within the long span.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := excel.NewDrawReader(file).WinningNumbers(context.Background())
			if err != nil {
				return err
			}

			recent, longWindow := splitByRecency(numbers, recentSpan, longSpan)
			result := app.FilterNumbers(args, recent, longWindow)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "xlsx/csv file with historical draws (required)")
	cmd.Flags().IntVar(&recentSpan, "recent-days", 180, "recent span in days")
	cmd.Flags().IntVar(&longSpan, "long-days", 365, "long span in days")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// splitByRecency partitions winning numbers into the recent and long spans,
// measured backwards from the newest draw date in the data.
func splitByRecency(numbers []draw.WinningNumber, recentDays, longDays int) (recent, long []draw.WinningNumber) {
	if len(numbers) == 0 {
		return nil, nil
	}
	newest := numbers[0].Date
	for _, n := range numbers[1:] {
		if n.Date.After(newest) {
			newest = n.Date
		}
	}
	recentCutoff := newest.AddDate(0, 0, -recentDays)
	longCutoff := newest.AddDate(0, 0, -longDays)
	for _, n := range numbers {
		if !n.Date.Before(recentCutoff) {
			recent = append(recent, n)
		}
		if !n.Date.Before(longCutoff) {
			long = append(long, n)
		}
	}
	return recent, long
}

func newSimulateCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Show best and worst case payouts for buying a candidate list",
		RunE: func(cmd *cobra.Command, args []string) error {
			best := wager.BestCase(count)
			worst := wager.WorstCase(count)

			fmt.Printf("Buying %d numbers costs $%.2f\n", count, best.TotalCost)
			fmt.Printf("Best case:  winnings $%.2f, net %+.2f\n", best.Winnings, best.Net)
			fmt.Printf("Worst case: winnings $%.2f, net %+.2f\n", worst.Winnings, worst.Net)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "number of candidates bought")
	return cmd
}
