package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cskerritt/economic-loss-calculator-sub000/internal/calculation"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/config"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/domain"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/output"
	"github.com/cskerritt/economic-loss-calculator-sub000/internal/server"
	"github.com/cskerritt/economic-loss-calculator-sub000/pkg/dateutil"
)

// cliLogger implements calculation.Logger using the standard log package
type cliLogger struct{}

func (cliLogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (cliLogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (cliLogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (cliLogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "elcalc",
	Short: "Forensic economic-loss damages calculator",
	Long:  "Computes earnings-loss, household-services and life-care-plan damages for personal-injury and wrongful-death cases under the Tinari algebraic method.",
}

func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
		if t, ok := dateutil.ParseDate(asOf); ok {
			engine.AsOf = t
		} else {
			log.Fatalf("invalid --as-of date %q, want yyyy-mm-dd", asOf)
		}
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		engine.SetLogger(cliLogger{})
	}
	return engine
}

func loadCase(path string) *domain.Case {
	parser := config.NewInputParser()
	c, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

func emit(cmd *cobra.Command, data []byte) {
	if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
		if err := os.WriteFile(outFile, data, 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", outFile)
		return
	}
	os.Stdout.Write(data)
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [case-file]",
	Short: "Run the full damages calculation for a case",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := loadCase(args[0])
		engine := newEngine(cmd)

		result, err := engine.RunCase(context.Background(), c)
		if err != nil {
			log.Fatal(err)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			log.Fatalf("unknown format %q, available: %s", formatName,
				strings.Join(output.AvailableFormatterNames(), ", "))
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, data)
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [case-file]",
	Short: "Compare retirement-age scenarios for a case",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := loadCase(args[0])
		engine := newEngine(cmd)

		result, err := engine.RunCase(context.Background(), c)
		if err != nil {
			log.Fatal(err)
		}
		data, err := output.CSVSummarizer{}.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, data)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [case-file]",
	Short: "Generate a detailed year-by-year damages schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := loadCase(args[0])
		engine := newEngine(cmd)

		kind, _ := cmd.Flags().GetString("kind")
		targetYear, _ := cmd.Flags().GetInt("year")

		var data []byte
		var err error
		switch kind {
		case "earnings":
			data, err = output.EarningsScheduleCSV(engine.GenerateEarningsSchedule(c, targetYear))
		case "household":
			data, err = output.HouseholdScheduleCSV(engine.GenerateHouseholdSchedule(c, targetYear))
		case "lcp":
			data, err = output.LcpScheduleCSV(engine.GenerateLcpSchedule(c, targetYear))
		default:
			log.Fatalf("unknown schedule kind %q, want earnings, household or lcp", kind)
		}
		if err != nil {
			log.Fatal(err)
		}
		emit(cmd, data)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the damages engine as a JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		engine := newEngine(cmd)
		srv := server.New(engine)
		srv.SetLogger(cliLogger{})

		addr, _ := cmd.Flags().GetString("addr")
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "elcalc %s (commit %s)\n", version, commit)
	},
}

func main() {
	rootCmd.PersistentFlags().String("as-of", "", "evaluation date (yyyy-mm-dd, default today)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	calculateCmd.Flags().String("format", "console", "output format (console, csv, json)")
	calculateCmd.Flags().String("output", "", "write output to file instead of stdout")

	scenariosCmd.Flags().String("output", "", "write output to file instead of stdout")

	scheduleCmd.Flags().String("kind", "earnings", "schedule kind (earnings, household, lcp)")
	scheduleCmd.Flags().Int("year", 0, "anchor calendar year for the schedule (default trial year)")
	scheduleCmd.Flags().String("output", "", "write output to file instead of stdout")

	serveCmd.Flags().String("addr", ":8080", "listen address")

	rootCmd.AddCommand(calculateCmd, scenariosCmd, scheduleCmd, serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
