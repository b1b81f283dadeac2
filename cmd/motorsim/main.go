package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/logging"
	"github.com/san-kum/motorsim/internal/viz"
)

var (
	settingsFile string
	dataDir      string
	logLevel     string
	// Display units
	pressureUnit string
	forceUnit    string
	massUnit     string
	// Motor source
	preset string
	// run
	live     bool
	plot     bool
	save     bool
	channels []string
	// export
	format  string
	outFile string
	// new
	force bool
	// sweep
	param    string
	values   string
	metric   string
	maximize bool
	workers  int
	// serve
	addr string
	// settings
	writeSettings bool
)

// settings holds the ini values after command line overrides.
var settings config.Settings

func main() {
	rootCmd := &cobra.Command{
		Use:               "motorsim",
		Short:             "solid rocket motor internal ballistics simulator",
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", config.DefaultSettingsFile, "settings file (ini)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "run data directory (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides settings)")

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "simulate a motor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMotor,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "simulate a built-in motor")
	runCmd.Flags().BoolVar(&live, "live", false, "show live progress")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot thrust and pressure")
	runCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")
	addUnitFlags(runCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check a motor without simulating it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateMotor,
	}
	validateCmd.Flags().StringVar(&preset, "preset", "", "validate a built-in motor")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&channels, "channel", []string{"force", "pressure"}, fmt.Sprintf("channels to plot %v", viz.Channels))
	addUnitFlags(plotCmd)

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv, json, eng, xlsx or svg")
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in motors",
		RunE:  listPresets,
	}

	newCmd := &cobra.Command{
		Use:   "new [preset] [file]",
		Short: "write a motor file from a preset",
		Args:  cobra.ExactArgs(2),
		RunE:  newMotor,
	}
	newCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [file]",
		Short: "simulate a motor across values of one parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepMotor,
	}
	sweepCmd.Flags().StringVar(&preset, "preset", "", "sweep a built-in motor")
	sweepCmd.Flags().StringVar(&param, "param", "", "parameter, e.g. nozzle.throat or grain.1.coreDiameter")
	sweepCmd.Flags().StringVar(&values, "values", "", "comma list or start:end:count")
	sweepCmd.Flags().StringVar(&metric, "metric", "impulse", "statistic to rank by")
	sweepCmd.Flags().BoolVar(&maximize, "maximize", false, "rank the highest metric first")
	sweepCmd.Flags().IntVar(&workers, "workers", 4, "concurrent simulations")
	_ = sweepCmd.MarkFlagRequired("param")
	_ = sweepCmd.MarkFlagRequired("values")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve simulations over a websocket",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "show the effective settings",
		RunE:  showSettings,
	}
	settingsCmd.Flags().BoolVar(&writeSettings, "write", false, "save them to the settings file")
	addUnitFlags(settingsCmd)

	rootCmd.AddCommand(runCmd, validateCmd, listCmd, plotCmd, exportCmd, presetsCmd, newCmd, sweepCmd, serveCmd, settingsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addUnitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pressureUnit, "pressure-unit", "", "pressure display unit (overrides settings)")
	cmd.Flags().StringVar(&forceUnit, "force-unit", "", "force display unit (overrides settings)")
	cmd.Flags().StringVar(&massUnit, "mass-unit", "", "mass display unit (overrides settings)")
}

// loadSettings reads the ini file, applies flag overrides and installs the
// logger on the command context.
func loadSettings(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings(settingsFile)
	if err != nil {
		return err
	}
	override(&s.DataDir, dataDir)
	override(&s.LogLevel, logLevel)
	override(&s.Pressure, pressureUnit)
	override(&s.Force, forceUnit)
	override(&s.Mass, massUnit)
	settings = s

	logger, err := logging.New(s.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	cmd.SetContext(logging.NewContext(cmd.Context(), logger))
	return nil
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}

func displayUnits() viz.DisplayUnits {
	return viz.DisplayUnits{
		Pressure: settings.Pressure,
		Force:    settings.Force,
		Mass:     settings.Mass,
	}
}

func showSettings(cmd *cobra.Command, args []string) error {
	fmt.Printf("settings file: %s\n", settingsFile)
	fmt.Printf("  data dir:  %s\n", settings.DataDir)
	fmt.Printf("  log level: %s\n", settings.LogLevel)
	fmt.Printf("  units:     %s, %s, %s\n", settings.Pressure, settings.Force, settings.Mass)
	if !writeSettings {
		return nil
	}
	if err := config.SaveSettings(settingsFile, settings); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", settingsFile)
	return nil
}
