package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/logging"
	"github.com/san-kum/motorsim/internal/motor"
	"github.com/san-kum/motorsim/internal/storage"
	"github.com/san-kum/motorsim/internal/tui"
	"github.com/san-kum/motorsim/internal/viz"
)

const (
	plotWidth  = 70
	plotHeight = 12
)

// loadDefinition returns the motor named by --preset or the file argument,
// and a name for it.
func loadDefinition(args []string) (*motor.Definition, string, error) {
	switch {
	case preset != "" && len(args) > 0:
		return nil, "", fmt.Errorf("use either a motor file or --preset, not both")
	case preset != "":
		def := config.GetPreset(preset)
		if def == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		if err := config.ValidateBounds(def.Config); err != nil {
			return nil, "", err
		}
		return def, preset, nil
	case len(args) == 1:
		def, err := config.Load(args[0])
		if err != nil {
			return nil, "", err
		}
		name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		return def, name, nil
	default:
		return nil, "", fmt.Errorf("a motor file or --preset is required")
	}
}

func runMotor(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	def, name, err := loadDefinition(args)
	if err != nil {
		return err
	}
	m, err := motor.FromDefinition(*def)
	if err != nil {
		return err
	}

	u := displayUnits()
	logger.WithFields(log.Fields{"motor": name, "grains": len(m.Grains)}).Debug("simulating")

	var res *motor.Result
	if live {
		res, err = tui.Run(m, name, u)
		if err != nil {
			return err
		}
		if res == nil {
			return fmt.Errorf("simulation did not finish")
		}
	} else {
		res = m.Simulate(nil)
	}

	fmt.Println(viz.RenderStatus(res))
	if res.Success {
		fmt.Println(viz.RenderStats(res.Stats(), u))
	}
	if len(res.Alerts) > 0 {
		fmt.Println(viz.RenderAlerts(res.Alerts))
	}

	if plot && res.Len() > 1 {
		if err := printPlots(res, []string{"force", "pressure"}, u); err != nil {
			return err
		}
	}

	if save {
		st := storage.New(settings.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, *def, res)
		if err != nil {
			return err
		}
		logger.WithFields(log.Fields{"run": runID, "dir": settings.DataDir}).Info("run saved")
		fmt.Printf("\nrun id: %s\n", runID)
	}

	if !res.Success {
		return fmt.Errorf("motor rejected with %d errors", len(res.AlertsByLevel(alert.Error)))
	}
	return nil
}

func printPlots(res *motor.Result, names []string, u viz.DisplayUnits) error {
	unitFor := map[string]string{
		"force":    u.Force,
		"pressure": u.Pressure,
		"mass":     u.Mass,
	}
	burnTime := res.BurnTime()
	for _, name := range names {
		s, err := viz.ChannelSeries(res, name, unitFor[name])
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(viz.Plot(s, burnTime, plotWidth, plotHeight))
	}
	return nil
}

func validateMotor(cmd *cobra.Command, args []string) error {
	def, name, err := loadDefinition(args)
	if err != nil {
		return err
	}
	m, err := motor.FromDefinition(*def)
	if err != nil {
		return err
	}

	alerts := m.Validate()
	if ratio, ok := m.PortThroatRatio(); ok {
		fmt.Printf("%s: initial port/throat ratio %.3f\n", name, ratio)
	}
	if len(alerts) == 0 {
		fmt.Printf("%s: ok\n", name)
		return nil
	}
	fmt.Println(viz.RenderAlerts(alerts))
	if errs := alert.Filter(alerts, alert.Error); len(errs) > 0 {
		return fmt.Errorf("%s has %d errors", name, len(errs))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROPELLANT\tGRAINS\tTHROAT")
	for _, name := range config.ListPresets() {
		def := config.GetPreset(name)
		types := make([]string, len(def.Grains))
		for i, g := range def.Grains {
			types[i] = g.Type
		}
		prop := "none"
		if def.Propellant != nil {
			prop = def.Propellant.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f mm\n", name, prop, strings.Join(types, ", "), def.Nozzle.Throat*1000)
	}
	return w.Flush()
}

func newMotor(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	def := config.GetPreset(name)
	if def == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}
	if !force {
		if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := config.Save(path, *def); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
