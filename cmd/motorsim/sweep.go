package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/motorsim/internal/logging"
	"github.com/san-kum/motorsim/internal/server"
	"github.com/san-kum/motorsim/internal/sweep"
)

func sweepMotor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	def, name, err := loadDefinition(args)
	if err != nil {
		return err
	}
	vals, err := sweep.ParseValues(values)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"motor":   name,
		"param":   param,
		"points":  len(vals),
		"workers": workers,
	}).Info("sweep started")

	points, err := sweep.New(param, vals, workers).Run(ctx, *def)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tSTATUS\tMOTOR\t%s\n", param, metric)
	for _, p := range points {
		switch {
		case p.Err != nil:
			fmt.Fprintf(w, "%g\terror\t-\t%v\n", p.Value, p.Err)
		case !p.Success:
			fmt.Fprintf(w, "%g\trejected\t-\t-\n", p.Value)
		default:
			val, ok := p.Stats.Values()[metric]
			if !ok {
				return fmt.Errorf("unknown metric: %s", metric)
			}
			fmt.Fprintf(w, "%g\tok\t%s\t%.6g\n", p.Value, p.Stats.Designation, val)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, ok := sweep.Best(points, metric, maximize)
	if !ok {
		return fmt.Errorf("no successful run to rank by %s", metric)
	}
	fmt.Printf("\nbest %s = %g (%s %.6g)\n", param, best.Value, metric, best.Stats.Values()[metric])
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return server.New(addr, logging.FromContext(ctx)).Serve(ctx)
}
