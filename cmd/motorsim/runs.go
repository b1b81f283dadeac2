package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/motorsim/internal/export"
	"github.com/san-kum/motorsim/internal/storage"
)

const (
	svgWidth  = 800
	svgHeight = 400
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(settings.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSTATUS\tMOTOR\tIMPULSE\tBURN")

	for _, run := range runs {
		status := "ok"
		if !run.Success {
			status = "rejected"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f Ns\t%.2fs\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			status,
			run.Designation,
			run.Metrics["impulse"],
			run.Metrics["burnTime"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(settings.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}
	if res.Len() < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("motor: %s %s\n", meta.Name, meta.Designation)
	fmt.Printf("samples: %d\n", res.Len())

	return printPlots(res, channels, displayUnits())
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(settings.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	res, err := st.LoadResult(runID)
	if err != nil {
		return err
	}

	switch format {
	case "csv", "json", "eng", "xlsx", "svg":
	default:
		return fmt.Errorf("unknown export format: %s", format)
	}

	var w io.Writer = os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		err = export.WriteCSV(w, res)
	case "xlsx":
		err = export.WriteXLSX(w, res)
	case "svg":
		err = export.WriteSVG(w, res, svgWidth, svgHeight)
	case "json", "eng":
		def, lerr := st.LoadMotor(runID)
		if lerr != nil {
			return lerr
		}
		if format == "json" {
			err = export.WriteJSON(w, meta.Name, *def, res)
		} else {
			err = export.WriteENG(w, meta.Name, *def, res)
		}
	}
	if err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(os.Stderr, "exported %s to %s\n", runID, outFile)
	}
	return nil
}
