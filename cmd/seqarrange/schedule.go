package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	seqarrange "github.com/gosequential/seqarrange"
	"github.com/gosequential/seqarrange/ioformat"
	"github.com/gosequential/seqarrange/seq"
)

type scheduleFlags struct {
	inputFile       string
	outputFile      string
	printerFile     string
	objectGroupSize int
	decimation      string
	precision       string
	assumptions     string
	lepox           string
	interactive     string
	timeout         time.Duration
}

func newScheduleCmd() *cobra.Command {
	f := &scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Read objects and a printer profile, and write a scheduled plate layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.Context(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.inputFile, "input-file", "", "objects-export file (required)")
	flags.StringVar(&f.outputFile, "output-file", "", "schedule output file (required)")
	flags.StringVar(&f.printerFile, "printer-file", "", "printer geometry file, JSON or YAML (required)")
	flags.IntVar(&f.objectGroupSize, "object-group-size", 0, "override the default object group size (0 = keep the solver configuration default)")
	flags.StringVar(&f.decimation, "decimation", "yes", "simplify object polygons before scheduling: yes|no")
	flags.StringVar(&f.precision, "precision", "low", "decimation tolerance: low|high")
	flags.StringVar(&f.assumptions, "assumptions", "no", "solve in consequential mode, pinning group members absent instead of dropping them: yes|no")
	flags.StringVar(&f.lepox, "lepox", "no", "pin lepox-adjacent pairs into a bounded temporal window: yes|no")
	flags.StringVar(&f.interactive, "interactive", "no", "write one file per plate instead of a single combined file: yes|no")
	flags.DurationVar(&f.timeout, "timeout", 10*time.Second, "per-attempt solver timeout")

	cmd.MarkFlagRequired("input-file")
	cmd.MarkFlagRequired("output-file")
	cmd.MarkFlagRequired("printer-file")

	return cmd
}

func runSchedule(ctx context.Context, f *scheduleFlags) error {
	geometry, err := readPrinterFile(f.printerFile)
	if err != nil {
		return fmt.Errorf("reading printer file: %w", err)
	}

	objectsFile, err := os.Open(f.inputFile)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer objectsFile.Close()

	objects, err := ioformat.ReadObjects(objectsFile)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	cfg := seq.DefaultSolverConfiguration(geometry)
	cfg.OptimizationTimeout = f.timeout
	if f.objectGroupSize > 0 {
		cfg.ObjectGroupSize = f.objectGroupSize
	}
	if strings.EqualFold(f.precision, "high") {
		cfg.DecimationPrecision = seq.DecimationHigh
	} else {
		cfg.DecimationPrecision = seq.DecimationLow
	}
	if strings.EqualFold(f.decimation, "no") {
		cfg.DecimationPrecision = seq.DecimationUndefined
	}
	cfg.EnableConsequentialMode = !strings.EqualFold(f.assumptions, "no")
	cfg.EnableConsequentialLepox = !strings.EqualFold(f.lepox, "no")

	plates, err := seqarrange.Schedule(ctx, cfg, geometry, objects, nil)
	if err != nil {
		return err
	}

	interactive := strings.EqualFold(f.interactive, "yes")
	if err := ioformat.WritePlates(f.outputFile, plates, interactive); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	fmt.Printf("scheduled %d object(s) across %d plate(s)\n", len(objects), len(plates))
	return nil
}

func readPrinterFile(path string) (seq.PrinterGeometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return seq.PrinterGeometry{}, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return ioformat.ReadPrinterYAML(f)
	}
	return ioformat.ReadPrinterJSON(f)
}

// exitCodeFor maps a top-level error to the reference driver's exit codes:
// 0 success, -1 an object could never fit the bed, -2 scheduling otherwise
// failed outright.
func exitCodeFor(err error) int {
	var tooLarge *seq.ObjectTooLargeError
	if errors.As(err, &tooLarge) {
		return -1
	}
	if errors.Is(err, seq.ErrCompleteSchedulingFailure) {
		return -2
	}
	return 1
}
