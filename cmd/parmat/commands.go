// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmat/dispatch"
	"github.com/katalvlaran/parmat/matrix"
	"github.com/katalvlaran/parmat/plan"
)

// cliFlags holds every flag the subcommands read.
type cliFlags struct {
	verbose   bool
	input     string
	inFormat  string
	outFormat string
	workers   int
	limit     int
	rows      int
	cols      int
}

// newRootCmd wires the command tree. Each call returns a fresh tree so tests
// can run commands in isolation.
func newRootCmd() *cobra.Command {
	f := &cliFlags{}
	var logger *slog.Logger

	root := &cobra.Command{
		Use:           "parmat",
		Short:         "Partition dense matrices across parallel workers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if f.verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the partition plan for a matrix file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, f, logger)
		},
	}
	planCmd.Flags().StringVarP(&f.input, "input", "i", "", "matrix file (- for stdin)")
	planCmd.Flags().StringVarP(&f.inFormat, "format", "f", "", "input format: yaml, json or cbor (default: from extension)")
	planCmd.Flags().StringVarP(&f.outFormat, "out-format", "o", string(plan.FormatYAML), "output format: yaml, json or cbor")
	planCmd.Flags().IntVarP(&f.workers, "workers", "w", 1, "number of workers")
	_ = planCmd.MarkFlagRequired("input")

	fillCmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill a zero matrix with each element's worker index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFill(cmd, f, logger)
		},
	}
	fillCmd.Flags().IntVarP(&f.rows, "rows", "r", 3, "matrix rows")
	fillCmd.Flags().IntVarP(&f.cols, "cols", "c", 3, "matrix columns")
	fillCmd.Flags().IntVarP(&f.workers, "workers", "w", 1, "number of workers")
	fillCmd.Flags().IntVarP(&f.limit, "limit", "l", dispatch.DefaultLimit, "max concurrent workers (0 = unbounded)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a plan file covers its matrix exactly once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd, f, logger)
		},
	}
	verifyCmd.Flags().StringVarP(&f.input, "input", "i", "", "plan file (- for stdin)")
	verifyCmd.Flags().StringVarP(&f.inFormat, "format", "f", "", "plan format: yaml, json or cbor (default: from extension)")
	_ = verifyCmd.MarkFlagRequired("input")

	root.AddCommand(planCmd, fillCmd, verifyCmd)

	return root
}

func runPlan(cmd *cobra.Command, f *cliFlags, logger *slog.Logger) error {
	inFmt, err := resolveFormat(f.inFormat, f.input)
	if err != nil {
		return err
	}
	outFmt, err := plan.ParseFormat(f.outFormat)
	if err != nil {
		return err
	}

	r, closeFn, err := openInput(cmd, f.input)
	if err != nil {
		return err
	}
	defer closeFn()

	m, err := plan.LoadMatrix[float64](r, inFmt)
	if err != nil {
		return err
	}
	rows, cols := m.Shape()
	logger.Debug("matrix loaded", "path", f.input, "rows", rows, "cols", cols)

	p, err := plan.Build(m, f.workers)
	if err != nil {
		return err
	}

	return plan.Encode(cmd.OutOrStdout(), p, outFmt)
}

func runFill(cmd *cobra.Command, f *cliFlags, logger *slog.Logger) error {
	if f.rows < 1 || f.cols < 1 {
		return fmt.Errorf("fill: shape %dx%d: %w", f.rows, f.cols, matrix.ErrEmptyMatrix)
	}
	data := make([][]int, f.rows)
	for i := range data {
		data[i] = make([]int, f.cols)
	}
	m, err := matrix.New(data, matrix.WithAdoptRows())
	if err != nil {
		return err
	}

	rep, err := dispatch.Run(context.Background(), m, f.workers,
		func(_ context.Context, seg *matrix.Segment[int]) error {
			w := seg.Worker()
			seg.Apply(func(_, _ int, _ int) int { return w })
			return nil
		},
		dispatch.WithLogger(logger),
		dispatch.WithLimit(f.limit),
	)
	if err != nil {
		return err
	}
	logger.Debug("fill finished", "busy", rep.Busy, "idle", rep.Idle, "elapsed", rep.Elapsed)

	_, err = io.WriteString(cmd.OutOrStdout(), m.String())

	return err
}

func runVerify(cmd *cobra.Command, f *cliFlags, logger *slog.Logger) error {
	inFmt, err := resolveFormat(f.inFormat, f.input)
	if err != nil {
		return err
	}
	r, closeFn, err := openInput(cmd, f.input)
	if err != nil {
		return err
	}
	defer closeFn()

	p, err := plan.Decode(r, inFmt)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		logger.Warn("plan rejected", "path", f.input, "error", err)
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %dx%d across %d workers\n", p.Rows, p.Cols, p.Workers)

	return err
}

// resolveFormat prefers an explicit flag and falls back to the file extension.
func resolveFormat(flag, path string) (plan.Format, error) {
	if flag != "" {
		return plan.ParseFormat(flag)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return plan.FormatYAML, nil
	}

	return plan.ParseFormat(ext)
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return fh, func() { _ = fh.Close() }, nil
}
