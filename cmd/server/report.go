package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csg33k/roster/internal/config"
)

var (
	reportOut    string
	reportSearch string
	reportSort   string
)

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	// The PDF may go to stdout, so logs move to stderr.
	rt, err := bootstrap(ctx, func(c *config.Config) { c.Logger.Output = "stderr" })
	if err != nil {
		return err
	}
	defer rt.logger.Sync() //nolint:errcheck

	rt.session.Search(reportSearch)
	rt.session.SetSort(reportSort)

	var w io.Writer = cmd.OutOrStdout()
	if reportOut != "-" {
		f, err := os.Create(reportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", reportOut, err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := rt.session.Report(ctx, bw); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	rt.logger.Info("report written", zap.String("out", reportOut))
	return nil
}
