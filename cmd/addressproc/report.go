package main

import (
	"fmt"
	"log/slog"

	apiReport "addressprocessor/pkg/api/report"
	apiStreams "addressprocessor/pkg/api/streams"
	"addressprocessor/pkg/pipeline"
	"addressprocessor/pkg/report"
	"addressprocessor/pkg/streams"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const reportQueueSize = 1000

func reportCmd(a *app) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report <input>",
		Short: "Count contacts per country",
		Long: "report groups the records of a contact file by the last '|' separated part\n" +
			"of their address and prints the count and share of every country.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			src, err := streams.NewRecordReader(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			records := make(chan apiStreams.Record, reportQueueSize)
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error {
				stats, err := pipeline.Emit(ctx, src, records, pipeline.WithMalformedPolicy(a.cfg.OnMalformed))
				slog.DebugContext(ctx, "Records read", "read", stats.Read, "skipped", stats.Skipped)
				return err
			})

			var shares []apiReport.GroupShare
			eg.Go(func() error {
				var err error
				shares, err = report.NewCountryBreakdown().Process(ctx, records)
				if err != nil {
					// unblock the reader
					for range records {
					}
				}
				return err
			})
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range shares {
				fmt.Fprintf(out, "%s\t%d\t%s%%\n", s.GroupKey(), s.Count(), s.Percent())
			}
			return nil
		},
	}
	reportCmd.Flags().String("on-malformed", "stop", "What to do with a line that is not a record: stop or skip")
	return reportCmd
}
