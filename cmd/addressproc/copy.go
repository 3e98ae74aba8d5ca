package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apiStreams "addressprocessor/pkg/api/streams"
	"addressprocessor/pkg/pipeline"
	"addressprocessor/pkg/streams"
	"addressprocessor/pkg/transform"

	"github.com/spf13/cobra"
)

func copyCmd(a *app) *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy <input> <output>",
		Short: "Copy a contact file, optionally normalizing it",
		Long: "Copy reads two column records from input and writes them to output.\n" +
			"Fields after the second are dropped. By default copying stops at the\n" +
			"first line without a tab; use --on-malformed=skip to carry on.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			src, err := streams.NewRecordReader(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			return a.writeRecords(cmd.Context(), cmd.OutOrStdout(), src, args[1])
		},
	}
	copyCmd.Flags().AddFlagSet(normalizeFlags())
	return copyCmd
}

// writeRecords copies src into a new file at output and prints the counts.
func (a *app) writeRecords(ctx context.Context, out io.Writer, src apiStreams.RecordSource, output string) error {
	opts := []pipeline.Option{pipeline.WithMalformedPolicy(a.cfg.OnMalformed)}
	if a.cfg.Normalize.Enabled() {
		normalizer, err := transform.New(a.cfg.Normalize.Options()...)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithTransformer(normalizer))
	}

	dst, err := streams.NewRecordWriter(output)
	if err != nil {
		return err
	}
	defer dst.Close()

	stats, err := pipeline.Copy(ctx, src, dst, opts...)
	if err != nil {
		return fmt.Errorf("copy to %q failed after %d records: %w", output, stats.Written, err)
	}
	slog.InfoContext(ctx, "Copy done", "output", output, "read", stats.Read, "written", stats.Written, "skipped", stats.Skipped)
	fmt.Fprintf(out, "read %d, written %d, skipped %d\n", stats.Read, stats.Written, stats.Skipped)
	return nil
}
