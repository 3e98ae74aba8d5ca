package main

import (
	"fmt"
	"os"

	"addressprocessor/pkg/contacts"
	"addressprocessor/pkg/streams"

	"github.com/spf13/cobra"
)

func importJsonCmd(a *app) *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import-json <input.json> <output>",
		Short: "Convert a JSON array of contacts into a contact file",
		Long: "import-json reads [{\"name\": ..., \"address\": ...}, ...] and writes one\n" +
			"tab separated line per contact.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open contacts JSON file %q: %w", args[0], err)
			}
			defer file.Close()

			src, err := contacts.NewJsonSource(streams.NewJsonStream(file))
			if err != nil {
				return err
			}
			return a.writeRecords(cmd.Context(), cmd.OutOrStdout(), src, args[1])
		},
	}
	importCmd.Flags().AddFlagSet(normalizeFlags())
	return importCmd
}
