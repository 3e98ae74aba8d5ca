package main

import (
	"addressprocessor/pkg/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"log":          config.KeyLog,
	"log-level":    config.KeyLogLevel,
	"trim":         config.KeyTrim,
	"collapse":     config.KeyCollapse,
	"nfc":          config.KeyNFC,
	"sanitize":     config.KeySanitize,
	"title-case":   config.KeyTitleCase,
	"on-malformed": config.KeyOnMalformed,
}

func rootCmd(a *app) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "addressproc",
		Short: "Copy and inspect tab separated contact files",
		Long: "addressproc copies two column contact files (name, address separated by a tab),\n" +
			"optionally normalizing them, imports contacts from JSON and reports them by country.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// only the running command's flags are bound, so commands sharing
			// a flag name do not shadow each other
			if err := config.BindFlags(a.v, cmd.Flags(), definedFlagKeys(cmd.Flags())); err != nil {
				return err
			}
			return a.load(configFile)
		},
	}

	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.StringVar(&configFile, "config", "", "Path to a config file (yaml, toml or json)")
	rootFlags.StringP("log", "l", "", "Path to log file. Default is stderr")
	rootFlags.String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)

	rootCmd.AddCommand(copyCmd(a))
	rootCmd.AddCommand(importJsonCmd(a))
	rootCmd.AddCommand(reportCmd(a))

	return rootCmd
}

func definedFlagKeys(flags *pflag.FlagSet) map[string]string {
	keys := make(map[string]string, len(flagKeys))
	for name, key := range flagKeys {
		if flags.Lookup(name) != nil {
			keys[name] = key
		}
	}
	return keys
}

// normalizeFlags defines the flags of the commands that write records.
func normalizeFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("normalize", pflag.ContinueOnError)
	flags.Bool("trim", false, "Trim white space around fields")
	flags.Bool("collapse", false, "Collapse runs of white space inside fields")
	flags.Bool("nfc", false, "Normalize fields to Unicode NFC")
	flags.Bool("sanitize", false, "Replace tabs and line breaks inside fields with spaces")
	flags.String("title-case", "", "Title-case names using the rules of this language tag, e.g. en")
	flags.String("on-malformed", "stop", "What to do with a line that is not a record: stop or skip")
	return flags
}
