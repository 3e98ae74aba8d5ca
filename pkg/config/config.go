// Package config resolves the settings of the address processor from
// defaults, an optional config file, ADDRESSPROC_* environment variables
// and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"addressprocessor/pkg/pipeline"
	"addressprocessor/pkg/transform"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by New.
const EnvPrefix = "ADDRESSPROC"

const (
	KeyLog         = "log"
	KeyLogLevel    = "log-level"
	KeyTrim        = "normalize.trim"
	KeyCollapse    = "normalize.collapse"
	KeyNFC         = "normalize.nfc"
	KeySanitize    = "normalize.sanitize"
	KeyTitleCase   = "normalize.title-case"
	KeyOnMalformed = "on-malformed"
)

var errInvalidLogLevel = errors.New("invalid log level")

// Config holds the resolved settings.
type Config struct {
	LogPath     string
	LogLevel    slog.Level
	Normalize   Normalize
	OnMalformed pipeline.MalformedPolicy
}

// Normalize selects the record transforms applied while copying.
type Normalize struct {
	Trim      bool
	Collapse  bool
	NFC       bool
	Sanitize  bool
	TitleCase string
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLog, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTrim, false)
	v.SetDefault(KeyCollapse, false)
	v.SetDefault(KeyNFC, false)
	v.SetDefault(KeySanitize, false)
	v.SetDefault(KeyTitleCase, "")
	v.SetDefault(KeyOnMalformed, pipeline.OnMalformedStop.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag of flags whose name is in keys to that key.
// keys maps flag names to config keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag %q not defined", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads configFile, when set, and resolves the settings.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, fmt.Errorf("%w %q", errInvalidLogLevel, v.GetString(KeyLogLevel))
	}
	policy, err := pipeline.ParseMalformedPolicy(v.GetString(KeyOnMalformed))
	if err != nil {
		return nil, err
	}

	return &Config{
		LogPath:  v.GetString(KeyLog),
		LogLevel: level,
		Normalize: Normalize{
			Trim:      v.GetBool(KeyTrim),
			Collapse:  v.GetBool(KeyCollapse),
			NFC:       v.GetBool(KeyNFC),
			Sanitize:  v.GetBool(KeySanitize),
			TitleCase: v.GetString(KeyTitleCase),
		},
		OnMalformed: policy,
	}, nil
}

// Options turns the selection into transform options, in application order.
func (n Normalize) Options() []transform.Option {
	var opts []transform.Option
	if n.Sanitize {
		opts = append(opts, transform.WithSanitize())
	}
	if n.NFC {
		opts = append(opts, transform.WithUnicodeNFC())
	}
	if n.Collapse {
		opts = append(opts, transform.WithCollapseSpaces())
	}
	if n.Trim {
		opts = append(opts, transform.WithTrimSpace())
	}
	if n.TitleCase != "" {
		opts = append(opts, transform.WithTitleCaseNames(n.TitleCase))
	}
	return opts
}

// Enabled reports whether any transform is selected.
func (n Normalize) Enabled() bool {
	return n.Trim || n.Collapse || n.NFC || n.Sanitize || n.TitleCase != ""
}
