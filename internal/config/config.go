package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/swap-form/internal/app"
	"github.com/atomicstack/swap-form/internal/ui"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix      = "SWAP_FORM"
	configFileName = ".swap-form"

	keyConfig           = "config"
	keyVariant          = "variant"
	keyWidth            = "width"
	keyHeight           = "height"
	keyFooter           = "footer"
	keyValidateOnChange = "validate-on-change"
	keyTrace            = "trace"
	keyLogFile          = "log-file"
	keyTokens           = "tokens"
)

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "path to a YAML config file (default .swap-form.yaml in . or $HOME)")
	fs.String(keyVariant, string(ui.VariantSearch), "token field style: search or plain")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "enable footer hint row (disabled by default)")
	fs.Bool(keyValidateOnChange, false, "validate fields while typing")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.StringSlice(keyTokens, nil, "token symbols offered by the selectors (default reference catalog)")
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "load %s", path)
		}
	}
	return nil
}

// LoadArgs parses args with a fresh flag set. Tests use it to supply
// specific arguments; the environment is read from the process.
func LoadArgs(args []string) (Config, error) {
	fs := pflag.NewFlagSet("swap-form", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration with precedence flags > SWAP_FORM_*
// environment > config file > defaults.
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}
	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Variant:          v.GetString(keyVariant),
			Width:            v.GetInt(keyWidth),
			Height:           v.GetInt(keyHeight),
			ShowFooter:       v.GetBool(keyFooter),
			ValidateOnChange: v.GetBool(keyValidateOnChange),
			Tokens:           splitTokens(v.GetStringSlice(keyTokens)),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: v.ConfigFileUsed(),
	}
	cfg.Flags = map[string]string{
		"variant":          cfg.App.Variant,
		"width":            strconv.Itoa(cfg.App.Width),
		"height":           strconv.Itoa(cfg.App.Height),
		"footer":           strconv.FormatBool(cfg.App.ShowFooter),
		"validateOnChange": strconv.FormatBool(cfg.App.ValidateOnChange),
		"trace":            strconv.FormatBool(cfg.Logging.Trace),
		"logFile":          cfg.Logging.FilePath,
		"tokens":           strings.Join(cfg.App.Tokens, ","),
		"config":           cfg.File,
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
		return nil
	}
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// splitTokens accepts comma separated entries as produced by environment
// variables and flattens them into symbols.
func splitTokens(values []string) []string {
	parts := lo.FlatMap(values, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})
	parts = lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}

// Validate rejects configuration that cannot start the form.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return errors.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return errors.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if _, ok := ui.ParseVariant(cfg.App.Variant); !ok {
		return errors.Errorf("variant must be search or plain (got %q)", cfg.App.Variant)
	}
	if _, err := cfg.App.Registry(); err != nil {
		return err
	}
	return nil
}
