// Command dotbits inspects and manipulates the bits of unsigned integers from the command line.
//
//	dotbits [flags] <command> <value> [args...]
//
// Values accept 0b, 0o and 0x prefixes. Results are printed to stdout, logs go to stderr.
// The resolved config can be printed with --print-config or stored with --save-config.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dotbits/configuration"
	"github.com/iotaledger/dotbits/ierrors"
	"github.com/iotaledger/dotbits/logger"
)

const (
	// EnvironmentPrefix is the prefix of all environment variables that override config keys.
	EnvironmentPrefix = "DOTBITS"

	ConfigurationKeyWidth  = "width"
	ConfigurationKeyFormat = "format"

	flagConfig      = "config"
	flagPrintConfig = "print-config"
	flagSaveConfig  = "save-config"
)

var (
	// ErrInvalidWidth is returned if the configured width is not supported.
	ErrInvalidWidth = ierrors.New("invalid width")
	// ErrInvalidFormat is returned if the configured output format is not supported.
	ErrInvalidFormat = ierrors.New("invalid output format")
)

// options holds the resolved settings of a single invocation.
type options struct {
	Width  uint
	Format string
	Logger logger.Config
}

func defaultOptions() map[string]interface{} {
	loggerCfg := logger.DefaultConfig()

	return map[string]interface{}{
		ConfigurationKeyWidth:  uint(64),
		ConfigurationKeyFormat: formatBin,
		"logger": map[string]interface{}{
			"level":             loggerCfg.Level,
			"disableCaller":     loggerCfg.DisableCaller,
			"disableStacktrace": loggerCfg.DisableStacktrace,
			"encoding":          loggerCfg.Encoding,
			"outputPaths":       loggerCfg.OutputPaths,
		},
	}
}

// newFlagSets returns the command line flags and the subset of them that maps to config keys.
func newFlagSets(stderr io.Writer) (*flag.FlagSet, *flag.FlagSet) {
	configFlags := configuration.NewUnsortedFlagSet("config", flag.ContinueOnError)
	configFlags.Uint(ConfigurationKeyWidth, 64, "bit width of values (8, 16, 32, 64, 128 or 0 for the native uint)")
	configFlags.String(ConfigurationKeyFormat, formatBin, "output format of values (bin, hex or dec)")
	configFlags.String(logger.ConfigurationKeyLevel, logger.DefaultConfig().Level, "minimum log level")
	configFlags.String(logger.ConfigurationKeyEncoding, logger.DefaultConfig().Encoding, "log encoding (console or json)")

	flagSet := configuration.NewUnsortedFlagSet("dotbits", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.AddFlagSet(configFlags)
	flagSet.String(flagConfig, "", "path to a JSON, YAML or TOML config file")
	flagSet.Bool(flagPrintConfig, false, "print the resolved config as JSON and exit")
	flagSet.String(flagSaveConfig, "", "store the resolved config to a JSON, YAML or TOML file")

	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dotbits [flags] <command> <value> [args...]\n\nCommands:\n%s\nFlags:\n", commandUsage())
		flagSet.PrintDefaults()
	}

	return flagSet, configFlags
}

// loadOptions merges defaults, the config file, environment variables and flags, in increasing priority.
func loadOptions(configPath string, configFlags *flag.FlagSet) (*options, *configuration.Configuration, error) {
	config := configuration.New()
	if err := config.LoadDefaults(defaultOptions()); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load default config")
	}

	if configPath != "" {
		if err := config.LoadFile(configPath); err != nil {
			return nil, nil, err
		}
	}

	if err := config.LoadEnvironmentVars(EnvironmentPrefix); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	if err := config.LoadFlagSet(configFlags); err != nil {
		return nil, nil, ierrors.Wrap(err, "unable to load flags")
	}

	opts := &options{
		Width:  config.Uint(ConfigurationKeyWidth),
		Format: config.String(ConfigurationKeyFormat),
		Logger: logger.DefaultConfig(),
	}
	if err := config.Unmarshal("logger", &opts.Logger); err != nil {
		return nil, nil, err
	}

	switch opts.Format {
	case formatBin, formatHex, formatDec:
	default:
		return nil, nil, ierrors.WithMessagef(ErrInvalidFormat, "%q", opts.Format)
	}

	return opts, config, nil
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	flagSet, configFlags := newFlagSets(stderr)
	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	configPath, _ := flagSet.GetString(flagConfig)
	opts, config, err := loadOptions(configPath, configFlags)
	if err != nil {
		return err
	}

	log, err := logger.NewRootLogger(opts.Logger)
	if err != nil {
		return err
	}

	d := newDispatcher(log, opts)
	//nolint:errcheck // syncing stderr fails on some platforms
	defer d.Logger().Sync()

	if savePath, _ := flagSet.GetString(flagSaveConfig); savePath != "" {
		if err := config.StoreFile(savePath); err != nil {
			return err
		}
		d.LogInfow("config saved", "path", savePath)

		if flagSet.NArg() == 0 {
			return nil
		}
	}

	if printConfig, _ := flagSet.GetBool(flagPrintConfig); printConfig {
		out, err := config.JSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(stdout, out)

		return err
	}

	result, err := d.dispatch(flagSet.Args())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, result)

	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
