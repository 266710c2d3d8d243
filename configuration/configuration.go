package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dotbits/ierrors"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = ierrors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (defaults, file, env vars, flags).
// All keys are lower cased.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given flat or nested map into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowered := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowered[key] = value
	}
	mapToLowerKeys(lowered)

	return c.config.Load(confmap.Provider(lowered, "."), nil)
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return ierrors.WithMessagef(ErrConfigDoesNotExist, "%s", filePath)
		}

		return ierrors.Wrapf(err, "unable to access config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// StoreFile stores the current config to a JSON, YAML or TOML file.
func (c *Configuration) StoreFile(filePath string) error {
	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(c.config.Raw())
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return ierrors.Wrap(err, "unable to save config file")
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, underscores separate nested keys.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Unmarshal decodes the config below the given path into the struct pointed to by out.
// Struct fields are matched by their koanf tag, ignoring case.
func (c *Configuration) Unmarshal(path string, out interface{}) error {
	if err := c.config.UnmarshalWithConf(strings.ToLower(path), out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return ierrors.Wrapf(err, "unable to unmarshal config %q", path)
	}

	return nil
}

// String returns the value of the given key as a string.
func (c *Configuration) String(key string) string {
	return cast.ToString(c.config.Get(strings.ToLower(key)))
}

// Uint returns the value of the given key as a uint.
func (c *Configuration) Uint(key string) uint {
	return cast.ToUint(c.config.Get(strings.ToLower(key)))
}

// JSON returns the loaded config as indented JSON.
func (c *Configuration) JSON() (string, error) {
	data, err := json.MarshalIndent(c.config.Raw(), "", "  ")
	if err != nil {
		return "", ierrors.Wrap(err, "unable to marshal config")
	}

	return string(data), nil
}

func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{indent: "  "}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.WithMessagef(ErrUnknownConfigFormat, "%s", filePath)
	}
}
