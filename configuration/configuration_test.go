package configuration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/dotbits/configuration"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, content, 0o600))

	return filePath
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "123", "test")
	require.NoError(t, testFlagSet.Set("A", "321"))

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "321", config.String("A"))
	require.Equal(t, "321", config.String("a"))
}

func TestFlagDefaultsDoNotOverwrite(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Uint("width", 64, "test")
	testFlagSet.String("format", "bin", "test")

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{"width": 8}))
	require.NoError(t, testFlagSet.Parse([]string{"--format", "hex"}))
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.EqualValues(t, 8, config.Uint("width"))
	require.Equal(t, "hex", config.String("format"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")
	testFlagSet.String("logger.level", "info", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")
	t.Setenv("TEST_LOGGER_LEVEL", "debug")

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.Equal(t, "321", config.String("B"))
	require.Equal(t, "debug", config.String("logger.level"))

	require.Empty(t, config.String("c"), "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	content, err := json.MarshalIndent(map[string]int{"C": 321}, "", "    ")
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", content)))

	require.EqualValues(t, 321, config.Uint("C"))
}

func TestFetchYAMLFile(t *testing.T) {
	content, err := yaml.Marshal(map[string]interface{}{
		"D":      321,
		"Logger": map[string]interface{}{"Level": "warn"},
	})
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yml", content)))

	require.EqualValues(t, 321, config.Uint("D"))
	require.Equal(t, "warn", config.String("logger.level"))
	require.Equal(t, "warn", config.String("Logger.Level"))
}

func TestFetchTOMLFile(t *testing.T) {
	content, err := toml.Marshal(map[string]interface{}{
		"Width":  16,
		"Signed": true,
	})
	require.NoError(t, err)

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.toml", content)))

	require.EqualValues(t, 16, config.Uint("width"))
	require.Equal(t, "true", config.String("signed"))
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, configuration.ErrConfigDoesNotExist)

	err = config.LoadFile(writeFile(t, "config.ini", []byte("a=1")))
	require.ErrorIs(t, err, configuration.ErrUnknownConfigFormat)

	err = config.LoadFile(writeFile(t, "config.json", []byte("{")))
	require.Error(t, err)
}

func TestStoreFile(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"Format": "hex",
		"logger": map[string]interface{}{"encoding": "json"},
	}))

	for _, name := range []string{"out.json", "out.yaml", "out.toml"} {
		filePath := filepath.Join(t.TempDir(), name)
		require.NoError(t, config.StoreFile(filePath))

		restored := configuration.New()
		require.NoError(t, restored.LoadFile(filePath))
		require.Equal(t, "hex", restored.String("format"))
		require.Equal(t, "json", restored.String("logger.encoding"))
	}

	require.ErrorIs(t, config.StoreFile(filepath.Join(t.TempDir(), "out.txt")), configuration.ErrUnknownConfigFormat)
}

func TestUnmarshal(t *testing.T) {
	type loggerConfig struct {
		Level    string `koanf:"level"`
		Encoding string `koanf:"encoding"`
	}

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"logger": map[string]interface{}{"Level": "error", "Encoding": "json"},
	}))

	var cfg loggerConfig
	require.NoError(t, config.Unmarshal("Logger", &cfg))
	require.Equal(t, loggerConfig{Level: "error", Encoding: "json"}, cfg)
}

func TestMergeParameters(t *testing.T) {
	content, err := json.MarshalIndent(map[string]int{"E": 321}, "", "    ")
	require.NoError(t, err)

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.Int("F", 321, "test")

	t.Setenv("TEST_F", "322")

	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", content)))
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.EqualValues(t, 321, config.Uint("E"))
	require.Equal(t, "322", config.String("F"))
	require.EqualValues(t, 322, config.Uint("f"))

	// all keys should be lower cased
	out, err := config.JSON()
	require.NoError(t, err)
	require.Contains(t, out, `"e": 321`)
	require.Contains(t, out, `"f": "322"`)
	require.NotContains(t, out, `"E"`)
	require.NotContains(t, out, `"F"`)
}

func TestUnsortedFlagSet(t *testing.T) {
	flagSet := configuration.NewUnsortedFlagSet("test", flag.ContinueOnError)
	flagSet.String("zeta", "", "")
	flagSet.String("alpha", "", "")

	var names []string
	flagSet.VisitAll(func(f *flag.Flag) {
		names = append(names, f.Name)
	})

	require.Equal(t, []string{"zeta", "alpha"}, names)
}
