// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/parsererror"
	"fjacquet/notas-pedidos/internal/textutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "NOTAS"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Export struct {
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	} `mapstructure:"export" yaml:"export"`

	Ledger struct {
		Delimiter       string   `mapstructure:"delimiter" yaml:"delimiter"`
		Encoding        string   `mapstructure:"encoding" yaml:"encoding"`
		ExclusionPrefix string   `mapstructure:"exclusion_prefix" yaml:"exclusion_prefix"`
		LoadedMarker    string   `mapstructure:"loaded_marker" yaml:"loaded_marker"`
		NumericColumns  []string `mapstructure:"numeric_columns" yaml:"numeric_columns"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Orders struct {
		CollapseBlankRows bool `mapstructure:"collapse_blank_rows" yaml:"collapse_blank_rows"`
	} `mapstructure:"orders" yaml:"orders"`

	Vendor struct {
		// File overrides the built-in vendor table when set.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"vendor" yaml:"vendor"`
}

// InitializeConfig loads defaults, then config.yaml from the usual locations,
// then NOTAS_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom is InitializeConfig with an explicit config file.
// An empty path searches the usual locations.
func InitializeConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.notas-pedidos")
		v.AddConfigPath(".notas-pedidos")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("export.date_format", "dd/mm/yyyy")

	v.SetDefault("ledger.delimiter", ";")
	v.SetDefault("ledger.encoding", "ISO-8859-1")
	v.SetDefault("ledger.exclusion_prefix", "PD X ")
	v.SetDefault("ledger.loaded_marker", "Cargado")
	v.SetDefault("ledger.numeric_columns", models.DefaultLedgerNumericColumns)

	v.SetDefault("orders.collapse_blank_rows", false)
	v.SetDefault("vendor.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &parsererror.ValidationError{Key: "log.level", Reason: fmt.Sprintf("unknown level %q", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &parsererror.ValidationError{Key: "log.format", Reason: fmt.Sprintf("%q must be 'text' or 'json'", config.Log.Format)}
	}

	if err := validateDelimiter("csv.delimiter", config.CSV.Delimiter); err != nil {
		return err
	}
	if err := validateDelimiter("ledger.delimiter", config.Ledger.Delimiter); err != nil {
		return err
	}

	if _, err := textutils.LookupEncoding(config.Ledger.Encoding); err != nil {
		return &parsererror.ValidationError{
			Key:    "ledger.encoding",
			Reason: fmt.Sprintf("%v, expected one of %v", err, textutils.SupportedEncodings()),
		}
	}

	if config.Ledger.LoadedMarker == "" {
		return &parsererror.ValidationError{Key: "ledger.loaded_marker", Reason: "must not be empty"}
	}

	return nil
}

func validateDelimiter(key, delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return &parsererror.ValidationError{Key: key, Reason: fmt.Sprintf("must be a single character, got %q", delimiter)}
	}
	switch delimiter {
	case "\"", "\r", "\n", string(utf8.RuneError):
		return &parsererror.ValidationError{Key: key, Reason: fmt.Sprintf("%q cannot be used as a delimiter", delimiter)}
	}
	return nil
}

// Rune returns the first character of a validated delimiter.
func Rune(delimiter string) rune {
	r, _ := utf8.DecodeRuneInString(delimiter)
	return r
}

// ConfigureLoggingFromConfig builds the application logger from the configuration
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
