package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"energy-flow/internal/circuit"
)

const (
	configName = "energy-flow"
	envPrefix  = "ENERGYFLOW"
)

// Range is an inclusive slider range.
type Range struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

type CircuitConfig struct {
	Mode       string  `json:"mode" mapstructure:"mode"`
	Voltage    float64 `json:"voltage" mapstructure:"voltage"`
	Resistance float64 `json:"resistance" mapstructure:"resistance"`
	Frequency  float64 `json:"frequency" mapstructure:"frequency"`
}

type FieldsConfig struct {
	Electric bool `json:"electric" mapstructure:"electric"`
	Magnetic bool `json:"magnetic" mapstructure:"magnetic"`
	Poynting bool `json:"poynting" mapstructure:"poynting"`
}

type BoundsConfig struct {
	Voltage    Range `json:"voltage" mapstructure:"voltage"`
	Resistance Range `json:"resistance" mapstructure:"resistance"`
	Frequency  Range `json:"frequency" mapstructure:"frequency"`
}

type ClockConfig struct {
	Step float64 `json:"step" mapstructure:"step"`
}

type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

type ExportConfig struct {
	XLSX    string  `json:"xlsx" mapstructure:"xlsx"`
	TSV     string  `json:"tsv" mapstructure:"tsv"`
	Plot    string  `json:"plot" mapstructure:"plot"`
	Samples int     `json:"samples" mapstructure:"samples"`
	Step    float64 `json:"step" mapstructure:"step"`
}

// Settings is the full application configuration.
type Settings struct {
	LogLevel  string        `json:"logLevel" mapstructure:"logLevel"`
	Circuit   CircuitConfig `json:"circuit" mapstructure:"circuit"`
	Fields    FieldsConfig  `json:"fields" mapstructure:"fields"`
	Bounds    BoundsConfig  `json:"bounds" mapstructure:"bounds"`
	Clock     ClockConfig   `json:"clock" mapstructure:"clock"`
	Window    WindowConfig  `json:"window" mapstructure:"window"`
	Export    ExportConfig  `json:"export" mapstructure:"export"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("circuit.mode", "dc")
	viper.SetDefault("circuit.voltage", 10.0)
	viper.SetDefault("circuit.resistance", 5.0)
	viper.SetDefault("circuit.frequency", 1.0)

	viper.SetDefault("fields.electric", true)
	viper.SetDefault("fields.magnetic", true)
	viper.SetDefault("fields.poynting", true)

	viper.SetDefault("bounds.voltage.min", 1.0)
	viper.SetDefault("bounds.voltage.max", 24.0)
	viper.SetDefault("bounds.resistance.min", 1.0)
	viper.SetDefault("bounds.resistance.max", 50.0)
	viper.SetDefault("bounds.frequency.min", 0.1)
	viper.SetDefault("bounds.frequency.max", 5.0)

	viper.SetDefault("clock.step", 0.02)

	viper.SetDefault("window.width", 900)
	viper.SetDefault("window.height", 500)

	viper.SetDefault("export.xlsx", "")
	viper.SetDefault("export.tsv", "")
	viper.SetDefault("export.plot", "")
	viper.SetDefault("export.samples", 200)
	viper.SetDefault("export.step", 0.01)
}

// Flags declares the command-line overrides. Bind them with Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.String("config-dir", ".", "directory holding energy-flow.json")
	fs.String("logLevel", "info", "log level: trace, debug, info, warn, error")
	fs.String("circuit.mode", "dc", "source mode: dc or ac")
	fs.Float64("circuit.voltage", 10, "source voltage (amplitude in AC mode)")
	fs.Float64("circuit.resistance", 5, "load resistance in ohms")
	fs.Float64("circuit.frequency", 1, "AC frequency in Hz")
	fs.Float64("clock.step", 0.02, "simulation time added per frame")
	fs.String("export.xlsx", "", "write a waveform table to this .xlsx file and exit")
	fs.String("export.tsv", "", "write a waveform table to this .tsv file and exit")
	fs.String("export.plot", "", "write a waveform plot to this .png file and exit")
	fs.Int("export.samples", 200, "number of samples to export")
	fs.Float64("export.step", 0.01, "time between exported samples")
	return fs
}

// ParseArgs parses command-line arguments into a fresh flag set and returns
// it with the config directory. --help yields an error wrapping
// pflag.ErrHelp.
func ParseArgs(args []string) (*pflag.FlagSet, string, error) {
	fs := Flags()
	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("error parsing flags: %w", err)
	}
	dir, err := fs.GetString("config-dir")
	if err != nil {
		return nil, "", fmt.Errorf("error reading config-dir: %w", err)
	}
	return fs, dir, nil
}

// Load reads energy-flow.json from configDir if it exists, applies
// ENERGYFLOW_* environment variables and any changed flags, and validates
// the result. A missing file leaves the defaults in place.
func Load(configDir string, flags *pflag.FlagSet) (Settings, error) {
	setDefaults()

	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("error binding flags: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks everything the engine cannot check for itself.
func (s Settings) Validate() error {
	for name, r := range map[string]Range{
		"voltage":    s.Bounds.Voltage,
		"resistance": s.Bounds.Resistance,
		"frequency":  s.Bounds.Frequency,
	} {
		if !(r.Min > 0) || r.Max < r.Min {
			return fmt.Errorf("config: bounds.%s must satisfy 0 < min <= max, got [%g, %g]", name, r.Min, r.Max)
		}
	}
	if _, err := circuit.ParseMode(s.Circuit.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("config: window must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if !positiveFinite(s.Clock.Step) {
		return fmt.Errorf("config: clock.step must be a positive number, got %g", s.Clock.Step)
	}
	if !positiveFinite(s.Export.Step) {
		return fmt.Errorf("config: export.step must be a positive number, got %g", s.Export.Step)
	}
	if s.Export.Samples < 0 {
		return fmt.Errorf("config: export.samples must be >= 0, got %d", s.Export.Samples)
	}
	return nil
}

// Model converts the settings to the engine configuration, clamping each
// quantity into its slider bounds.
func (s Settings) Model() (circuit.Config, error) {
	mode, err := circuit.ParseMode(s.Circuit.Mode)
	if err != nil {
		return circuit.Config{}, err
	}
	var fields circuit.FieldSet
	fields = fields.With(circuit.Electric, s.Fields.Electric)
	fields = fields.With(circuit.Magnetic, s.Fields.Magnetic)
	fields = fields.With(circuit.Poynting, s.Fields.Poynting)

	return circuit.Config{
		Mode:       mode,
		Voltage:    s.Bounds.Voltage.Clamp(s.Circuit.Voltage),
		Resistance: s.Bounds.Resistance.Clamp(s.Circuit.Resistance),
		Frequency:  s.Bounds.Frequency.Clamp(s.Circuit.Frequency),
		Fields:     fields,
	}, nil
}

// Exporting reports whether any export target is configured.
func (s Settings) Exporting() bool {
	return s.Export.XLSX != "" || s.Export.TSV != "" || s.Export.Plot != ""
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
