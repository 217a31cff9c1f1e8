package config

import (
	"fmt"
	"os"
	"time"

	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/thermo"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Display  DisplayConfig  `yaml:"display"`
	Sampling SamplingConfig `yaml:"sampling"`
	Mock     MockConfig     `yaml:"mock"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
	Banner   string `yaml:"banner"` // First line the board prints after reset
}

// SensorConfig contains the voltage to temperature mapping.
type SensorConfig struct {
	VMin     int32  `yaml:"v_min"`    // Hundredths of a volt
	VMax     int32  `yaml:"v_max"`    // Hundredths of a volt
	TMin     int32  `yaml:"t_min"`    // Tenths of a degree
	TMax     int32  `yaml:"t_max"`    // Tenths of a degree
	Overflow string `yaml:"overflow"` // clamp, truncate or dashes
}

// DisplayConfig contains multiplexing parameters.
type DisplayConfig struct {
	Polarity        string        `yaml:"polarity"` // high or low
	Frames          int           `yaml:"frames"`
	DigitDelay      uint16        `yaml:"digit_delay"`      // Ticks
	TransistorDelay uint16        `yaml:"transistor_delay"` // Ticks
	Tick            time.Duration `yaml:"tick"`
}

// SamplingConfig contains ADC parameters.
type SamplingConfig struct {
	AverageSamples int           `yaml:"average_samples"` // Number of samples to average (0 = disabled, default)
	ConversionTime time.Duration `yaml:"conversion_time"`
}

// MockConfig contains simulated sensor configuration.
type MockConfig struct {
	Raw       uint16        `yaml:"raw"`       // Center ADC value
	Amplitude uint16        `yaml:"amplitude"` // Peak deviation in ADC counts
	Period    time.Duration `yaml:"period"`    // Waveform period
	Noise     uint16        `yaml:"noise"`     // Peak noise in ADC counts
	Seed      int64         `yaml:"seed"`
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "/dev/ttyUSB0", // "COM3" on Windows
			BaudRate: 115200,
			Banner:   "Thermometer",
		},
		Sensor: SensorConfig{
			VMin:     thermo.DefaultScale.VMin,
			VMax:     thermo.DefaultScale.VMax,
			TMin:     thermo.DefaultScale.TMin,
			TMax:     thermo.DefaultScale.TMax,
			Overflow: sampler.Clamp.String(),
		},
		Display: DisplayConfig{
			Polarity:        scanner.ActiveHigh.String(),
			Frames:          scanner.DefaultTiming.Frames,
			DigitDelay:      scanner.DefaultTiming.DigitDelay,
			TransistorDelay: scanner.DefaultTiming.TransistorDelay,
			Tick:            200 * time.Microsecond,
		},
		Sampling: SamplingConfig{
			AverageSamples: 0,
			ConversionTime: 100 * time.Millisecond,
		},
		Mock: MockConfig{
			Raw:       300,
			Amplitude: 120,
			Period:    30 * time.Second,
			Noise:     2,
			Seed:      1,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration converts into core types.
func (c *Config) Validate() error {
	if err := c.Scale().Validate(); err != nil {
		return err
	}
	if _, err := sampler.ParseOverflow(c.Sensor.Overflow); err != nil {
		return fmt.Errorf("%w: %q", err, c.Sensor.Overflow)
	}
	if _, err := scanner.ParsePolarity(c.Display.Polarity); err != nil {
		return fmt.Errorf("%w: %q", err, c.Display.Polarity)
	}
	return nil
}

// Scale returns the sensor mapping.
func (c *Config) Scale() thermo.Scale {
	return thermo.Scale{
		VMin: c.Sensor.VMin,
		VMax: c.Sensor.VMax,
		TMin: c.Sensor.TMin,
		TMax: c.Sensor.TMax,
	}
}

// OverflowPolicy returns the overflow policy, defaulting to clamp.
func (c *Config) OverflowPolicy() sampler.Overflow {
	o, _ := sampler.ParseOverflow(c.Sensor.Overflow)
	return o
}

// Polarity returns the transistor polarity, defaulting to active high.
func (c *Config) Polarity() scanner.Polarity {
	p, _ := scanner.ParsePolarity(c.Display.Polarity)
	return p
}

// Timing returns the scanner timing.
func (c *Config) Timing() scanner.Timing {
	return scanner.Timing{
		Frames:          c.Display.Frames,
		DigitDelay:      c.Display.DigitDelay,
		TransistorDelay: c.Display.TransistorDelay,
	}
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate == 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
	if c.Serial.Banner == "" {
		c.Serial.Banner = def.Serial.Banner
	}

	// A zero-width voltage range means the sensor section was left out
	if c.Sensor.VMin == 0 && c.Sensor.VMax == 0 {
		c.Sensor.VMin = def.Sensor.VMin
		c.Sensor.VMax = def.Sensor.VMax
	}
	if c.Sensor.TMin == 0 && c.Sensor.TMax == 0 {
		c.Sensor.TMin = def.Sensor.TMin
		c.Sensor.TMax = def.Sensor.TMax
	}
	if c.Sensor.Overflow == "" {
		c.Sensor.Overflow = def.Sensor.Overflow
	}

	if c.Display.Polarity == "" {
		c.Display.Polarity = def.Display.Polarity
	}
	if c.Display.Frames == 0 {
		c.Display.Frames = def.Display.Frames
	}
	if c.Display.DigitDelay == 0 {
		c.Display.DigitDelay = def.Display.DigitDelay
	}
	if c.Display.Tick == 0 {
		c.Display.Tick = def.Display.Tick
	}

	if c.Sampling.ConversionTime == 0 {
		c.Sampling.ConversionTime = def.Sampling.ConversionTime
	}

	if c.Mock.Period == 0 {
		c.Mock.Period = def.Mock.Period
	}
}
