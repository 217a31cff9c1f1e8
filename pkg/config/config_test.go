package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to a config file in a temporary directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, "Thermometer", cfg.Serial.Banner)
	assert.Equal(t, thermo.DefaultScale, cfg.Scale())
	assert.Equal(t, sampler.Clamp, cfg.OverflowPolicy())
	assert.Equal(t, scanner.ActiveHigh, cfg.Polarity())
	assert.Equal(t, scanner.DefaultTiming, cfg.Timing())
	assert.Equal(t, 200*time.Microsecond, cfg.Display.Tick)
	assert.Equal(t, 0, cfg.Sampling.AverageSamples)
	assert.Equal(t, 100*time.Millisecond, cfg.Sampling.ConversionTime)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeConfig(t, `
serial:
  port: "/dev/ttyACM0"
  baud_rate: 57600

sensor:
  v_min: 50
  v_max: 450
  t_min: -400
  t_max: 1250
  overflow: dashes

display:
  polarity: low
  frames: 200
  digit_delay: 6000
  transistor_delay: 2000
  tick: 1us

sampling:
  average_samples: 8
  conversion_time: 10ms

mock:
  raw: 512
  amplitude: 10
  period: 5s
  noise: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 57600, cfg.Serial.BaudRate)
	assert.Equal(t, thermo.Scale{VMin: 50, VMax: 450, TMin: -400, TMax: 1250}, cfg.Scale())
	assert.Equal(t, sampler.Dashes, cfg.OverflowPolicy())
	assert.Equal(t, scanner.ActiveLow, cfg.Polarity())
	assert.Equal(t, scanner.Timing{Frames: 200, DigitDelay: 6000, TransistorDelay: 2000}, cfg.Timing())
	assert.Equal(t, time.Microsecond, cfg.Display.Tick)
	assert.Equal(t, 8, cfg.Sampling.AverageSamples)
	assert.Equal(t, 10*time.Millisecond, cfg.Sampling.ConversionTime)
	assert.Equal(t, uint16(512), cfg.Mock.Raw)
	assert.Equal(t, 5*time.Second, cfg.Mock.Period)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "invalid: yaml: content: ["))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "bad polarity",
			content: "display:\n  polarity: sideways\n",
			wantErr: scanner.ErrInvalidPolarity,
		},
		{
			name:    "bad overflow",
			content: "sensor:\n  overflow: wrap\n",
			wantErr: sampler.ErrInvalidOverflow,
		},
		{
			name:    "empty voltage span",
			content: "sensor:\n  v_min: 100\n  v_max: 100\n",
			wantErr: thermo.ErrInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_PartialYAML(t *testing.T) {
	path := writeConfig(t, `
serial:
  port: "/dev/ttyACM0"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// Should use defaults for missing fields
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)                       // default
	assert.Equal(t, thermo.DefaultScale, cfg.Scale())                  // default
	assert.Equal(t, scanner.DefaultTiming, cfg.Timing())               // default
	assert.Equal(t, 100*time.Millisecond, cfg.Sampling.ConversionTime) // default
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Serial.Port = "/dev/ttyUSB1"
	cfg.Display.Polarity = "low"
	cfg.Sensor.TMax = 1470

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	// Load it back and verify
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB1", loaded.Serial.Port)
	assert.Equal(t, scanner.ActiveLow, loaded.Polarity())
	assert.Equal(t, int32(1470), loaded.Sensor.TMax)
}
