package sim

import (
	"context"
	"testing"
	"time"

	"github.com/itohio/ledthermo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Sampling.ConversionTime = time.Millisecond
	cfg.Display.Frames = 1
	cfg.Display.Tick = 0
	cfg.Mock.Noise = 0
	return cfg
}

func TestSource_SingleConversion(t *testing.T) {
	src := NewSource(testConfig(), false)
	src.Set(512)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx) }()

	// Nothing happens until a conversion is started
	select {
	case <-src.Samples():
		t.Fatal("sample produced without StartConversion")
	case <-time.After(20 * time.Millisecond):
	}

	// Double arming yields a single conversion
	src.StartConversion()
	src.StartConversion()

	select {
	case s := <-src.Samples():
		assert.Equal(t, uint16(512), s.Value)
		assert.False(t, s.Timestamp.IsZero())
	case <-time.After(5 * time.Second):
		t.Fatal("no sample after StartConversion")
	}

	select {
	case <-src.Samples():
		t.Fatal("second sample produced from one arm")
	case <-time.After(20 * time.Millisecond):
	}

	assert.Equal(t, uint16(512<<6), src.Get())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	_, ok := <-src.Samples()
	assert.False(t, ok, "samples channel must be closed")
}

func TestSource_Continuous(t *testing.T) {
	src := NewSource(testConfig(), true)
	src.Set(100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go src.Run(ctx)

	for i := 0; i < 3; i++ {
		select {
		case s := <-src.Samples():
			assert.Equal(t, uint16(100), s.Value)
		case <-time.After(5 * time.Second):
			t.Fatalf("sample %d not produced", i)
		}
	}
}

func TestSource_SetClamps(t *testing.T) {
	src := NewSource(testConfig(), false)
	src.Set(5000)
	assert.True(t, src.Manual())
	assert.Equal(t, uint16(MaxRaw), src.convert(time.Now()))

	src.Auto()
	assert.False(t, src.Manual())
}

func TestSource_Waveform(t *testing.T) {
	cfg := testConfig()
	cfg.Mock.Raw = 500
	cfg.Mock.Amplitude = 100
	cfg.Mock.Period = 4 * time.Second
	src := NewSource(cfg, false)

	assert.Equal(t, uint16(500), src.waveform(0))
	assert.Equal(t, uint16(600), src.waveform(time.Second))
	assert.Equal(t, uint16(500), src.waveform(2*time.Second))
	assert.Equal(t, uint16(400), src.waveform(3*time.Second))
	assert.Equal(t, uint16(600), src.waveform(5*time.Second), "waveform repeats every period")
}

func TestSource_WaveformClamps(t *testing.T) {
	cfg := testConfig()
	cfg.Mock.Raw = 1000
	cfg.Mock.Amplitude = 200
	cfg.Mock.Period = 4 * time.Second
	src := NewSource(cfg, false)

	assert.Equal(t, uint16(MaxRaw), src.waveform(time.Second))

	cfg.Mock.Raw = 50
	src = NewSource(cfg, false)
	assert.Equal(t, uint16(0), src.waveform(3*time.Second))
}

func TestSource_Noise(t *testing.T) {
	cfg := testConfig()
	cfg.Mock.Raw = 500
	cfg.Mock.Amplitude = 0
	cfg.Mock.Noise = 3
	src := NewSource(cfg, false)

	for i := 0; i < 200; i++ {
		v := src.waveform(0)
		require.GreaterOrEqual(t, v, uint16(497))
		require.LessOrEqual(t, v, uint16(503))
	}
}
