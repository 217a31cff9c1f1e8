package sample

import (
	"testing"
	"time"

	"github.com/itohio/ledthermo/pkg/thermo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		raw  uint16
		want Reading
	}{
		{
			name: "zero ADC",
			raw:  0,
			want: Reading{Timestamp: now, Raw: 0, CentiVolts: 0, DeciDegrees: -611},
		},
		{
			name: "midscale",
			raw:  512,
			want: Reading{Timestamp: now, Raw: 512, CentiVolts: 250, DeciDegrees: 500},
		},
		{
			name: "max ADC",
			raw:  1023,
			want: Reading{Timestamp: now, Raw: 1023, CentiVolts: 499, DeciDegrees: 1606},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(RawSample{Timestamp: now, Value: tt.raw}, thermo.DefaultScale)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReading_Units(t *testing.T) {
	r := Reading{CentiVolts: 250, DeciDegrees: -367}
	assert.InDelta(t, 2.5, r.Volts(), 1e-9)
	assert.InDelta(t, -36.7, r.Degrees(), 1e-9)
}

func TestNewConverter(t *testing.T) {
	converter := NewConverter(thermo.DefaultScale, 10)
	in := make(chan RawSample, 10)
	out := converter(in)

	now := time.Now()
	for i := 0; i < 3; i++ {
		in <- RawSample{Timestamp: now.Add(time.Duration(i) * time.Second), Value: 512}
	}
	close(in)

	var readings []Reading
	for r := range out {
		readings = append(readings, r)
	}

	require.Len(t, readings, 3)
	for i, r := range readings {
		assert.Equal(t, now.Add(time.Duration(i)*time.Second), r.Timestamp)
		assert.Equal(t, int32(500), r.DeciDegrees)
	}
}

// TestConverter_GracefulShutdown tests that converter closes output channel
// when input channel is closed.
func TestConverter_GracefulShutdown(t *testing.T) {
	converter := NewConverter(thermo.DefaultScale, 0)
	in := make(chan RawSample)
	out := converter(in)

	close(in)

	select {
	case _, ok := <-out:
		assert.False(t, ok, "Output channel should be closed")
	case <-time.After(5 * time.Second):
		t.Fatal("Output channel did not close within timeout")
	}
}

func TestConverter_InvalidScaleDrainsInput(t *testing.T) {
	converter := NewConverter(thermo.Scale{VMin: 5, VMax: 5}, 10)
	in := make(chan RawSample)
	out := converter(in)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			in <- RawSample{Value: uint16(i)}
		}
		close(in)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Converter did not drain input")
	}

	_, ok := <-out
	assert.False(t, ok)
}
