package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

type fakeADC uint16

func (f fakeADC) Get() uint16 { return uint16(f) << 6 }

func TestSensor_Update(t *testing.T) {
	s := NewSensor(fakeADC(512), DefaultScale)

	require.NoError(t, s.Update(drivers.Temperature))
	assert.Equal(t, uint16(512), s.Raw())
	assert.Equal(t, int32(500), s.DeciDegrees())
	assert.Equal(t, int32(50000), s.Temperature())
	assert.Equal(t, int32(2500000), s.Voltage())
}

func TestSensor_UpdateIgnoresOtherMeasurements(t *testing.T) {
	s := NewSensor(fakeADC(512), DefaultScale)

	require.NoError(t, s.Update(drivers.Humidity))
	assert.Equal(t, uint16(0), s.Raw())
	assert.Equal(t, int32(0), s.Temperature())
}

func TestSensor_InvalidScale(t *testing.T) {
	s := NewSensor(fakeADC(512), Scale{VMin: 1, VMax: 1})
	assert.ErrorIs(t, s.Update(drivers.AllMeasurements), ErrInvalidScale)
}
