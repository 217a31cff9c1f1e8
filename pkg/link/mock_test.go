package link

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_ConnectPrintsBanner(t *testing.T) {
	m := NewMock("Thermometer", 10*time.Millisecond)
	require.NoError(t, m.Connect())
	defer m.Close()

	assert.True(t, m.IsConnected())
	assert.Error(t, m.Connect(), "second connect must fail")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	line, err := WaitBanner(ctx, m, "Thermometer\r\n")
	require.NoError(t, err)
	assert.Equal(t, "Thermometer", line.Text)
}

func TestMock_Reset(t *testing.T) {
	m := NewMock("Thermometer", 0)
	assert.ErrorIs(t, m.Reset(), ErrNotConnected)

	require.NoError(t, m.Connect())
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := WaitBanner(ctx, m, "Thermometer")
	require.NoError(t, err)

	require.NoError(t, m.Reset())
	_, err = WaitBanner(ctx, m, "Thermometer")
	require.NoError(t, err)
}

func TestWaitBanner_Timeout(t *testing.T) {
	m := NewMock("Thermometer", time.Hour)
	require.NoError(t, m.Connect())
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WaitBanner(ctx, m, "Thermometer")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitBanner_WrongBanner(t *testing.T) {
	m := NewMock("Bootloader", 0)
	require.NoError(t, m.Connect())

	go func() {
		time.Sleep(50 * time.Millisecond)
		m.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := WaitBanner(ctx, m, "Thermometer")
	assert.ErrorIs(t, err, ErrClosed)
}

// TestMock_GracefulShutdown tests that Mock closes the lines channel
// when Close() is called.
func TestMock_GracefulShutdown(t *testing.T) {
	m := NewMock("Thermometer", time.Hour)
	require.NoError(t, m.Connect())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range m.Lines() {
		}
	}()

	require.NoError(t, m.Close())
	assert.False(t, m.IsConnected())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Lines channel did not close within timeout")
	}

	assert.Error(t, m.Connect(), "closed mock cannot reconnect")
}
