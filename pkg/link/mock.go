package link

import (
	"fmt"
	"sync"
	"time"
)

// Mock simulates a board that prints its banner after every reset.
type Mock struct {
	banner string
	delay  time.Duration

	lines     chan Line
	mu        sync.Mutex
	connected bool
	closed    bool
	wg        sync.WaitGroup
	stop      chan struct{}
}

// NewMock creates a mocked board that prints banner delay after a reset.
func NewMock(banner string, delay time.Duration) *Mock {
	return &Mock{
		banner: banner,
		delay:  delay,
		lines:  make(chan Line, DefaultBufferSize),
		stop:   make(chan struct{}),
	}
}

// Connect simulates opening the port, which resets the board.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}
	if m.closed {
		return fmt.Errorf("mock is closed")
	}

	m.connected = true
	m.resetLocked()
	return nil
}

// Reset simulates pressing the reset button.
func (m *Mock) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return ErrNotConnected
	}
	m.resetLocked()
	return nil
}

func (m *Mock) resetLocked() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		select {
		case <-time.After(m.delay):
		case <-m.stop:
			return
		}
		select {
		case m.lines <- Line{Timestamp: time.Now(), Text: m.banner}:
		case <-m.stop:
		}
	}()
}

// Close stops the mocked board and closes the lines channel.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	close(m.stop)
	m.wg.Wait()
	m.connected = false
	m.closed = true
	close(m.lines)

	return nil
}

// Lines returns the channel of received lines.
func (m *Mock) Lines() <-chan Line {
	return m.lines
}

// IsConnected returns whether the device is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}
