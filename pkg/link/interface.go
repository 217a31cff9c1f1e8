package link

import "time"

// Line is one line of text received from the board.
type Line struct {
	Timestamp time.Time
	Text      string
}

// Device defines the interface for board connections (real or mocked).
type Device interface {
	Connect() error
	Close() error
	Lines() <-chan Line
	IsConnected() bool
}

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)
