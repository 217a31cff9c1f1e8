package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/itohio/ledthermo/pkg/link"
)

const (
	// probeTimeout bounds the wait for the banner after a reset.
	probeTimeout = 5 * time.Second
	// mockBootDelay is how long the mocked board takes to print its banner.
	mockBootDelay = 500 * time.Millisecond
)

// handleConnect handles the connect/disconnect button click. Connecting
// resets the board, so a working board answers with its banner.
func handleConnect(state *appState) {
	if state.device != nil && state.device.IsConnected() {
		closeDevice(state)
		state.connectBtn.SetText("Probe board")
		return
	}

	var device link.Device
	if state.useMock {
		device = link.NewMock(state.cfg.Serial.Banner, mockBootDelay)
		log.Println("Using mocked board")
	} else {
		device = link.New(state.cfg.Serial.Port, state.cfg.Serial.BaudRate, link.DefaultBufferSize)
	}

	if err := device.Connect(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to connect to %s: %w", portName(state), err), state.window)
		return
	}
	state.device = device
	state.connectBtn.SetText("Disconnect")
	state.connectBtn.Disable()
	log.Printf("Connected to %s, waiting for banner", portName(state))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		line, err := link.WaitBanner(ctx, device, state.cfg.Serial.Banner)
		fyne.Do(func() {
			state.connectBtn.Enable()
			if err != nil {
				dialog.ShowError(fmt.Errorf("board on %s did not answer: %w", portName(state), err), state.window)
				return
			}
			log.Printf("Banner %q received at %s", line.Text, line.Timestamp.Format(time.TimeOnly))
			dialog.ShowInformation("Board found", fmt.Sprintf("%s answered with %q", portName(state), line.Text), state.window)
		})
	}()
}

// closeDevice closes the probed device, if any.
func closeDevice(state *appState) {
	if state.device == nil {
		return
	}
	if err := state.device.Close(); err != nil {
		log.Printf("Error closing device: %v", err)
	}
	state.device = nil
	log.Printf("Disconnected from %s", portName(state))
}

func portName(state *appState) string {
	if state.useMock {
		return "mocked board"
	}
	return state.cfg.Serial.Port
}
