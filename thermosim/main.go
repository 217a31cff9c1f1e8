package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/ledthermo/pkg/config"
	"github.com/itohio/ledthermo/pkg/link"
	"github.com/itohio/ledthermo/pkg/panel"
	"github.com/itohio/ledthermo/pkg/sample"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/itohio/ledthermo/pkg/sim"
	"tinygo.org/x/drivers"
)

func main() {
	var (
		portFlag    = flag.String("port", "", "Serial port override (e.g., COM3 or /dev/ttyUSB0)")
		configFlag  = flag.String("config", "config.yaml", "Configuration file path")
		variantFlag = flag.String("variant", "", "Parameter set to apply (timer, thermometer, spin)")
		mockFlag    = flag.Bool("mock", false, "Probe a mocked board instead of the serial port")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *variantFlag != "" {
		if err := cfg.Apply(*variantFlag); err != nil {
			log.Fatalf("Failed to apply variant: %v", err)
		}
	}

	// Override serial port if provided via command line
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	application := app.NewWithID("com.itohio.ledthermo")

	window := application.NewWindow("LED Thermometer")
	window.Resize(fyne.NewSize(640, 360))
	window.CenterOnScreen()

	state := &appState{
		cfg:        cfg,
		configPath: *configFlag,
		window:     window,
		useMock:    *mockFlag,
		panel:      panel.New(),
		readout:    widget.NewLabel(""),
	}
	state.readout.Alignment = fyne.TextAlignCenter

	toolbar := createToolbar(state)
	controls := createControls(state)

	window.SetContent(container.NewBorder(
		toolbar,
		container.NewVBox(state.readout, controls),
		nil,
		nil,
		state.panel,
	))

	if err := startBoard(state); err != nil {
		log.Fatalf("Failed to start board: %v", err)
	}
	window.SetOnClosed(func() {
		stopBoard(state)
		closeDevice(state)
	})

	window.ShowAndRun()
}

// appState holds the application state.
type appState struct {
	cfg        *config.Config
	configPath string
	window     fyne.Window
	useMock    bool

	panel      *panel.Panel
	readout    *widget.Label
	slider     *widget.Slider
	waveform   *widget.Check
	connectBtn *widget.Button

	board     *sim.Board
	cancel    context.CancelFunc
	boardDone chan struct{}

	device link.Device

	// Throttling for panel updates
	lastUpdateTime time.Time
	updateMu       sync.Mutex
}

// createToolbar creates the toolbar with Connect and Settings buttons.
func createToolbar(state *appState) fyne.CanvasObject {
	connectBtn := widget.NewButtonWithIcon("Probe board", theme.LoginIcon(), func() {
		handleConnect(state)
	})
	state.connectBtn = connectBtn

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		showSettingsDialog(state)
	})

	return container.NewBorder(
		nil,                            // top
		nil,                            // bottom
		container.NewHBox(connectBtn),  // left
		container.NewHBox(settingsBtn), // right
		nil,                            // center (spacer)
	)
}

// createControls creates the manual ADC slider and the waveform toggle.
func createControls(state *appState) fyne.CanvasObject {
	slider := widget.NewSlider(0, sim.MaxRaw)
	slider.Step = 1
	slider.SetValue(float64(state.cfg.Mock.Raw))
	slider.OnChanged = func(v float64) {
		if state.board == nil {
			return
		}
		state.waveform.SetChecked(false)
		state.board.Source().Set(uint16(v))
	}
	state.slider = slider

	waveform := widget.NewCheck("Waveform", func(on bool) {
		if state.board == nil {
			return
		}
		if on {
			state.board.Source().Auto()
		} else {
			state.board.Source().Set(uint16(state.slider.Value))
		}
	})
	waveform.Checked = true
	state.waveform = waveform

	return container.NewBorder(nil, nil, widget.NewLabel("ADC"), waveform, slider)
}

// startBoard creates a simulated board from the current config and runs it.
func startBoard(state *appState) error {
	board, err := sim.NewBoard(state.cfg)
	if err != nil {
		return err
	}

	if !state.waveform.Checked {
		board.Source().Set(uint16(state.slider.Value))
	}

	// Throttle updates to ~60 FPS to keep the UI responsive
	const updateInterval = 16 * time.Millisecond
	board.OnRefresh(func(lit segment.Buffer, r sample.Reading) {
		state.updateMu.Lock()
		now := time.Now()
		if now.Sub(state.lastUpdateTime) < updateInterval {
			state.updateMu.Unlock()
			return
		}
		state.lastUpdateTime = now
		state.updateMu.Unlock()

		// Callbacks run on the scanning goroutine, the only one polling the sensor
		sensor := board.Sensor()
		if err := sensor.Update(drivers.Temperature | drivers.Voltage); err != nil {
			log.Printf("Sensor update failed: %v", err)
			return
		}
		text := formatReadout(sensor, r)

		fyne.Do(func() {
			state.panel.SetBuffer(lit)
			state.readout.SetText(text)
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		board.Run(ctx)
	}()

	state.board = board
	state.cancel = cancel
	state.boardDone = done
	log.Printf("Simulation started: refresh %v per frame", board.RefreshPeriod())
	return nil
}

// stopBoard stops the running board and waits for it to exit.
func stopBoard(state *appState) {
	if state.cancel == nil {
		return
	}
	state.cancel()
	<-state.boardDone
	state.board = nil
	state.cancel = nil
	state.boardDone = nil
}

// restartBoard applies a changed configuration.
func restartBoard(state *appState) {
	stopBoard(state)
	if err := startBoard(state); err != nil {
		dialog.ShowError(fmt.Errorf("failed to restart simulation: %w", err), state.window)
	}
}
