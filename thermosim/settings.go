package main

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/itohio/ledthermo/pkg/config"
	"github.com/itohio/ledthermo/pkg/link"
)

// showSettingsDialog displays a settings dialog with tabs for all configuration options.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createSerialTab(state),
		createSensorTab(state),
		createDisplayTab(state),
		createSamplingTab(state),
		createVariantTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	content.Resize(fyne.NewSize(500, 400))

	d := dialog.NewCustom("Settings", "Close", content, state.window)
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

// applyConfig validates next, saves it and restarts the simulation with it.
func applyConfig(state *appState, next config.Config) {
	if err := next.Validate(); err != nil {
		dialog.ShowError(fmt.Errorf("invalid settings: %w", err), state.window)
		return
	}
	*state.cfg = next
	if err := state.cfg.Save(state.configPath); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save config: %w", err), state.window)
	}
	restartBoard(state)
}

// createSerialTab creates the Serial configuration tab.
func createSerialTab(state *appState) *container.TabItem {
	ports, err := link.Ports()
	portOptions := []string{}
	portMap := make(map[string]string) // Map display name to actual port name

	if err == nil {
		for _, port := range ports {
			displayName := port.Name
			if port.Description != "" && port.Description != port.Name {
				displayName = port.Description
			}
			portOptions = append(portOptions, displayName)
			portMap[displayName] = port.Name
		}
	}

	// Add current port if not in list
	currentPort := state.cfg.Serial.Port
	currentDisplay := currentPort
	found := false
	for _, opt := range portOptions {
		if portMap[opt] == currentPort {
			currentDisplay = opt
			found = true
			break
		}
	}
	if !found && currentPort != "" {
		portOptions = append(portOptions, currentPort)
		portMap[currentPort] = currentPort
	}

	portSelect := widget.NewSelect(portOptions, nil)
	if currentDisplay != "" {
		portSelect.SetSelected(currentDisplay)
	}

	baudEntry := widget.NewEntry()
	baudEntry.SetText(strconv.Itoa(state.cfg.Serial.BaudRate))

	bannerEntry := widget.NewEntry()
	bannerEntry.SetText(state.cfg.Serial.Banner)

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Serial Port", Widget: portSelect},
			{Text: "Baud Rate", Widget: baudEntry},
			{Text: "Banner", Widget: bannerEntry},
		},
		OnSubmit: func() {
			next := *state.cfg
			if portSelect.Selected != "" {
				next.Serial.Port = portMap[portSelect.Selected]
				if next.Serial.Port == "" {
					next.Serial.Port = portSelect.Selected // Fallback to selected text
				}
			}
			if baud, err := strconv.Atoi(baudEntry.Text); err == nil && baud > 0 {
				next.Serial.BaudRate = baud
			}
			if bannerEntry.Text != "" {
				next.Serial.Banner = bannerEntry.Text
			}

			// Drop a probed connection on the old port
			if next.Serial != state.cfg.Serial {
				closeDevice(state)
				state.connectBtn.SetText("Probe board")
			}
			applyConfig(state, next)
		},
	}

	return container.NewTabItem("Serial", form)
}

// createSensorTab creates the sensor mapping tab.
func createSensorTab(state *appState) *container.TabItem {
	vMinEntry := int32Entry(state.cfg.Sensor.VMin)
	vMaxEntry := int32Entry(state.cfg.Sensor.VMax)
	tMinEntry := int32Entry(state.cfg.Sensor.TMin)
	tMaxEntry := int32Entry(state.cfg.Sensor.TMax)

	overflowSelect := widget.NewSelect([]string{"clamp", "truncate", "dashes"}, nil)
	overflowSelect.SetSelected(state.cfg.OverflowPolicy().String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "V min (cV)", Widget: vMinEntry},
			{Text: "V max (cV)", Widget: vMaxEntry},
			{Text: "T min (0.1 °C)", Widget: tMinEntry},
			{Text: "T max (0.1 °C)", Widget: tMaxEntry},
			{Text: "Overflow", Widget: overflowSelect},
		},
		OnSubmit: func() {
			next := *state.cfg
			parseInt32(vMinEntry.Text, &next.Sensor.VMin)
			parseInt32(vMaxEntry.Text, &next.Sensor.VMax)
			parseInt32(tMinEntry.Text, &next.Sensor.TMin)
			parseInt32(tMaxEntry.Text, &next.Sensor.TMax)
			if overflowSelect.Selected != "" {
				next.Sensor.Overflow = overflowSelect.Selected
			}
			applyConfig(state, next)
		},
	}

	return container.NewTabItem("Sensor", form)
}

// createDisplayTab creates the multiplexing tab.
func createDisplayTab(state *appState) *container.TabItem {
	polaritySelect := widget.NewSelect([]string{"high", "low"}, nil)
	polaritySelect.SetSelected(state.cfg.Polarity().String())

	framesEntry := widget.NewEntry()
	framesEntry.SetText(strconv.Itoa(state.cfg.Display.Frames))

	digitEntry := widget.NewEntry()
	digitEntry.SetText(strconv.Itoa(int(state.cfg.Display.DigitDelay)))

	transistorEntry := widget.NewEntry()
	transistorEntry.SetText(strconv.Itoa(int(state.cfg.Display.TransistorDelay)))

	tickEntry := widget.NewEntry()
	tickEntry.SetText(state.cfg.Display.Tick.String())

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Transistors", Widget: polaritySelect},
			{Text: "Frames per snapshot", Widget: framesEntry},
			{Text: "Digit delay (ticks)", Widget: digitEntry},
			{Text: "Transistor delay (ticks)", Widget: transistorEntry},
			{Text: "Tick", Widget: tickEntry},
		},
		OnSubmit: func() {
			next := *state.cfg
			if polaritySelect.Selected != "" {
				next.Display.Polarity = polaritySelect.Selected
			}
			if frames, err := strconv.Atoi(framesEntry.Text); err == nil && frames > 0 {
				next.Display.Frames = frames
			}
			if v, err := strconv.ParseUint(digitEntry.Text, 10, 16); err == nil {
				next.Display.DigitDelay = uint16(v)
			}
			if v, err := strconv.ParseUint(transistorEntry.Text, 10, 16); err == nil {
				next.Display.TransistorDelay = uint16(v)
			}
			if tick, err := time.ParseDuration(tickEntry.Text); err == nil && tick > 0 {
				next.Display.Tick = tick
			}
			applyConfig(state, next)
		},
	}

	return container.NewTabItem("Display", form)
}

// createSamplingTab creates the ADC sampling tab.
func createSamplingTab(state *appState) *container.TabItem {
	averageEntry := widget.NewEntry()
	averageEntry.SetText(strconv.Itoa(state.cfg.Sampling.AverageSamples))

	conversionEntry := widget.NewEntry()
	conversionEntry.SetText(state.cfg.Sampling.ConversionTime.String())

	periodEntry := widget.NewEntry()
	periodEntry.SetText(state.cfg.Mock.Period.String())

	amplitudeEntry := widget.NewEntry()
	amplitudeEntry.SetText(strconv.Itoa(int(state.cfg.Mock.Amplitude)))

	noiseEntry := widget.NewEntry()
	noiseEntry.SetText(strconv.Itoa(int(state.cfg.Mock.Noise)))

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Average Samples (0=disabled)", Widget: averageEntry},
			{Text: "Conversion time", Widget: conversionEntry},
			{Text: "Waveform period", Widget: periodEntry},
			{Text: "Waveform amplitude (counts)", Widget: amplitudeEntry},
			{Text: "Noise (counts)", Widget: noiseEntry},
		},
		OnSubmit: func() {
			next := *state.cfg
			if avg, err := strconv.Atoi(averageEntry.Text); err == nil && avg >= 0 {
				next.Sampling.AverageSamples = avg
			}
			if d, err := time.ParseDuration(conversionEntry.Text); err == nil && d > 0 {
				next.Sampling.ConversionTime = d
			}
			if d, err := time.ParseDuration(periodEntry.Text); err == nil && d > 0 {
				next.Mock.Period = d
			}
			if v, err := strconv.ParseUint(amplitudeEntry.Text, 10, 16); err == nil {
				next.Mock.Amplitude = uint16(v)
			}
			if v, err := strconv.ParseUint(noiseEntry.Text, 10, 16); err == nil {
				next.Mock.Noise = uint16(v)
			}
			applyConfig(state, next)
		},
	}

	return container.NewTabItem("Sampling", form)
}

// createVariantTab applies one of the historical parameter sets.
func createVariantTab(state *appState) *container.TabItem {
	variantSelect := widget.NewSelect(config.Variants(), nil)
	variantSelect.SetSelected(config.DefaultVariant)

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: "Variant", Widget: variantSelect},
		},
		OnSubmit: func() {
			v, err := config.Variant(variantSelect.Selected)
			if err != nil {
				dialog.ShowError(err, state.window)
				return
			}
			// Variants only differ in sensor and display parameters
			next := *state.cfg
			next.Sensor = v.Sensor
			next.Display = v.Display
			applyConfig(state, next)
		},
	}

	return container.NewTabItem("Variant", form)
}

func int32Entry(v int32) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatInt(int64(v), 10))
	return e
}

func parseInt32(s string, dst *int32) {
	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		*dst = int32(v)
	}
}
