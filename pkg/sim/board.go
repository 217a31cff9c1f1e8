package sim

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itohio/ledthermo/pkg/config"
	"github.com/itohio/ledthermo/pkg/sample"
	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/itohio/ledthermo/pkg/thermo"
)

// Board runs the firmware pipeline on the host:
// Source -> averaging -> Sampler -> shared buffer -> Scanner -> Port.
type Board struct {
	cfg   *config.Config
	scale thermo.Scale

	source  *Source
	avg     *sample.Averager
	display *segment.Shared
	sampler *sampler.Sampler
	port    *Port
	scanner *scanner.Scanner
	sensor  *thermo.Sensor

	mu        sync.RWMutex
	reading   sample.Reading
	callbacks []func(lit segment.Buffer, r sample.Reading)
}

// NewBoard creates a board from cfg. The configuration must be valid.
func NewBoard(cfg *config.Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	b := &Board{
		cfg:     cfg,
		scale:   cfg.Scale(),
		source:  NewSource(cfg, false),
		avg:     sample.NewAverager(cfg.Sampling.AverageSamples),
		display: segment.NewShared(nil),
		port:    NewPort(cfg.Polarity()),
	}
	b.sampler = sampler.New(sampler.Config{
		Scale:    b.scale,
		Overflow: cfg.OverflowPolicy(),
	}, b.display, b.source)
	b.scanner = scanner.New(b.port, scanner.Sleep{Tick: cfg.Display.Tick}, b.display, cfg.Polarity(), cfg.Timing())
	b.sensor = thermo.NewSensor(b.source, b.scale)
	b.port.OnFrame(b.notify)

	return b, nil
}

// Run starts sampling and scanning and blocks until ctx is done. A board can
// only be run once.
func (b *Board) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.source.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		b.scanner.Run(ctx)
	}()

	b.source.StartConversion()
	for raw := range b.source.Samples() {
		raw.Value = b.avg.Add(raw.Value)

		b.mu.Lock()
		b.reading = sample.Convert(raw, b.scale)
		b.mu.Unlock()

		b.sampler.Convert(raw.Value)
	}

	wg.Wait()
	return ctx.Err()
}

// Source returns the simulated ADC.
func (b *Board) Source() *Source {
	return b.source
}

// Port returns the virtual display port.
func (b *Board) Port() *Port {
	return b.port
}

// Sensor returns a driver-style view of the simulated sensor.
func (b *Board) Sensor() *thermo.Sensor {
	return b.sensor
}

// Lit returns what the display currently shows.
func (b *Board) Lit() segment.Buffer {
	return b.port.Lit()
}

// Buffer returns what the sampler last published.
func (b *Board) Buffer() segment.Buffer {
	return b.display.Snapshot()
}

// Reading returns the last averaged reading.
func (b *Board) Reading() sample.Reading {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.reading
}

// RefreshPeriod is how long one scanned frame takes.
func (b *Board) RefreshPeriod() time.Duration {
	t := b.scanner.Timing()
	perDigit := time.Duration(t.DigitDelay+t.TransistorDelay) * b.cfg.Display.Tick
	return perDigit * segment.Width
}

// OnRefresh registers a callback for every completed frame. Callbacks run on
// the scanning goroutine.
func (b *Board) OnRefresh(cb func(lit segment.Buffer, r sample.Reading)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, cb)
}

func (b *Board) notify(lit segment.Buffer) {
	b.mu.RLock()
	r := b.reading
	callbacks := make([]func(segment.Buffer, sample.Reading), len(b.callbacks))
	copy(callbacks, b.callbacks)
	b.mu.RUnlock()

	for _, cb := range callbacks {
		cb(lit, r)
	}
}
