// Package sim runs the thermometer pipeline against a simulated sensor and a
// virtual display port.
package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/itohio/ledthermo/pkg/config"
	"github.com/itohio/ledthermo/pkg/sample"
	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/thermo"
)

// MaxRaw is the largest 10-bit conversion result.
const MaxRaw = thermo.ADCFullScale - 1

var (
	_ sampler.Trigger = (*Source)(nil)
	_ thermo.ADC      = (*Source)(nil)
)

// Source is a simulated ADC.
//
// In single-conversion mode every StartConversion produces exactly one sample
// after the conversion time. In continuous mode samples are produced back to
// back and StartConversion is not needed.
type Source struct {
	cfg        config.MockConfig
	conversion time.Duration
	continuous bool

	mu     sync.Mutex
	rng    *rand.Rand
	manual bool
	value  uint16
	last   uint16
	start  time.Time

	arm     chan struct{}
	samples chan sample.RawSample
}

// NewSource creates a simulated ADC driven by the mock waveform in cfg.
func NewSource(cfg *config.Config, continuous bool) *Source {
	conversion := cfg.Sampling.ConversionTime
	if conversion <= 0 {
		conversion = time.Millisecond
	}
	return &Source{
		cfg:        cfg.Mock,
		conversion: conversion,
		continuous: continuous,
		rng:        rand.New(rand.NewSource(cfg.Mock.Seed)),
		value:      clampRaw(int32(cfg.Mock.Raw)),
		start:      time.Now(),
		arm:        make(chan struct{}, 1),
		samples:    make(chan sample.RawSample, sample.DefaultBufferSize),
	}
}

// StartConversion arms one conversion. Arming an already armed source is a
// no-op, like setting ADSC twice.
func (s *Source) StartConversion() {
	select {
	case s.arm <- struct{}{}:
	default:
	}
}

// Get returns the last conversion result left-adjusted to 16 bits.
func (s *Source) Get() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last << 6
}

// Samples returns the channel of conversion results. It is closed when Run
// returns.
func (s *Source) Samples() <-chan sample.RawSample {
	return s.samples
}

// Set switches to manual mode and holds raw until the next Set or Auto.
// Values above MaxRaw are clamped.
func (s *Source) Set(raw uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = true
	s.value = clampRaw(int32(raw))
}

// Auto switches back to the mock waveform.
func (s *Source) Auto() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = false
	s.start = time.Now()
}

// Manual reports whether the source holds a manual value.
func (s *Source) Manual() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manual
}

// Run produces samples until ctx is done.
func (s *Source) Run(ctx context.Context) error {
	defer close(s.samples)

	timer := time.NewTimer(s.conversion)
	defer timer.Stop()

	for {
		if !s.continuous {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-s.arm:
			}
		}

		timer.Reset(s.conversion)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-timer.C:
			raw := s.convert(now)
			select {
			case s.samples <- sample.RawSample{Timestamp: now, Value: raw}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (s *Source) convert(now time.Time) uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.manual {
		s.last = s.value
	} else {
		s.last = s.waveform(now.Sub(s.start))
	}
	return s.last
}

// waveform returns Raw + Amplitude*sin(2*pi*t/Period) + noise, clamped.
func (s *Source) waveform(t time.Duration) uint16 {
	v := float32(s.cfg.Raw)
	if s.cfg.Period > 0 && s.cfg.Amplitude > 0 {
		phase := 2 * math32.Pi * float32(t%s.cfg.Period) / float32(s.cfg.Period)
		v += float32(s.cfg.Amplitude) * math32.Sin(phase)
	}
	if s.cfg.Noise > 0 {
		n := int(s.cfg.Noise)
		v += float32(s.rng.Intn(2*n+1) - n)
	}
	return clampRaw(int32(math32.Round(v)))
}

func clampRaw(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > MaxRaw {
		return MaxRaw
	}
	return uint16(v)
}
