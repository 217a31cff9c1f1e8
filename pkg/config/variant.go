package config

import (
	"fmt"
	"sort"
	"time"
)

// DefaultVariant is the validated parameter set.
const DefaultVariant = "timer"

// variants are the parameter sets of the prototype boards. Each entry patches
// a Default configuration.
var variants = map[string]func(*Config){
	// Timer0-paced delays, active-high transistors.
	"timer": func(c *Config) {},

	// First revision: narrower temperature span.
	"thermometer": func(c *Config) {
		c.Sensor.TMax = 1470
	},

	// Busy-loop delays, active-low transistors.
	"spin": func(c *Config) {
		c.Display.Polarity = "low"
		c.Display.Frames = 200
		c.Display.DigitDelay = 6000
		c.Display.TransistorDelay = 2000
		c.Display.Tick = time.Microsecond
	},
}

// Variant returns the default configuration patched with the named variant.
func Variant(name string) (*Config, error) {
	patch, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", name)
	}
	cfg := Default()
	patch(cfg)
	return cfg, nil
}

// Apply patches c with the named variant.
func (c *Config) Apply(name string) error {
	patch, ok := variants[name]
	if !ok {
		return fmt.Errorf("unknown variant %q", name)
	}
	patch(c)
	return nil
}

// Variants lists the variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
