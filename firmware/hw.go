//go:build tinygo

package main

import (
	"device/avr"
	"runtime/interrupt"
	"runtime/volatile"
)

func initIO() {
	// Transistors port: PB0..PB3 for output, all digits dark
	avr.DDRB.SetBits(TRANSISTOR_MASK)
	avr.PORTB.ReplaceBits(transistorsOff(), TRANSISTOR_MASK, 0)

	// Segment port: all output, blank
	avr.DDRC.Set(0xFF)
	avr.PORTC.Set(0)
}

// initADC enables single conversions on ADC_CHANNEL at clk/128 with the
// conversion-complete interrupt.
func initADC() {
	avr.ADMUX.Set(avr.ADMUX_REFS0 | ADC_CHANNEL)
	avr.ADCSRA.Set(avr.ADCSRA_ADEN | avr.ADCSRA_ADIE |
		avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0)
}

func initTimer() {
	avr.TCCR0A.Set(avr.TCCR0A_WGM01)
	avr.TCCR0B.Set(avr.TCCR0B_CS01 | avr.TCCR0B_CS00)
	avr.OCR0A.Set(TIMER_COMPARE)
}

// readADC reads the 10-bit result. ADCL must be read first; it latches ADCH.
func readADC() uint16 {
	lo := avr.ADCL.Get()
	hi := avr.ADCH.Get()
	return uint16(hi)<<8 | uint16(lo)
}

type adcTrigger struct{}

func (adcTrigger) StartConversion() {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
}

// regPort drives the transistors on PORTB and the segments on PORTC.
type regPort struct{}

func (regPort) Select(mask byte) {
	avr.PORTB.ReplaceBits(mask, TRANSISTOR_MASK, 0)
}

func (regPort) Segments(pattern byte) {
	avr.PORTC.Set(pattern)
}

// timerDelay waits for ticks Timer0 compare matches.
func timerDelay(ticks uint16) {
	for ; ticks > 0; ticks-- {
		for !avr.TIFR0.HasBits(avr.TIFR0_OCF0A) {
		}
		avr.TIFR0.Set(avr.TIFR0_OCF0A) // cleared by writing one
	}
}

var spin volatile.Register8

func spinDelay(ticks uint16) {
	for ; ticks > 0; ticks-- {
		spin.Set(spin.Get() + 1)
	}
}

// irqLocker masks interrupts for the duration of the critical section.
type irqLocker struct {
	state interrupt.State
}

func (l *irqLocker) Lock()   { l.state = interrupt.Disable() }
func (l *irqLocker) Unlock() { interrupt.Restore(l.state) }
