//go:build tinygo

//go:generate tinygo flash -target=atmega1284p

package main

import (
	"device/avr"
	"machine"
	"runtime/interrupt"

	"github.com/itohio/ledthermo/pkg/console"
	"github.com/itohio/ledthermo/pkg/sampler"
	"github.com/itohio/ledthermo/pkg/scanner"
	"github.com/itohio/ledthermo/pkg/segment"
	"github.com/itohio/ledthermo/pkg/thermo"
)

var (
	uart = machine.UART0

	// LED buffer shared between the ADC interrupt and the scan loop
	display = segment.NewShared(&irqLocker{})

	conv *sampler.Sampler
	scan *scanner.Scanner
)

func main() {
	initIO()
	initADC()
	initTimer()

	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	conv = sampler.New(sampler.Config{
		Scale: thermo.Scale{
			VMin: V_MIN,
			VMax: V_MAX,
			TMin: T_MIN,
			TMax: T_MAX,
		},
		Overflow: sampler.Clamp,
	}, display, adcTrigger{})

	interrupt.New(avr.IRQ_ADC, func(interrupt.Interrupt) {
		conv.Convert(readADC())
	})

	scan = scanner.New(regPort{}, delayer(), display, polarity(), scanner.Timing{
		Frames:          FRAMES_CNT,
		DigitDelay:      DIGIT_DELAY,
		TransistorDelay: TRANSISTOR_DELAY,
	})

	avr.Asm("sei")
	adcTrigger{}.StartConversion()

	console.WriteLine(uart, console.Banner)

	for {
		scan.Cycle()
	}
}

func delayer() scanner.Delayer {
	if SPIN_DELAY {
		return scanner.DelayFunc(spinDelay)
	}
	return scanner.DelayFunc(timerDelay)
}

func transistorsOff() byte {
	return polarity().Off()
}

func polarity() scanner.Polarity {
	if ACTIVE_LOW {
		return scanner.ActiveLow
	}
	return scanner.ActiveHigh
}
