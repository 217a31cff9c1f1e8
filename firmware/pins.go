//go:build tinygo

package main

const (
	// Thermo sensor parameters
	V_MIN = 25   // 0.25 V
	V_MAX = 475  // 4.75 V
	T_MIN = -500 // -50.0 C
	T_MAX = 1500 // 150.0 C

	// ADC configuration: AVcc reference, channel ADC0 (PA0)
	ADC_CHANNEL = 0

	// Display multiplexing
	FRAMES_CNT       = 30  // Frames shown per buffer snapshot
	DIGIT_DELAY      = 44  // Ticks a digit stays lit
	TRANSISTOR_DELAY = 1   // Ticks all digits are dark between digits
	TIMER_TICK_US    = 200 // Delay tick length in microseconds

	// Transistor lines PB0..PB3. Set ACTIVE_LOW for boards with PNP drivers.
	TRANSISTOR_MASK = 0b00001111
	ACTIVE_LOW      = false

	// Use calibrated busy loops instead of the Timer0 compare flag.
	SPIN_DELAY = false

	// Timer0: CTC, clk/64. 20 MHz / 64 = 312.5 kHz, so 62 counts per 200 us tick.
	CPU_HZ        = 20000000
	TIMER_COMPARE = CPU_HZ/64*TIMER_TICK_US/1000000 - 1

	// Serial configuration (banner only)
	UART_BAUD_RATE = 115200
)
