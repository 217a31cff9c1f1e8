package segment

import "sync"

const (
	// Width is the number of digits on the display.
	Width = 4
	// DecimalSlot is the digit that always carries the decimal point.
	DecimalSlot = 2
)

// Buffer holds one segment pattern per digit, leftmost first. Zero is blank.
type Buffer [Width]byte

// Shared is the display buffer handed from the sampler to the scanner.
//
// There is exactly one writer (Store) and one reader (Snapshot). Both run
// under the locker; on the device the locker masks interrupts.
type Shared struct {
	mu  sync.Locker
	buf Buffer
}

// NewShared creates a shared buffer guarded by l. A nil locker selects a mutex.
func NewShared(l sync.Locker) *Shared {
	if l == nil {
		l = &sync.Mutex{}
	}
	return &Shared{mu: l}
}

// Store replaces the buffer contents.
func (s *Shared) Store(b Buffer) {
	s.mu.Lock()
	s.buf = b
	s.mu.Unlock()
}

// Snapshot copies the buffer contents.
func (s *Shared) Snapshot() Buffer {
	s.mu.Lock()
	b := s.buf
	s.mu.Unlock()
	return b
}
