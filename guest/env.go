package guest

import "sync"

// MemoryEnv is an in-process Env: the host pushes frames, the guest reads
// them in order and commits to an in-memory journal.
type MemoryEnv struct {
	mu      sync.Mutex
	inputs  [][]byte
	journal [][]byte
}

// NewMemoryEnv returns an empty MemoryEnv.
func NewMemoryEnv() *MemoryEnv {
	return &MemoryEnv{}
}

// Push queues a frame for the guest.
func (e *MemoryEnv) Push(frame []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inputs = append(e.inputs, append([]byte(nil), frame...))
	return nil
}

// Read pops the oldest queued frame.
func (e *MemoryEnv) Read() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.inputs) == 0 {
		return nil, ErrNoInput
	}
	frame := e.inputs[0]
	e.inputs = e.inputs[1:]
	return frame, nil
}

// Commit appends data to the journal.
func (e *MemoryEnv) Commit(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.journal = append(e.journal, append([]byte(nil), data...))
	return nil
}

// Journal returns the committed entries.
func (e *MemoryEnv) Journal() [][]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([][]byte, len(e.journal))
	copy(out, e.journal)
	return out
}
