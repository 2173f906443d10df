package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator returns the same request id every time.
//
// Used where a response or log line is compared byte for byte.
// Safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id.
// If id is empty, Generate returns "test-request".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-request"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed id.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}

// SequentialIDGenerator returns "<prefix>-1", "<prefix>-2", ...
//
// Unlike a UUID source it can be reset, so a test can issue the same
// requests twice and see identical ids.
type SequentialIDGenerator struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewSequentialIDGenerator creates a generator starting at 1.
// An empty prefix defaults to "req".
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = "req"
	}
	return &SequentialIDGenerator{prefix: prefix}
}

// Generate increments the sequence and returns the next id.
func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s-%d", g.prefix, g.seq)
}

// Count returns how many ids have been issued since the last Reset.
func (g *SequentialIDGenerator) Count() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq
}

// Reset restarts the sequence. The next Generate returns "<prefix>-1".
func (g *SequentialIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
