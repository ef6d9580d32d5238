package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CodeGenerator yields the next human-readable ticket code. Codes are
// sequential per calendar year, e.g. TKT-2025-00001. Production uses the
// database-backed implementation so concurrent creations never collide;
// sequences are gap-tolerant.
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// FormatCode renders a year and sequence number in the canonical shape.
func FormatCode(year int, seq int64) string {
	return fmt.Sprintf("TKT-%d-%05d", year, seq)
}

// DefaultCodeGenerator is the in-memory fallback used by tests and local
// tooling.
type DefaultCodeGenerator struct {
	mu       sync.Mutex
	counters map[int]int64
}

func NewDefaultCodeGenerator() *DefaultCodeGenerator {
	return &DefaultCodeGenerator{
		counters: make(map[int]int64),
	}
}

func (g *DefaultCodeGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	year := time.Now().UTC().Year()
	g.counters[year]++
	return FormatCode(year, g.counters[year]), nil
}
