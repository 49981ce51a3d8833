// Package id generates names for simulation runs.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

// NewIDGenerator returns a generator that produces sequential IDs with the
// given prefix. Sequential IDs are deterministic and are used when runs are
// executed one after another.
func NewIDGenerator(prefix string) IDGenerator {
	return &sequentialIDGenerator{prefix: prefix}
}

// NewParallelIDGenerator returns a generator that produces globally unique
// IDs. The IDs are not deterministic.
func NewParallelIDGenerator(prefix string) IDGenerator {
	return parallelIDGenerator{prefix: prefix}
}

type sequentialIDGenerator struct {
	prefix string
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return g.prefix + id
}

type parallelIDGenerator struct {
	prefix string
}

func (g parallelIDGenerator) Generate() string {
	return g.prefix + xid.New().String()
}
