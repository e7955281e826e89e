package markre

import (
	"sync/atomic"

	"github.com/coregx/markre/internal/conv"
)

// Stats counts the work done by a Regex or Set since compilation or the
// last ResetStats.
type Stats struct {
	// Propagations counts full mark-propagation runs.
	Propagations uint64

	// PrefilterRejects counts lines the prefilter proved could not match.
	PrefilterRejects uint64

	// PrefilterAnswers counts Match calls decided by a complete literal
	// without propagation.
	PrefilterAnswers uint64

	// BytesScanned totals the length of every line examined.
	BytesScanned uint64
}

// counters is the concurrently updated form of Stats.
type counters struct {
	propagations     atomic.Uint64
	prefilterRejects atomic.Uint64
	prefilterAnswers atomic.Uint64
	bytesScanned     atomic.Uint64
}

func (c *counters) scanned(line []byte) {
	c.bytesScanned.Add(conv.IntToUint64(len(line)))
}

func (c *counters) snapshot() Stats {
	return Stats{
		Propagations:     c.propagations.Load(),
		PrefilterRejects: c.prefilterRejects.Load(),
		PrefilterAnswers: c.prefilterAnswers.Load(),
		BytesScanned:     c.bytesScanned.Load(),
	}
}

func (c *counters) reset() {
	c.propagations.Store(0)
	c.prefilterRejects.Store(0)
	c.prefilterAnswers.Store(0)
	c.bytesScanned.Store(0)
}
