// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"iter"

	"github.com/ik5/wavsynth/sample"
)

// Cursor steps a generator through time at a fixed sample rate. Frame n is
// generated at t = n / sampleRate, so there is no drift from accumulating a
// time step.
type Cursor[T sample.Type] struct {
	gen  Func[T]
	rate float64
	pos  int64
}

// NewCursor panics when sampleRate is zero.
func NewCursor[T sample.Type](gen Func[T], sampleRate uint32) *Cursor[T] {
	if sampleRate == 0 {
		panic("waveform: zero sample rate")
	}
	return &Cursor[T]{gen: gen, rate: float64(sampleRate)}
}

// Position is the index of the next frame Next will produce.
func (c *Cursor[T]) Position() int64 { return c.pos }

// Time is the time in seconds of the next frame.
func (c *Cursor[T]) Time() float64 { return float64(c.pos) / c.rate }

// Next returns the current frame and advances by one.
func (c *Cursor[T]) Next() sample.Block[T] {
	b := c.gen(c.Time())
	c.pos++
	return b
}

// Read fills dst with consecutive frames and returns len(dst).
func (c *Cursor[T]) Read(dst []sample.Block[T]) int {
	for i := range dst {
		dst[i] = c.Next()
	}
	return len(dst)
}

// SetPosition moves the cursor to frame pos.
func (c *Cursor[T]) SetPosition(pos int64) { c.pos = pos }

// Reset rewinds the cursor to frame zero.
func (c *Cursor[T]) Reset() { c.pos = 0 }

// Frames yields count frames of gen sampled at sampleRate, starting at t = 0.
// A negative count yields frames until the consumer stops. Every iteration
// starts over from frame zero. Frames panics when sampleRate is zero.
func Frames[T sample.Type](gen Func[T], sampleRate uint32, count int) iter.Seq[sample.Block[T]] {
	if sampleRate == 0 {
		panic("waveform: zero sample rate")
	}

	return func(yield func(sample.Block[T]) bool) {
		c := NewCursor(gen, sampleRate)
		for i := 0; count < 0 || i < count; i++ {
			if !yield(c.Next()) {
				return
			}
		}
	}
}
