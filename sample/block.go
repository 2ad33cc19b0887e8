// SPDX-License-Identifier: EPL-2.0

package sample

// Block is one time instant across all channels: Block[i] is the sample of
// channel i. Functions in this module always return a fresh Block and never
// modify the one they are given.
type Block[T Type] []T

// Fill returns a block of the given width with every channel set to v.
func Fill[T Type](channels int, v T) Block[T] {
	b := make(Block[T], channels)
	for i := range b {
		b[i] = v
	}
	return b
}

func (b Block[T]) Channels() int { return len(b) }

// Map applies f to every channel and returns the result as a new block.
func (b Block[T]) Map(f func(T) T) Block[T] {
	out := make(Block[T], len(b))
	for i, s := range b {
		out[i] = f(s)
	}
	return out
}

// AppendLE appends the on-disk encoding of every channel, in channel order.
func (b Block[T]) AppendLE(dst []byte) []byte {
	for _, s := range b {
		dst = AppendLE(dst, s)
	}
	return dst
}
