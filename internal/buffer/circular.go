// Package buffer provides the chunk window and playback control for simulated streams.
package buffer

import (
	"errors"

	"github.com/Cami-nando2/StreamingVideoBuffer/pkg/types"
)

var (
	// ErrWindowFull is returned when a chunk is pushed into a full window.
	ErrWindowFull = errors.New("chunk window is full")
	// ErrWindowEmpty is returned when a chunk is popped from an empty window.
	ErrWindowEmpty = errors.New("chunk window is empty")
)

// ChunkWindow is a bounded FIFO ring of chunk ids received but not yet played.
// It is not safe for concurrent use.
type ChunkWindow struct {
	data    []int
	size    int
	readPos int
	count   int
	dropped int
}

// NewChunkWindow creates a window holding at most size chunks.
// A non-positive size yields a window that never accepts chunks.
func NewChunkWindow(size int) *ChunkWindow {
	if size < 0 {
		size = 0
	}
	return &ChunkWindow{
		data: make([]int, size),
		size: size,
	}
}

// Push appends a chunk at the tail of the window.
func (w *ChunkWindow) Push(chunk int) error {
	if w.Free() == 0 {
		return ErrWindowFull
	}

	writePos := (w.readPos + w.count) % w.size
	w.data[writePos] = chunk
	w.count++

	return nil
}

// Pop removes and returns the chunk at the head of the window.
func (w *ChunkWindow) Pop() (int, error) {
	if w.count == 0 {
		return 0, ErrWindowEmpty
	}

	chunk := w.data[w.readPos]
	w.readPos = (w.readPos + 1) % w.size
	w.count--

	return chunk, nil
}

// Clear discards every buffered chunk and returns how many were dropped.
func (w *ChunkWindow) Clear() int {
	n := w.count
	w.dropped += n
	w.readPos = 0
	w.count = 0
	return n
}

// Len returns the number of buffered chunks.
func (w *ChunkWindow) Len() int {
	return w.count
}

// Cap returns the window capacity.
func (w *ChunkWindow) Cap() int {
	return w.size
}

// Free returns the number of chunks that can still be pushed.
func (w *ChunkWindow) Free() int {
	return w.size - w.count
}

// Empty reports whether the window holds no chunks.
func (w *ChunkWindow) Empty() bool {
	return w.count == 0
}

// Stats returns current window statistics.
func (w *ChunkWindow) Stats() types.BufferStats {
	level := 0.0
	if w.size > 0 {
		level = float64(w.count) / float64(w.size)
	}
	return types.BufferStats{
		ChunksBuffered: w.count,
		ChunksDropped:  w.dropped,
		BufferLevel:    level,
	}
}
