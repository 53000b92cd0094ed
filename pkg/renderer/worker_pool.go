package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a band of rows for a worker to render
type RowTask struct {
	Y0, Y1 int // half-open row range
}

// WorkerPool manages parallel row-band rendering. Each task covers a
// disjoint row range, so workers write to disjoint frame cells and no
// locking is needed.
type WorkerPool struct {
	numWorkers int
	bandHeight int
}

// NewWorkerPool creates a worker pool with the specified number of
// workers; numWorkers <= 0 means one per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		bandHeight: 16,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Render renders the whole frame by splitting it into row bands and
// fanning them out to the workers. It blocks until the frame is done.
func (wp *WorkerPool) Render(rt *Raytracer, frame *Frame) {
	numTasks := (frame.Height + wp.bandHeight - 1) / wp.bandHeight
	taskQueue := make(chan RowTask, numTasks)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskQueue {
				rt.RenderRows(frame, task.Y0, task.Y1)
			}
		}()
	}

	for y := 0; y < frame.Height; y += wp.bandHeight {
		taskQueue <- RowTask{Y0: y, Y1: min(y+wp.bandHeight, frame.Height)}
	}
	close(taskQueue)
	wg.Wait()
}

// RenderParallel computes the full frame using a worker pool. The
// result is identical to Render: per-pixel work is deterministic and
// independent, only the write order differs.
func (rt *Raytracer) RenderParallel(numWorkers int) *Frame {
	frame := NewFrame(rt.scene.Config.Width, rt.scene.Config.Height)
	NewWorkerPool(numWorkers).Render(rt, frame)
	return frame
}
