package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers returns a Workers aggregate running workers in order.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}
