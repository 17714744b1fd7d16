package jobs

import (
	"context"
	"log"

	"github.com/hibiken/asynq"
)

// Worker runs the asynq server that consumes background tasks.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

// NewWorker builds a worker against the Redis at addr. Each register func
// binds its handlers on the mux; an error from one aborts startup.
func NewWorker(addr string, concurrency int, register ...func(*asynq.ServeMux) error) (*Worker, error) {
	mux := asynq.NewServeMux()
	for _, r := range register {
		if err := r(mux); err != nil {
			return nil, err
		}
	}
	if concurrency <= 0 {
		concurrency = 4
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: addr}, asynq.Config{
		Concurrency: concurrency,
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			log.Printf("❌ [worker] task %s failed: %v", task.Type(), err)
		}),
	})
	return &Worker{srv: srv, mux: mux}, nil
}

// Start begins processing in the background.
func (w *Worker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return err
	}
	log.Println("✅ Asynq worker started")
	return nil
}

// Shutdown waits for in-flight tasks and stops the server.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
	log.Println("✅ Asynq worker stopped")
}
