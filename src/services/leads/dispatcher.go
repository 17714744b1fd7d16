package leads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"Backend-Brightlane-Leadkit/src/jobs"
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/hibiken/asynq"
)

// Sink receives finalized submissions.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, sub models.Submission) error
}

// Enqueuer is the part of *asynq.Client the dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// retryAfterError is implemented by sink errors that mean "rejected by a
// rate limit"; those are never retried.
type retryAfterError interface {
	error
	RetryAfter() time.Duration
}

const (
	defaultDeliverTimeout = 15 * time.Second
	dispatchMaxRetry      = 3
)

// Dispatcher fans a submission out to every sink without making the caller
// wait. With an Enqueuer each delivery becomes an asynq task, otherwise it
// runs on a detached goroutine. Failures are logged and go no further.
type Dispatcher struct {
	sinks    []Sink
	enqueuer Enqueuer
	timeout  time.Duration

	wg sync.WaitGroup
}

type DispatcherOption func(*Dispatcher)

// WithEnqueuer routes deliveries through the task queue.
func WithEnqueuer(e Enqueuer) DispatcherOption {
	return func(d *Dispatcher) { d.enqueuer = e }
}

// WithDeliverTimeout bounds each in-process delivery.
func WithDeliverTimeout(t time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if t > 0 {
			d.timeout = t
		}
	}
}

func NewDispatcher(sinks []Sink, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{sinks: sinks, timeout: defaultDeliverTimeout}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Sinks returns the configured sinks keyed by name, for the task handler.
func (d *Dispatcher) Sinks() map[string]Sink {
	out := make(map[string]Sink, len(d.sinks))
	for _, s := range d.sinks {
		out[s.Name()] = s
	}
	return out
}

// Dispatch returns immediately. ctx is only used for its values; the
// deliveries outlive the request that triggered them.
func (d *Dispatcher) Dispatch(ctx context.Context, sub models.Submission) {
	detached := context.WithoutCancel(ctx)
	for _, sink := range d.sinks {
		if d.enqueuer != nil {
			err := d.enqueue(detached, sink, sub)
			if err == nil {
				continue
			}
			log.Printf("⚠️ [dispatch] enqueue %s failed, delivering inline: %v", sink.Name(), err)
		}
		d.wg.Add(1)
		go d.deliver(detached, sink, sub)
	}
}

// Wait blocks until every in-process delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(ctx context.Context, sink Sink, sub models.Submission) error {
	task, err := jobs.NewDispatchLeadTask(sink.Name(), sub)
	if err != nil {
		return err
	}
	_, err = d.enqueuer.EnqueueContext(ctx, task,
		asynq.MaxRetry(dispatchMaxRetry),
		asynq.TaskID(jobs.DispatchTaskID(sink.Name(), sub)),
		asynq.Timeout(d.timeout),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (d *Dispatcher) deliver(ctx context.Context, sink Sink, sub models.Submission) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ [dispatch] %s panicked: %v", sink.Name(), r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := sink.Deliver(ctx, sub); err != nil {
		log.Printf("❌ [dispatch] %s rejected %s: %v", sink.Name(), sub.ID, err)
		return
	}
	log.Printf("✅ [dispatch] %s accepted %s", sink.Name(), sub.ID)
}

// HandleDispatchLead is the asynq handler for jobs.TypeDispatchLead.
func HandleDispatchLead(sinks map[string]Sink) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p jobs.DispatchLeadPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		sink, ok := sinks[p.Sink]
		if !ok {
			log.Printf("⚠️ [dispatch] unknown sink %q, skipping", p.Sink)
			return nil
		}
		err := sink.Deliver(ctx, p.Submission)
		if err == nil {
			log.Printf("✅ [dispatch] %s accepted %s", p.Sink, p.Submission.ID)
			return nil
		}
		var limited retryAfterError
		if errors.As(err, &limited) {
			return fmt.Errorf("%s: %v: %w", p.Sink, err, asynq.SkipRetry)
		}
		return fmt.Errorf("%s: %w", p.Sink, err)
	}
}

// RegisterDispatchHandlers binds the lead tasks on mux.
func RegisterDispatchHandlers(d *Dispatcher) func(*asynq.ServeMux) error {
	return func(mux *asynq.ServeMux) error {
		mux.HandleFunc(jobs.TypeDispatchLead, HandleDispatchLead(d.Sinks()))
		return nil
	}
}
