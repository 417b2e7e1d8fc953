package retouch

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/retouch/internal/parallel"
)

// Engine runs pipeline tasks on its own goroutines so callers never block
// on pixel work.
//
// Each submission targets a slot, a caller-chosen name for one logical
// edit. Submitting to a slot that already has a live task cancels that
// task first; its terminal event is EventCancelled and its output is never
// surfaced. Tasks for different slots run side by side, up to the worker
// count set with WithWorkers, and otherwise start in submission order.
//
// An Engine is safe for concurrent use. Close releases its goroutines.
type Engine struct {
	opts engineOptions
	log  *slog.Logger
	pool *parallel.WorkerPool

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*Task
	slots  map[string]*Task
	closed bool

	wg sync.WaitGroup

	// started, when set, runs on the worker right after a task starts.
	started func(*Task)
}

// NewEngine starts an engine. It fails with ErrWorkerUnavailable when the
// options ask for no task workers or a negative parallelism.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		return nil, &OpError{Op: "engine", Err: fmt.Errorf("%w: %d workers", ErrWorkerUnavailable, o.workers)}
	}
	if o.parallelism < 0 {
		return nil, &OpError{Op: "engine", Err: fmt.Errorf("%w: parallelism %d", ErrWorkerUnavailable, o.parallelism)}
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	e := &Engine{
		opts:  o,
		log:   log,
		slots: make(map[string]*Task),
	}
	e.cond = sync.NewCond(&e.mu)
	if o.parallelism != 1 {
		e.pool = parallel.NewWorkerPool(o.parallelism)
	}

	e.wg.Add(o.workers)
	for range o.workers {
		go e.worker()
	}

	bands := 1
	if e.pool != nil {
		bands = e.pool.Workers()
	}
	e.log.Info("retouch: engine started", "workers", o.workers, "parallelism", bands)
	return e, nil
}

// Process submits r for processing with p under slot and returns at once.
//
// The engine takes ownership of r until the task is done; the caller must
// not modify it meanwhile. A live task already holding slot is cancelled.
// Parameter errors are reported through the task's EventFailed.
func (e *Engine) Process(slot string, r *Raster, p Params) (*Task, error) {
	if err := r.validate("process"); err != nil {
		e.log.Warn("retouch: submission rejected", "slot", slot, "err", err)
		return nil, err
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		e.log.Warn("retouch: submission rejected", "slot", slot, "err", ErrWorkerUnavailable)
		return nil, &OpError{Op: "process", Err: fmt.Errorf("%w: engine closed", ErrWorkerUnavailable)}
	}

	t := newTask(slot, r, p)
	if prev := e.slots[slot]; prev != nil {
		if prev.cancelWith(fmt.Errorf("%w: superseded by task %s", ErrCancelled, t.id)) {
			e.log.Warn("retouch: task superseded", "task_id", prev.id, "slot", slot, "by", t.id)
		}
	}
	e.slots[slot] = t
	e.queue = append(e.queue, t)
	e.cond.Signal()
	e.mu.Unlock()

	e.log.Debug("retouch: task queued", "task_id", t.id, "slot", slot, "stages", len(p.ActiveStages()))
	return t, nil
}

// Cancel cancels the live task of slot, if any, and reports whether there
// was one.
func (e *Engine) Cancel(slot string) bool {
	e.mu.Lock()
	t := e.slots[slot]
	delete(e.slots, slot)
	e.mu.Unlock()

	if t == nil || !t.cancelWith(ErrCancelled) {
		return false
	}
	e.log.Warn("retouch: task cancelled", "task_id", t.id, "slot", slot)
	return true
}

// Current returns the live task of slot, or nil when the slot is idle.
func (e *Engine) Current(slot string) *Task {
	e.mu.Lock()
	t := e.slots[slot]
	e.mu.Unlock()

	if t == nil || t.State().IsTerminal() {
		return nil
	}
	return t
}

// Close cancels every queued and running task, waits for the task
// goroutines to exit and stops the band workers. Process fails with
// ErrWorkerUnavailable afterwards. Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	live := make([]*Task, 0, len(e.slots))
	for _, t := range e.slots {
		live = append(live, t)
	}
	clear(e.slots)
	e.queue = nil
	e.cond.Broadcast()
	e.mu.Unlock()

	cause := fmt.Errorf("%w: engine closed", ErrCancelled)
	for _, t := range live {
		if t.cancelWith(cause) {
			e.log.Warn("retouch: task cancelled", "task_id", t.id, "slot", t.slot)
		}
	}

	e.wg.Wait()
	if e.pool != nil {
		e.pool.Close()
	}
	e.log.Info("retouch: engine stopped")
}

func (e *Engine) worker() {
	defer e.wg.Done()
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.closed {
			e.cond.Wait()
		}
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		t := e.queue[0]
		e.queue[0] = nil
		e.queue = e.queue[1:]
		e.mu.Unlock()

		e.run(t)
	}
}

func (e *Engine) run(t *Task) {
	defer e.release(t)

	src, ok := t.start()
	if !ok {
		return
	}
	log := e.log.With("task_id", t.id, "slot", t.slot)
	log.Debug("retouch: task started", "waited", time.Since(t.submitted))
	if e.started != nil {
		e.started(t)
	}

	begin := time.Now()
	last := begin
	out, err := runPipeline(t.ctx, e.pool, src, t.params, e.opts.yield, func(p Progress) {
		now := time.Now()
		log.Debug("retouch: stage done", "stage", p.Stage, "elapsed", now.Sub(last))
		last = now
		t.progress(p)
	})

	if !t.finish(out, err) {
		log.Debug("retouch: result dropped", "elapsed", time.Since(begin))
		return
	}
	switch {
	case err == nil:
		log.Debug("retouch: task completed", "elapsed", time.Since(begin))
	case errors.Is(err, ErrCancelled):
		log.Warn("retouch: task cancelled", "elapsed", time.Since(begin))
	default:
		log.Error("retouch: task failed", "elapsed", time.Since(begin), "err", err)
	}
}

// release forgets t if it still owns its slot.
func (e *Engine) release(t *Task) {
	e.mu.Lock()
	if e.slots[t.slot] == t {
		delete(e.slots, t.slot)
	}
	e.mu.Unlock()
}
