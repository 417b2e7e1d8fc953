package retouch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskID identifies one submission to an Engine. IDs are unique per
// process and never reused.
type TaskID string

func newTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// TaskState is the lifecycle state of a Task.
//
//	Queued -> Running -> Completed | Failed | Cancelled
//	Queued -> Cancelled
type TaskState int32

const (
	TaskQueued TaskState = iota
	TaskRunning
	TaskCompleted
	TaskFailed
	TaskCancelled
)

// String returns the state name.
func (s TaskState) String() string {
	switch s {
	case TaskQueued:
		return "queued"
	case TaskRunning:
		return "running"
	case TaskCompleted:
		return "completed"
	case TaskFailed:
		return "failed"
	case TaskCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s TaskState) IsTerminal() bool {
	return s >= TaskCompleted
}

// EventKind tells what an Event reports.
type EventKind uint8

const (
	EventStarted EventKind = iota
	EventProgress
	EventCompleted
	EventFailed
	EventCancelled
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventProgress:
		return "progress"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	case EventCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether k ends the event stream.
func (k EventKind) IsTerminal() bool {
	return k >= EventCompleted
}

// Event is one message of a task's event stream. Every event carries the
// id of the task that produced it.
type Event struct {
	TaskID TaskID
	Kind   EventKind

	// Progress is the fraction of active stages finished, in [0, 1].
	Progress float64
	Stage    Stage
	Label    string

	// Raster is set on EventCompleted only.
	Raster *Raster

	// Err is set on EventFailed and EventCancelled; it matches
	// ErrCancelled for the latter.
	Err error
}

// Task is one pipeline run submitted to an Engine.
//
// Its event stream starts with EventStarted (unless the task is cancelled
// while queued), continues with one EventProgress per finished stage and
// ends with exactly one terminal event, after which the channel is closed.
// The channel is buffered for the whole run, so a slow reader never stalls
// the engine.
type Task struct {
	id        TaskID
	slot      string
	raster    *Raster
	params    Params
	submitted time.Time

	ctx    context.Context
	cancel context.CancelCauseFunc

	events chan Event
	done   chan struct{}

	mu     sync.Mutex
	state  TaskState
	result *Raster
	err    error
}

func newTask(slot string, r *Raster, p Params) *Task {
	ctx, cancel := context.WithCancelCause(context.Background())
	stages := max(len(p.ActiveStages()), 1)
	return &Task{
		id:        newTaskID(),
		slot:      slot,
		raster:    r,
		params:    p,
		submitted: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan Event, stages+2),
		done:      make(chan struct{}),
	}
}

// ID returns the task identifier.
func (t *Task) ID() TaskID { return t.id }

// Slot returns the slot the task was submitted for.
func (t *Task) Slot() string { return t.slot }

// Params returns the parameters the task applies.
func (t *Task) Params() Params { return t.params }

// State returns the current lifecycle state.
func (t *Task) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Events returns the task's event stream.
func (t *Task) Events() <-chan Event { return t.events }

// Done is closed once the task reaches a terminal state.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel stops the task. A queued task never starts; a running task
// finishes its current stage and drops the result. The EventCancelled is
// emitted before Cancel returns. Cancelling a finished task does nothing.
func (t *Task) Cancel() {
	t.cancelWith(ErrCancelled)
}

// cancelWith reports whether this call moved the task to Cancelled.
func (t *Task) cancelWith(cause error) bool {
	t.cancel(cause)
	return t.finish(nil, cause)
}

// Wait blocks until the task is done or ctx ends. It returns the final
// raster of a completed task, or the error of a failed or cancelled one.
func (t *Task) Wait(ctx context.Context) (*Raster, error) {
	select {
	case <-t.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result, t.err
}

// start moves a queued task to Running and hands over its input raster.
func (t *Task) start() (*Raster, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TaskQueued {
		return nil, false
	}
	t.state = TaskRunning
	t.events <- Event{TaskID: t.id, Kind: EventStarted}
	return t.raster, true
}

func (t *Task) progress(p Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TaskRunning {
		return
	}
	t.events <- Event{
		TaskID:   t.id,
		Kind:     EventProgress,
		Progress: p.Fraction,
		Stage:    p.Stage,
		Label:    p.Label,
	}
}

// finish records the outcome and emits the terminal event. Only the first
// call has any effect; it reports whether it was that call.
func (t *Task) finish(out *Raster, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.IsTerminal() {
		return false
	}

	ev := Event{TaskID: t.id}
	switch {
	case err == nil:
		t.state, ev.Kind = TaskCompleted, EventCompleted
		ev.Progress, ev.Raster = 1, out
		t.result = out
	case errors.Is(err, ErrCancelled):
		t.state, ev.Kind = TaskCancelled, EventCancelled
		ev.Err = err
	default:
		t.state, ev.Kind = TaskFailed, EventFailed
		ev.Err = err
	}
	t.err = err
	t.raster = nil

	t.events <- ev
	close(t.events)
	close(t.done)
	t.cancel(nil)
	return true
}
