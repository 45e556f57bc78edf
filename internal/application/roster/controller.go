package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// DefaultQueueSize is used when Options.QueueSize is not positive.
const DefaultQueueSize = 64

// ErrNoPublisher is returned by Subscribe when the controller was built
// without an event publisher.
var ErrNoPublisher = errors.New("controller has no event publisher")

// Options configures a Controller.
type Options struct {
	Logger ports.Logger
	// Events receives state snapshots and action lifecycle events.
	// Subscribe requires it.
	Events       ports.EventPublisher
	ReloadPolicy ReloadPolicy
	// InitialLoad schedules a load-all as the first queued action.
	InitialLoad bool
	QueueSize   int
}

// Controller owns the observable roster state. Network actions are queued
// and executed one at a time by a single worker goroutine, so at most one
// action affects state at any moment and snapshots are published in
// version order.
type Controller struct {
	repo   StudentRepository
	logger ports.Logger
	events ports.EventPublisher
	policy ReloadPolicy

	publishMu sync.Mutex
	mu        sync.Mutex
	state     State

	intakeMu sync.RWMutex
	closed   bool
	queue    chan action
	done     chan struct{}

	readyDone  chan struct{}
	readyState State
}

type action struct {
	ctx   context.Context
	op    Operation
	id    student.ID
	req   student.Request
	reply chan State
}

// NewController starts the worker. When opts.InitialLoad is set the first
// load-all is queued before NewController returns; Ready reports its result.
func NewController(repo StudentRepository, opts Options) *Controller {
	policy := opts.ReloadPolicy
	if policy == "" {
		policy = ReloadFull
	}
	size := opts.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}

	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "controller")
	}

	c := &Controller{
		repo:   repo,
		logger: logger,
		events: opts.Events,
		policy: policy,
		queue:     make(chan action, size),
		done:      make(chan struct{}),
		readyDone: make(chan struct{}),
	}

	go c.run()

	if opts.InitialLoad {
		initial := c.LoadAll(context.Background())
		go func() {
			c.readyState = <-initial
			close(c.readyDone)
		}()
	} else {
		c.readyState = c.Snapshot()
		close(c.readyDone)
	}

	return c
}

// Ready yields the snapshot after the initial load, or the initial empty
// snapshot when no initial load was requested. Every call returns its own
// channel carrying the same snapshot.
func (c *Controller) Ready() <-chan State {
	out := make(chan State, 1)
	select {
	case <-c.readyDone:
		out <- c.readyState.clone()
		close(out)
	default:
		go func() {
			<-c.readyDone
			out <- c.readyState.clone()
			close(out)
		}()
	}
	return out
}

// Policy returns the reload policy in effect.
func (c *Controller) Policy() ReloadPolicy {
	return c.policy
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers fn for every published snapshot. fn runs on the
// publishing goroutine and must not call Controller methods synchronously.
func (c *Controller) Subscribe(fn func(State)) (ports.Subscription, error) {
	if c.events == nil {
		return nil, ErrNoPublisher
	}
	if fn == nil {
		return nil, fmt.Errorf("subscribe: nil handler")
	}
	return c.events.Subscribe(ports.EventStateChanged, func(_ context.Context, event ports.DomainEvent) error {
		if snapshot, ok := event.Payload().(State); ok {
			fn(snapshot)
		}
		return nil
	})
}

// LoadAll replaces the collection with the server's list.
func (c *Controller) LoadAll(ctx context.Context) <-chan State {
	return c.submit(action{ctx: ctx, op: OpLoadAll})
}

// LoadOne fetches a student into Selected.
func (c *Controller) LoadOne(ctx context.Context, id student.ID) <-chan State {
	return c.submit(action{ctx: ctx, op: OpLoadOne, id: id})
}

// Create submits a new student and reloads the collection on success.
func (c *Controller) Create(ctx context.Context, req student.Request) <-chan State {
	return c.submit(action{ctx: ctx, op: OpCreate, req: req})
}

// Update replaces a student and reloads the collection on success.
func (c *Controller) Update(ctx context.Context, id student.ID, req student.Request) <-chan State {
	return c.submit(action{ctx: ctx, op: OpUpdate, id: id, req: req})
}

// Delete removes a student and reloads the collection on success.
func (c *Controller) Delete(ctx context.Context, id student.ID) <-chan State {
	return c.submit(action{ctx: ctx, op: OpDelete, id: id})
}

// ClearError drops the current error.
func (c *Controller) ClearError() State {
	return c.apply(context.Background(), OpClearError, func(s *State) { s.Err = nil })
}

// ClearSucceeded resets the success flag and the saved student.
func (c *Controller) ClearSucceeded() State {
	return c.apply(context.Background(), OpClearSucceeded, func(s *State) {
		s.Succeeded = false
		s.Saved = nil
	})
}

// ClearSelected drops the selected student.
func (c *Controller) ClearSelected() State {
	return c.apply(context.Background(), OpClearSelected, func(s *State) { s.Selected = nil })
}

// Close stops accepting actions, lets queued ones finish and waits for the
// worker to exit. It is safe to call more than once.
func (c *Controller) Close() {
	c.intakeMu.Lock()
	if !c.closed {
		c.closed = true
		close(c.queue)
	}
	c.intakeMu.Unlock()
	<-c.done
}

func (c *Controller) submit(a action) <-chan State {
	if a.ctx == nil {
		a.ctx = context.Background()
	}
	reply := make(chan State, 1)
	a.reply = reply

	c.intakeMu.RLock()
	defer c.intakeMu.RUnlock()

	if c.closed {
		snapshot := c.Snapshot()
		snapshot.Operation = a.op
		snapshot.Err = &student.DomainError{
			Code:    student.ErrCodeClosed,
			Message: "controller closed",
			Context: map[string]interface{}{"operation": string(a.op)},
		}
		reply <- snapshot
		close(reply)
		return reply
	}

	c.queue <- a
	return reply
}

func (c *Controller) run() {
	defer close(c.done)
	for a := range c.queue {
		c.execute(a)
		a.reply <- c.Snapshot()
		close(a.reply)
	}
}

func (c *Controller) execute(a action) {
	switch a.op {
	case OpLoadAll:
		c.loadAll(a.ctx)
	case OpLoadOne:
		perform(c, a, func(ctx context.Context) student.Outcome[student.Student] {
			return c.repo.Get(ctx, a.id)
		}, func(s *State, value student.Student) {
			s.Selected = &value
		})
	case OpCreate:
		if value, ok := perform(c, a, func(ctx context.Context) student.Outcome[student.Student] {
			return c.repo.Create(ctx, a.req)
		}, markSaved); ok {
			c.reconcile(a, value)
		}
	case OpUpdate:
		if value, ok := perform(c, a, func(ctx context.Context) student.Outcome[student.Student] {
			return c.repo.Update(ctx, a.id, a.req)
		}, markSaved); ok {
			c.reconcile(a, value)
		}
	case OpDelete:
		if _, ok := perform(c, a, func(ctx context.Context) student.Outcome[struct{}] {
			return c.repo.Delete(ctx, a.id)
		}, func(*State, struct{}) {}); ok {
			c.reconcile(a, student.Student{ID: a.id})
		}
	default:
		c.logWarn(a.ctx, "unknown action dropped", "operation", string(a.op))
	}
}

func (c *Controller) loadAll(ctx context.Context) {
	perform(c, action{ctx: ctx, op: OpLoadAll}, c.repo.List, func(s *State, value []student.Student) {
		if value == nil {
			value = []student.Student{}
		}
		s.Students = value
	})
}

// reconcile runs after a successful mutation, before the next queued action.
func (c *Controller) reconcile(a action, value student.Student) {
	if c.policy == ReloadPatch {
		c.apply(a.ctx, a.op, func(s *State) {
			s.Students = patch(s.Students, a.op, a.id, value)
		})
	}
	c.loadAll(a.ctx)
}

func markSaved(s *State, value student.Student) {
	s.Succeeded = true
	s.Saved = &value
}

// perform runs one repository call bracketed by a loading snapshot and a
// settled snapshot.
func perform[T any](c *Controller, a action, call func(context.Context) student.Outcome[T], effect func(*State, T)) (T, bool) {
	c.apply(a.ctx, a.op, func(s *State) {
		s.Loading = true
		s.Err = nil
		if a.op.IsMutation() {
			s.Succeeded = false
			s.Saved = nil
		}
	})
	c.emit(a.ctx, ports.EventActionStarted, a, nil, 0)

	started := time.Now()
	value, err := safeCall(a.ctx, call).Get()
	elapsed := time.Since(started)

	c.apply(a.ctx, a.op, func(s *State) {
		s.Loading = false
		if err != nil {
			s.Err = err
			return
		}
		effect(s, value)
	})

	if err != nil {
		c.emit(a.ctx, ports.EventActionFailed, a, err, elapsed)
		c.logWarn(a.ctx, "action failed", "operation", string(a.op), "error_code", string(err.Code), "error", err.Summary())
		return value, false
	}
	c.emit(a.ctx, ports.EventActionSucceeded, a, nil, elapsed)
	c.logDebug(a.ctx, "action succeeded", "operation", string(a.op), "duration_ms", elapsed.Milliseconds())
	return value, true
}

// safeCall keeps a misbehaving repository from leaving Loading stuck.
func safeCall[T any](ctx context.Context, call func(context.Context) student.Outcome[T]) (outcome student.Outcome[T]) {
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = student.Failure[T](student.NewInternalError("repository panic", fmt.Errorf("%v", recovered)))
		}
	}()
	return call(ctx)
}

// apply derives the next snapshot from the current one and publishes it.
// publishMu is held across the publish so observers see versions in order.
func (c *Controller) apply(ctx context.Context, op Operation, fn func(*State)) State {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	next := c.state.clone()
	fn(&next)
	next.Version = c.state.Version + 1
	next.Operation = op
	c.state = next
	snapshot := next.clone()
	c.mu.Unlock()

	publishEvent(ctx, c.events, c.logger, ports.EventStateChanged, snapshot)
	return snapshot
}

func (c *Controller) emit(ctx context.Context, eventType string, a action, err *student.DomainError, elapsed time.Duration) {
	payload := map[string]interface{}{"operation": string(a.op)}
	if a.id != 0 {
		payload["student_id"] = a.id.String()
	}
	if err != nil {
		payload["error_code"] = string(err.Code)
	}
	if eventType != ports.EventActionStarted {
		payload["duration_ms"] = elapsed.Milliseconds()
	}
	publishEvent(ctx, c.events, c.logger, eventType, payload)
}

func (c *Controller) logDebug(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, fields...)
	}
}

func (c *Controller) logWarn(ctx context.Context, msg string, fields ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(ctx, msg, fields...)
	}
}
