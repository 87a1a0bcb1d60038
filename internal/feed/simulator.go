package feed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
)

// defaultInterval is how often the simulator fires an event while
// connected.
const defaultInterval = 30 * time.Second

// cannedMessages are the synthetic notification texts the simulator
// picks from.
var cannedMessages = []string{
	"A new task was assigned to you",
	"A task was updated by a teammate",
	"A project was updated",
	"Reminder: a task is close to its due date",
}

// Handler consumes a broadcast event. Handlers run synchronously on the
// emitting goroutine; a handler that reads the store sees the state the
// event describes.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	kind    Type
	handler Handler
}

// Simulator periodically mutates the store the way an inbound real-time
// feed would, and fans events out to subscribers. It has two states,
// disconnected (initial) and connected; Connect and Disconnect are both
// idempotent.
type Simulator struct {
	store *store.Store

	mu          sync.Mutex
	subscribers map[Type]map[*Subscription]struct{}
	connected   bool
	stopCh      chan struct{}

	interval time.Duration
	intn     func(n int) int
	now      func() time.Time
}

// Option configures a Simulator at construction time.
type Option func(*Simulator)

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithRand overrides the random source, for deterministic tests. The
// function must behave like rand.Intn.
func WithRand(intn func(n int) int) Option {
	return func(s *Simulator) { s.intn = intn }
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New creates a disconnected Simulator bound to the given store.
func New(st *store.Store, opts ...Option) *Simulator {
	s := &Simulator{
		store:       st,
		subscribers: make(map[Type]map[*Subscription]struct{}),
		interval:    defaultInterval,
		intn:        rand.Intn,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect transitions the simulator to connected and starts the tick
// loop. Calling Connect while already connected is a no-op.
func (s *Simulator) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return
	}
	s.connected = true
	s.stopCh = make(chan struct{})
	go s.run(s.stopCh)
}

// Disconnect stops the tick loop. It is safe to call repeatedly and
// before Connect was ever called.
func (s *Simulator) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return
	}
	close(s.stopCh)
	s.stopCh = nil
	s.connected = false
}

// Connected reports whether the tick loop is running.
func (s *Simulator) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Subscribe registers a handler for one event kind and returns the
// subscription handle used to remove it.
func (s *Simulator) Subscribe(kind Type, handler Handler) *Subscription {
	sub := &Subscription{kind: kind, handler: handler}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.subscribers[kind]
	if !ok {
		set = make(map[*Subscription]struct{})
		s.subscribers[kind] = set
	}
	set[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a previously registered handler. Unknown or
// already-removed subscriptions are ignored.
func (s *Simulator) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.subscribers[sub.kind]; ok {
		delete(set, sub)
	}
}

// EmitTaskCreated broadcasts a task_created event on behalf of a UI
// surface that just created the task itself. No store mutation happens
// here.
func (s *Simulator) EmitTaskCreated(task model.Task) {
	s.emit(TypeTaskCreated, TaskCreatedPayload{Task: task})
}

// EmitTaskDeleted broadcasts a task_deleted event on behalf of a UI
// surface that just deleted the task itself.
func (s *Simulator) EmitTaskDeleted(taskID string) {
	s.emit(TypeTaskDeleted, TaskDeletedPayload{TaskID: taskID})
}

// EmitProjectUpdated broadcasts a project_updated event on behalf of a
// UI surface that just edited the project itself.
func (s *Simulator) EmitProjectUpdated(project model.Project) {
	s.emit(TypeProjectUpdated, ProjectUpdatedPayload{Project: project})
}

// run is the tick loop. It owns no state; stopping is signalled through
// the stop channel captured at Connect time.
func (s *Simulator) run(stopCh chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick performs one simulated event: either a task status change or a
// synthetic notification, chosen uniformly. Preconditions that do not
// hold (no tasks, no signed-in user, randomly picked status equals the
// current one) degrade to a silent skip for that tick.
func (s *Simulator) tick() {
	if s.intn(2) == 0 {
		s.simulateTaskUpdate()
	} else {
		s.simulateNotification()
	}
}

func (s *Simulator) simulateTaskUpdate() {
	tasks := s.store.Tasks()
	if len(tasks) == 0 {
		return
	}

	task := tasks[s.intn(len(tasks))]
	newStatus := model.AllStatuses[s.intn(len(model.AllStatuses))]
	if newStatus == task.Status {
		return
	}

	if !s.store.MoveTask(task.ID, newStatus) {
		return
	}

	updated := s.store.TaskByID(task.ID)
	if updated == nil {
		return
	}

	s.emit(TypeTaskUpdated, TaskUpdatedPayload{
		TaskID:    task.ID,
		NewStatus: newStatus,
		Task:      *updated,
	})
}

func (s *Simulator) simulateNotification() {
	currentUser := s.store.CurrentUser()
	if currentUser == nil {
		return
	}

	message := cannedMessages[s.intn(len(cannedMessages))]

	s.store.AddNotification(store.NotificationDraft{
		Title:   "Real-time update",
		Message: message,
		Type:    model.NotificationInfo,
		Read:    false,
		UserID:  currentUser.ID,
	})

	s.emit(TypeNotificationAdded, NotificationAddedPayload{Message: message})
}

// emit invokes every handler registered for the kind, synchronously and
// in unspecified order. The store mutation for a tick always happens
// before emit is called.
func (s *Simulator) emit(kind Type, payload Payload) {
	event := Event{
		Type:      kind,
		Timestamp: s.now(),
		Payload:   payload,
	}

	s.mu.Lock()
	handlers := make([]Handler, 0, len(s.subscribers[kind]))
	for sub := range s.subscribers[kind] {
		handlers = append(handlers, sub.handler)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}
