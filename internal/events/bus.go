package events

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/2beens/fitsync/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

type Listener func(Event)

type subscription struct {
	id       uint64
	listener Listener
	signals  map[Signal]bool // empty means all signals
}

func (s *subscription) wants(e Event) bool {
	if len(s.signals) == 0 {
		return true
	}
	for _, sig := range e.Signals() {
		if s.signals[sig] {
			return true
		}
	}
	return false
}

// Bus delivers events synchronously to the listeners registered at the time of
// publishing, in registration order. Nothing is retained for late subscribers.
type Bus struct {
	mu             sync.RWMutex
	nextID         uint64
	subscriptions  []*subscription
	metricsManager *metrics.Manager
}

func NewBus(metricsManager *metrics.Manager) *Bus {
	return &Bus{
		metricsManager: metricsManager,
	}
}

// Subscribe registers the listener for the given signals, or for every signal when
// none are given. The returned func removes the subscription and is safe to call twice.
func (b *Bus) Subscribe(listener Listener, signals ...Signal) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{
		id:       b.nextID,
		listener: listener,
		signals:  make(map[Signal]bool, len(signals)),
	}
	for _, s := range signals {
		sub.signals[s] = true
	}
	b.subscriptions = append(b.subscriptions, sub)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(sub.id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subscriptions {
		if s.id == id {
			b.subscriptions = append(b.subscriptions[:i:i], b.subscriptions[i+1:]...)
			return
		}
	}
}

// Publish calls each interested listener exactly once, even when it subscribed
// to more than one of the event's signals.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subscriptions))
	copy(subs, b.subscriptions)
	b.mu.RUnlock()

	if b.metricsManager != nil {
		b.metricsManager.CounterBusEvents.WithLabelValues(string(e.Kind)).Inc()
	}

	log.Tracef("bus: publishing %s [%s] to %d subscribers", e.Kind, e.ID, len(subs))

	for _, s := range subs {
		if !s.wants(e) {
			continue
		}
		b.deliver(s.listener, e)
	}
}

func (b *Bus) deliver(listener Listener, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("bus: listener panic on %s: %v\n%s", e.Kind, r, debug.Stack())
			if b.metricsManager != nil {
				b.metricsManager.CounterListenerPanics.Inc()
			}
		}
	}()
	listener(e)
}

func (b *Bus) SubscribersCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}

func (e Event) String() string {
	return fmt.Sprintf("%s{course=%s workout=%s auth=%t}", e.Kind, e.CourseID, e.WorkoutID, e.Authenticated)
}
