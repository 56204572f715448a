package observable

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/enginekit/pkg/guard"
	"github.com/dmitrymomot/enginekit/pkg/logger"
)

type subscription[T any] struct {
	id       string
	observer Observer[T]
	active   bool // guarded by Observable.mu
}

// Observable broadcasts values of type T to subscribed observers.
// All methods are safe for concurrent use.
type Observable[T any] struct {
	name      string
	subs      []*subscription[T]
	completed bool
	mu        sync.Mutex
	log       *slog.Logger
	metrics   Metrics
}

// New creates an observable with no subscribers.
func New[T any](opts ...Option) *Observable[T] {
	cfg := &config{name: "unnamed"}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Noop()
	}
	if cfg.metrics == nil {
		cfg.metrics = noopMetrics{}
	}

	return &Observable[T]{
		name:    cfg.name,
		log:     cfg.logger.With(logger.Channel(cfg.name)),
		metrics: cfg.metrics,
	}
}

// Name returns the channel name.
func (o *Observable[T]) Name() string {
	return o.name
}

// Len returns the number of active subscriptions.
func (o *Observable[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// Completed reports whether Complete or Fail has been called.
func (o *Observable[T]) Completed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.completed
}

// Subscribe appends observer to the delivery order and returns the handle
// that removes it. A nil observer is rejected before anything else happens.
//
// Subscribing to a completed observable calls observer.OnCompleted right
// away and returns a handle that is already disposed.
func (o *Observable[T]) Subscribe(observer Observer[T]) (*Unsubscriber, error) {
	if err := guard.RequireNonNull(observer, "observer"); err != nil {
		return nil, err
	}

	id := uuid.New().String()

	o.mu.Lock()
	if o.completed {
		o.mu.Unlock()
		observer.OnCompleted()
		return &Unsubscriber{id: id}, nil
	}
	o.subs = append(o.subs, &subscription[T]{id: id, observer: observer, active: true})
	count := len(o.subs)
	o.mu.Unlock()

	o.log.Debug("observer subscribed", logger.SubscriptionID(id), logger.Subscribers(count))
	o.metrics.SubscribersChanged(o.name, count)

	return &Unsubscriber{id: id, owner: o}, nil
}

// Push delivers data to every observer subscribed when Push was called, in
// subscription order. It returns after the last observer has processed the
// value, or with a *DeliveryError as soon as one observer fails. Observers
// after the failing one are not notified.
//
// Push on a completed observable does nothing.
func (o *Observable[T]) Push(data T) error {
	o.mu.Lock()
	if o.completed {
		o.mu.Unlock()
		return nil
	}
	// Snapshot: subscriptions added by observers during delivery wait for the next push.
	snapshot := slices.Clone(o.subs)
	o.mu.Unlock()

	delivered := 0
	for _, sub := range snapshot {
		if !o.isActive(sub) {
			continue
		}
		if err := sub.observer.OnNext(data); err != nil {
			derr := &DeliveryError{Channel: o.name, SubscriptionID: sub.id, Err: err}
			o.log.Warn("observer failed during delivery",
				logger.SubscriptionID(sub.id),
				logger.Error(err),
			)
			o.metrics.Delivered(o.name, delivered, derr)
			return derr
		}
		delivered++
	}

	o.metrics.Delivered(o.name, delivered, nil)
	return nil
}

// Complete calls OnCompleted on every current observer once and ends the
// observable. Repeated calls do nothing.
func (o *Observable[T]) Complete() {
	subs, ok := o.end()
	if !ok {
		return
	}

	o.log.Debug("observable completed", logger.Subscribers(len(subs)))
	for _, sub := range subs {
		sub.observer.OnCompleted()
	}
}

// Fail calls OnError(err) on every current observer once and ends the
// observable. A nil err is rejected. Calls after the observable has ended
// do nothing.
func (o *Observable[T]) Fail(err error) error {
	if e := guard.RequireNonNull(err, "err"); e != nil {
		return e
	}

	subs, ok := o.end()
	if !ok {
		return nil
	}

	o.log.Debug("observable failed", logger.Subscribers(len(subs)), logger.Error(err))
	for _, sub := range subs {
		sub.observer.OnError(err)
	}
	return nil
}

// end marks the observable completed and detaches all subscriptions.
// It returns false when the observable had already ended.
func (o *Observable[T]) end() ([]*subscription[T], bool) {
	o.mu.Lock()
	if o.completed {
		o.mu.Unlock()
		return nil, false
	}
	o.completed = true
	subs := o.subs
	o.subs = nil
	for _, sub := range subs {
		sub.active = false
	}
	o.mu.Unlock()

	o.metrics.SubscribersChanged(o.name, 0)
	return subs, true
}

func (o *Observable[T]) isActive(sub *subscription[T]) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return sub.active
}

func (o *Observable[T]) unsubscribe(id string) {
	o.mu.Lock()
	i := slices.IndexFunc(o.subs, func(s *subscription[T]) bool { return s.id == id })
	if i < 0 {
		o.mu.Unlock()
		return
	}
	o.subs[i].active = false
	o.subs = slices.Delete(o.subs, i, i+1)
	count := len(o.subs)
	o.mu.Unlock()

	o.log.Debug("observer unsubscribed", logger.SubscriptionID(id), logger.Subscribers(count))
	o.metrics.SubscribersChanged(o.name, count)
}
