package observable

import "sync"

type unsubscriber interface {
	unsubscribe(id string)
}

// Unsubscriber cancels one subscription. It owns no data.
// The zero value is an inert, already disposed handle.
type Unsubscriber struct {
	id    string
	owner unsubscriber
	once  sync.Once
}

// ID returns the subscription identity.
func (u *Unsubscriber) ID() string {
	return u.id
}

// Dispose removes the subscription from its observable.
// Only the first call has an effect.
func (u *Unsubscriber) Dispose() {
	u.once.Do(func() {
		if u.owner != nil {
			u.owner.unsubscribe(u.id)
		}
	})
}
