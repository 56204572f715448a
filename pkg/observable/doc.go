// Package observable provides the synchronous, typed broadcaster every engine
// notification channel is built on.
//
// An Observable[T] keeps an ordered list of subscribed observers. Push
// delivers a value to each of them, in subscription order, before returning.
// Subscribing returns an *Unsubscriber whose Dispose removes exactly that
// subscription; disposing twice is a no-op.
//
// Basic usage:
//
//	textures := observable.New[uint32](observable.WithName("dispose_texture"))
//
//	unsub, err := textures.Subscribe(observable.NextFunc[uint32](func(id uint32) error {
//		fmt.Println("texture released:", id)
//		return nil
//	}))
//	if err != nil {
//		return err
//	}
//	defer unsub.Dispose()
//
//	if err := textures.Push(42); err != nil {
//		// an observer failed; the remaining observers were not notified
//	}
//
// # Delivery Semantics
//
// Each Push iterates a snapshot of the subscriber list taken when Push is
// called. Observers subscribed while a push is running first receive the next
// push. Observers disposed while a push is running are skipped if the push
// has not reached them yet. Subscribe and Dispose may be called from inside
// OnNext.
//
// Delivery is fail-fast: the first error returned by OnNext stops the push
// and is returned to the caller wrapped in a *DeliveryError. Panics raised by
// observers are not recovered.
//
// # Completion
//
// Complete and Fail notify every current observer once and end the
// observable. Afterwards Push is a no-op and Subscribe immediately calls the
// new observer's OnCompleted and returns an already disposed handle.
//
// # Concurrency
//
// The subscriber list is guarded by a mutex, and delivery happens outside the
// lock. The engine announces from a single goroutine; concurrent producers
// get no ordering guarantee between their pushes.
package observable
