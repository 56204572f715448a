package observable

// Observer receives values, completion and error signals from an Observable.
type Observer[T any] interface {
	// OnNext handles one pushed value. A non-nil error aborts the push.
	OnNext(data T) error

	// OnCompleted is called once when the observable completes.
	OnCompleted()

	// OnError is called once when the observable ends with a failure.
	OnError(err error)
}

// Funcs adapts optional callbacks to the Observer interface.
// Nil callbacks are skipped.
type Funcs[T any] struct {
	Next      func(T) error
	Completed func()
	Error     func(error)
}

func (f Funcs[T]) OnNext(data T) error {
	if f.Next == nil {
		return nil
	}
	return f.Next(data)
}

func (f Funcs[T]) OnCompleted() {
	if f.Completed != nil {
		f.Completed()
	}
}

func (f Funcs[T]) OnError(err error) {
	if f.Error != nil {
		f.Error(err)
	}
}

// NextFunc is an Observer that only handles pushed values.
type NextFunc[T any] func(T) error

func (fn NextFunc[T]) OnNext(data T) error { return fn(data) }
func (fn NextFunc[T]) OnCompleted()        {}
func (fn NextFunc[T]) OnError(error)       {}
