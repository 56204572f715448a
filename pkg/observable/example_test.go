package observable_test

import (
	"fmt"

	"github.com/dmitrymomot/enginekit/pkg/observable"
)

func ExampleObservable() {
	frames := observable.New[int](observable.WithName("frames"))

	first, _ := frames.Subscribe(observable.NextFunc[int](func(n int) error {
		fmt.Println("first saw frame", n)
		return nil
	}))
	_, _ = frames.Subscribe(observable.Funcs[int]{
		Next: func(n int) error {
			fmt.Println("second saw frame", n)
			return nil
		},
		Completed: func() { fmt.Println("second completed") },
	})

	_ = frames.Push(1)
	first.Dispose()
	_ = frames.Push(2)
	frames.Complete()

	// Output:
	// first saw frame 1
	// second saw frame 1
	// second saw frame 2
	// second completed
}
