package observable

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enginekit/pkg/guard"
)

type recorder struct {
	name      string
	log       *[]string
	completed int
	errs      []error
}

func (r *recorder) OnNext(data int) error {
	*r.log = append(*r.log, fmt.Sprintf("%s:%d", r.name, data))
	return nil
}

func (r *recorder) OnCompleted()      { r.completed++ }
func (r *recorder) OnError(err error) { r.errs = append(r.errs, err) }

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) OnNext(data string) error { return m.Called(data).Error(0) }
func (m *mockObserver) OnCompleted()             { m.Called() }
func (m *mockObserver) OnError(err error)        { m.Called(err) }

type countingMetrics struct {
	mu          sync.Mutex
	subscribers map[string]int
	pushes      int
	failures    int
}

func (m *countingMetrics) SubscribersChanged(channel string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.subscribers == nil {
		m.subscribers = make(map[string]int)
	}
	m.subscribers[channel] = n
}

func (m *countingMetrics) Delivered(_ string, _ int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushes++
	if err != nil {
		m.failures++
	}
}

func TestObservable_Subscribe(t *testing.T) {
	t.Run("rejects nil observer", func(t *testing.T) {
		o := New[int]()

		unsub, err := o.Subscribe(nil)
		require.Error(t, err)
		assert.Nil(t, unsub)
		assert.ErrorIs(t, err, guard.ErrArgumentNull)
		assert.Contains(t, err.Error(), "(Parameter 'observer')")
		assert.Equal(t, 0, o.Len())
	})

	t.Run("rejects typed nil observer", func(t *testing.T) {
		o := New[int]()
		var r *recorder

		_, err := o.Subscribe(r)
		assert.ErrorIs(t, err, guard.ErrArgumentNull)
		assert.Equal(t, 0, o.Len())
	})

	t.Run("returns handle with unique id", func(t *testing.T) {
		o := New[int]()
		var log []string

		u1, err := o.Subscribe(&recorder{name: "a", log: &log})
		require.NoError(t, err)
		u2, err := o.Subscribe(&recorder{name: "b", log: &log})
		require.NoError(t, err)

		assert.NotEmpty(t, u1.ID())
		assert.NotEqual(t, u1.ID(), u2.ID())
		assert.Equal(t, 2, o.Len())
	})

	t.Run("same observer twice gets two subscriptions", func(t *testing.T) {
		o := New[int]()
		var log []string
		r := &recorder{name: "a", log: &log}

		_, err := o.Subscribe(r)
		require.NoError(t, err)
		_, err = o.Subscribe(r)
		require.NoError(t, err)

		require.NoError(t, o.Push(1))
		assert.Equal(t, []string{"a:1", "a:1"}, log)
	})
}

func TestObservable_Push(t *testing.T) {
	t.Run("delivers in subscription order", func(t *testing.T) {
		o := New[int]()
		var log []string

		for _, name := range []string{"o1", "o2", "o3", "o4"} {
			_, err := o.Subscribe(&recorder{name: name, log: &log})
			require.NoError(t, err)
		}

		require.NoError(t, o.Push(7))
		assert.Equal(t, []string{"o1:7", "o2:7", "o3:7", "o4:7"}, log)
	})

	t.Run("push without subscribers is a no-op", func(t *testing.T) {
		o := New[int]()
		assert.NoError(t, o.Push(1))
	})

	t.Run("disposed observer receives nothing", func(t *testing.T) {
		o := New[int]()
		var log []string

		u1, err := o.Subscribe(&recorder{name: "a", log: &log})
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "b", log: &log})
		require.NoError(t, err)

		u1.Dispose()
		require.NoError(t, o.Push(1))
		assert.Equal(t, []string{"b:1"}, log)
		assert.Equal(t, 1, o.Len())
	})

	t.Run("double dispose is a no-op", func(t *testing.T) {
		o := New[int]()
		var log []string

		u1, err := o.Subscribe(&recorder{name: "a", log: &log})
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "b", log: &log})
		require.NoError(t, err)

		u1.Dispose()
		assert.NotPanics(t, u1.Dispose)
		assert.Equal(t, 1, o.Len())

		require.NoError(t, o.Push(2))
		assert.Equal(t, []string{"b:2"}, log)
	})

	t.Run("observer error stops the push", func(t *testing.T) {
		o := New[int](WithName("batch_size"))
		var log []string
		boom := errors.New("boom")

		_, err := o.Subscribe(&recorder{name: "a", log: &log})
		require.NoError(t, err)
		failing, err := o.Subscribe(NextFunc[int](func(int) error { return boom }))
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "c", log: &log})
		require.NoError(t, err)

		err = o.Push(3)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, ErrDeliveryFailed)

		var derr *DeliveryError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "batch_size", derr.Channel)
		assert.Equal(t, failing.ID(), derr.SubscriptionID)

		assert.Equal(t, []string{"a:3"}, log)
	})

	t.Run("channel stays usable after a failed push", func(t *testing.T) {
		o := New[int]()
		var log []string
		fail := true

		_, err := o.Subscribe(NextFunc[int](func(int) error {
			if fail {
				return errors.New("first push fails")
			}
			return nil
		}))
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "b", log: &log})
		require.NoError(t, err)

		require.Error(t, o.Push(1))
		fail = false
		require.NoError(t, o.Push(2))
		assert.Equal(t, []string{"b:2"}, log)
	})

	t.Run("observer panic propagates", func(t *testing.T) {
		o := New[int]()
		_, err := o.Subscribe(NextFunc[int](func(int) error { panic("gpu gone") }))
		require.NoError(t, err)

		assert.PanicsWithValue(t, "gpu gone", func() { _ = o.Push(1) })
	})
}

func TestObservable_Reentrancy(t *testing.T) {
	t.Run("subscribe during push waits for next push", func(t *testing.T) {
		o := New[int]()
		var log []string
		late := &recorder{name: "late", log: &log}
		added := false

		_, err := o.Subscribe(NextFunc[int](func(v int) error {
			log = append(log, fmt.Sprintf("first:%d", v))
			if !added {
				added = true
				_, err := o.Subscribe(late)
				return err
			}
			return nil
		}))
		require.NoError(t, err)

		require.NoError(t, o.Push(1))
		assert.Equal(t, []string{"first:1"}, log)

		require.NoError(t, o.Push(2))
		assert.Equal(t, []string{"first:1", "first:2", "late:2"}, log)
	})

	t.Run("unsubscribe later observer during push skips it", func(t *testing.T) {
		o := New[int]()
		var log []string
		var second *Unsubscriber

		_, err := o.Subscribe(NextFunc[int](func(v int) error {
			log = append(log, fmt.Sprintf("first:%d", v))
			second.Dispose()
			return nil
		}))
		require.NoError(t, err)
		second, err = o.Subscribe(&recorder{name: "second", log: &log})
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "third", log: &log})
		require.NoError(t, err)

		require.NoError(t, o.Push(1))
		assert.Equal(t, []string{"first:1", "third:1"}, log)
		assert.Equal(t, 2, o.Len())
	})

	t.Run("observer disposes itself during push", func(t *testing.T) {
		o := New[int]()
		var log []string
		var self *Unsubscriber

		self, err := o.Subscribe(NextFunc[int](func(v int) error {
			log = append(log, fmt.Sprintf("once:%d", v))
			self.Dispose()
			return nil
		}))
		require.NoError(t, err)
		_, err = o.Subscribe(&recorder{name: "after", log: &log})
		require.NoError(t, err)

		require.NoError(t, o.Push(1))
		require.NoError(t, o.Push(2))
		assert.Equal(t, []string{"once:1", "after:1", "after:2"}, log)
	})
}

func TestObservable_Complete(t *testing.T) {
	t.Run("notifies current observers once", func(t *testing.T) {
		o := New[int]()
		var log []string
		a := &recorder{name: "a", log: &log}
		b := &recorder{name: "b", log: &log}

		_, err := o.Subscribe(a)
		require.NoError(t, err)
		_, err = o.Subscribe(b)
		require.NoError(t, err)

		o.Complete()
		o.Complete()

		assert.Equal(t, 1, a.completed)
		assert.Equal(t, 1, b.completed)
		assert.True(t, o.Completed())
		assert.Equal(t, 0, o.Len())
	})

	t.Run("push after complete is ignored", func(t *testing.T) {
		o := New[int]()
		var log []string
		u, err := o.Subscribe(&recorder{name: "a", log: &log})
		require.NoError(t, err)

		o.Complete()
		assert.NoError(t, o.Push(1))
		assert.Empty(t, log)
		assert.NotPanics(t, u.Dispose)
	})

	t.Run("subscribe after complete completes the observer", func(t *testing.T) {
		o := New[int]()
		o.Complete()

		var log []string
		r := &recorder{name: "late", log: &log}
		u, err := o.Subscribe(r)
		require.NoError(t, err)
		require.NotNil(t, u)

		assert.Equal(t, 1, r.completed)
		assert.Equal(t, 0, o.Len())
		assert.NotPanics(t, u.Dispose)
	})
}

func TestObservable_Fail(t *testing.T) {
	t.Run("signals error to observers", func(t *testing.T) {
		o := New[string]()
		cause := errors.New("context lost")

		m := &mockObserver{}
		m.On("OnError", cause).Once()

		_, err := o.Subscribe(m)
		require.NoError(t, err)

		require.NoError(t, o.Fail(cause))
		require.NoError(t, o.Fail(cause))
		assert.True(t, o.Completed())
		m.AssertExpectations(t)
	})

	t.Run("rejects nil error", func(t *testing.T) {
		o := New[string]()
		err := o.Fail(nil)
		assert.ErrorIs(t, err, guard.ErrArgumentNull)
		assert.False(t, o.Completed())
	})
}

func TestObservable_MockObserver(t *testing.T) {
	o := New[string]()

	m := &mockObserver{}
	m.On("OnNext", "ctx").Return(nil).Once()
	m.On("OnCompleted").Once()

	_, err := o.Subscribe(m)
	require.NoError(t, err)

	require.NoError(t, o.Push("ctx"))
	o.Complete()
	m.AssertExpectations(t)
}

func TestObservable_Independence(t *testing.T) {
	a := New[int](WithName("a"))
	b := New[int](WithName("b"))
	var log []string

	_, err := a.Subscribe(&recorder{name: "onA", log: &log})
	require.NoError(t, err)
	_, err = b.Subscribe(&recorder{name: "onB", log: &log})
	require.NoError(t, err)

	require.NoError(t, a.Push(1))
	assert.Equal(t, []string{"onA:1"}, log)
}

func TestObservable_Metrics(t *testing.T) {
	m := &countingMetrics{}
	o := New[int](WithName("dispose_sound"), WithMetrics(m))

	u, err := o.Subscribe(NextFunc[int](func(int) error { return nil }))
	require.NoError(t, err)
	_, err = o.Subscribe(NextFunc[int](func(int) error { return errors.New("x") }))
	require.NoError(t, err)
	assert.Equal(t, 2, m.subscribers["dispose_sound"])

	u.Dispose()
	assert.Equal(t, 1, m.subscribers["dispose_sound"])

	require.Error(t, o.Push(1))
	assert.Equal(t, 1, m.pushes)
	assert.Equal(t, 1, m.failures)

	o.Complete()
	assert.Equal(t, 0, m.subscribers["dispose_sound"])
}

func TestObservable_Concurrent(t *testing.T) {
	o := New[int]()

	var mu sync.Mutex
	received := 0

	var wg sync.WaitGroup
	const numGoroutines = 20

	wg.Add(numGoroutines)
	for range numGoroutines {
		go func() {
			defer wg.Done()
			u, err := o.Subscribe(NextFunc[int](func(int) error {
				mu.Lock()
				received++
				mu.Unlock()
				return nil
			}))
			assert.NoError(t, err)
			assert.NoError(t, o.Push(1))
			u.Dispose()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, o.Len())
	assert.Positive(t, received)
}

func BenchmarkObservable_Push(b *testing.B) {
	o := New[int]()
	for range 10 {
		_, _ = o.Subscribe(NextFunc[int](func(int) error { return nil }))
	}

	b.ResetTimer()
	for i := range b.N {
		_ = o.Push(i)
	}
}
