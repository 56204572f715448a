package cache

import "container/list"

type entry[V any] struct {
	id    uint32
	value V
}

// resident orders live entries by recency. A zero capacity means unbounded.
// It is not synchronized; Cache guards it with its own mutex.
type resident[V any] struct {
	capacity int
	items    map[uint32]*list.Element
	order    *list.List
}

func newResident[V any](capacity int) *resident[V] {
	return &resident[V]{
		capacity: capacity,
		items:    make(map[uint32]*list.Element),
		order:    list.New(),
	}
}

// get returns the value under id and marks it most recently used.
func (r *resident[V]) get(id uint32) (V, bool) {
	if elem, ok := r.items[id]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(*entry[V]).value, true
	}
	var zero V
	return zero, false
}

// put stores v under id. When the capacity is exceeded the least recently
// used entry is removed and returned.
func (r *resident[V]) put(id uint32, v V) (evicted *entry[V]) {
	if elem, ok := r.items[id]; ok {
		r.order.MoveToFront(elem)
		elem.Value.(*entry[V]).value = v
		return nil
	}

	r.items[id] = r.order.PushFront(&entry[V]{id: id, value: v})
	if r.capacity > 0 && r.order.Len() > r.capacity {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		evicted = oldest.Value.(*entry[V])
		delete(r.items, evicted.id)
	}
	return evicted
}

// remove deletes id and returns its value.
func (r *resident[V]) remove(id uint32) (V, bool) {
	elem, ok := r.items[id]
	if !ok {
		var zero V
		return zero, false
	}
	r.order.Remove(elem)
	delete(r.items, id)
	return elem.Value.(*entry[V]).value, true
}

func (r *resident[V]) len() int {
	return r.order.Len()
}

func (r *resident[V]) clear() {
	clear(r.items)
	r.order.Init()
}
