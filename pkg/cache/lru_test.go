package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResident_Unbounded(t *testing.T) {
	r := newResident[string](0)
	for i := range uint32(100) {
		assert.Nil(t, r.put(i, "v"))
	}
	assert.Equal(t, 100, r.len())

	r.clear()
	assert.Equal(t, 0, r.len())
	_, ok := r.get(1)
	assert.False(t, ok)
}

func TestResident_EvictsLeastRecentlyUsed(t *testing.T) {
	r := newResident[string](2)

	assert.Nil(t, r.put(1, "a"))
	assert.Nil(t, r.put(2, "b"))

	// Touch 1 so 2 becomes the oldest.
	v, ok := r.get(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	evicted := r.put(3, "c")
	require.NotNil(t, evicted)
	assert.Equal(t, uint32(2), evicted.id)
	assert.Equal(t, "b", evicted.value)

	_, ok = r.get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, r.len())
}

func TestResident_UpdateDoesNotEvict(t *testing.T) {
	r := newResident[int](2)
	r.put(1, 10)
	r.put(2, 20)

	assert.Nil(t, r.put(1, 11))

	v, ok := r.get(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)
	assert.Equal(t, 2, r.len())
}

func TestResident_Remove(t *testing.T) {
	r := newResident[int](0)
	r.put(7, 70)

	v, ok := r.remove(7)
	assert.True(t, ok)
	assert.Equal(t, 70, v)

	_, ok = r.remove(7)
	assert.False(t, ok)
	assert.Equal(t, 0, r.len())
}

func BenchmarkResident_Put(b *testing.B) {
	r := newResident[int](1000)
	for i := 0; b.Loop(); i++ {
		r.put(uint32(i%2000), i)
	}
}
