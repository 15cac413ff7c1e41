package libol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeStrMap(t *testing.T) {
	m := NewSafeStrMap(4)
	_ = m.Set("hi", 1)
	assert.Equal(t, 1, m.Get("hi"), "be the same.")

	_ = m.Set("hi", 3)
	assert.Equal(t, 1, m.Get("hi"), "set does not overwrite.")
	_ = m.Mod("hi", 3)
	assert.Equal(t, 3, m.Get("hi"), "mod overwrites.")

	for i := 0; i < 3; i++ {
		assert.Nil(t, m.Set(fmt.Sprintf("%d", i), i))
	}
	assert.Equal(t, 4, m.Len(), "be the same.")
	assert.NotNil(t, m.Set("full", 9), "already full.")

	m.Del("hi")
	_, ok := m.GetEx("hi")
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len(), "be the same.")
}

func TestZeroSafeStrMapIter(t *testing.T) {
	ms := NewSafeStrMap(0)
	cm := 0
	for i := 1024; i < 1024+1024; i++ {
		cm += i
		_ = ms.Set(fmt.Sprintf("%d", i), i)
	}
	cmt := 0
	count := ms.Iter(func(k string, v interface{}) {
		cmt += v.(int)
	})
	assert.Equal(t, cmt, cm, "be the same")
	assert.Equal(t, 1024, count, "be the same")
}

func BenchmarkSafeStrMapGet(b *testing.B) {
	m := NewSafeStrMap(2)
	_ = m.Set("hi", 2)

	for i := 0; i < b.N; i++ {
		v := m.Get("hi").(int)
		assert.Equal(b, v, 2, "")
	}
}
