package console

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopOrder(t *testing.T) {
	l := NewLoop(8)
	l.Start()
	defer l.Stop()

	items := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		n := i
		assert.True(t, l.Post(func() {
			items = append(items, n)
		}))
	}
	var got []int
	assert.True(t, l.Call(func() {
		got = append(got, items...)
	}))
	assert.Equal(t, []int{0, 1, 2, 3}, got, "be the same.")
}

func TestLoopStop(t *testing.T) {
	l := NewLoop(1)
	l.Start()
	l.Stop()
	l.Stop()

	assert.True(t, l.Stopped())
	assert.False(t, l.Post(func() {}))
	assert.False(t, l.Call(func() {}))
}

func TestLoopCatch(t *testing.T) {
	l := NewLoop(2)
	l.Start()
	defer l.Stop()

	l.Post(func() {
		panic("boom")
	})
	assert.True(t, l.Call(func() {}), "loop survives a panic.")
}

func TestTaskTicks(t *testing.T) {
	var count int32
	task := NewTask("count", 10*time.Millisecond, func() {
		atomic.AddInt32(&count, 1)
	})
	task.Start()
	assert.Equal(t, int32(1), atomic.LoadInt32(&count), "first call runs on start.")

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&count) >= 3
	}, time.Second, 5*time.Millisecond)

	task.Stop()
	task.Stop()
	time.Sleep(30 * time.Millisecond)
	stopped := atomic.LoadInt32(&count)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&count), "no tick after stop.")
}
