package libol

import (
	"sync"
)

type gos struct {
	lock  sync.Mutex
	total uint64
}

var Gos = gos{}

func (t *gos) Add(name string) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.total++
	Debug("gos.Add %d %s", t.total, name)
}

func (t *gos) Del(name string) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.total--
	Debug("gos.Del %d %s", t.total, name)
}

func (t *gos) Total() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.total
}

// Go runs call in a new goroutine, counting it and recovering panics.
func Go(call func()) {
	name := FunName(call)
	Gos.Add(name)
	go func() {
		defer Gos.Del(name)
		defer Catch("Go.func")
		call()
	}()
}
