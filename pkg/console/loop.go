package console

import (
	"sync"

	"github.com/luscis/bootdash/pkg/libol"
)

// Loop runs callbacks one at a time on a single goroutine. Everything that
// touches a page document goes through its loop.
type Loop struct {
	calls chan func()
	done  chan struct{}
	once  sync.Once
}

func NewLoop(size int) *Loop {
	return &Loop{
		calls: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

func (l *Loop) Start() {
	libol.Go(l.Run)
}

func (l *Loop) Run() {
	for {
		select {
		case <-l.done:
			return
		case call := <-l.calls:
			l.exec(call)
		}
	}
}

func (l *Loop) exec(call func()) {
	defer libol.Catch("Loop.exec")
	call()
}

// Post queues call and returns false once the loop is stopped.
func (l *Loop) Post(call func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.calls <- call:
		return true
	case <-l.done:
		return false
	}
}

// Call runs call on the loop and waits for it. It must not be used from
// inside a loop callback.
func (l *Loop) Call(call func()) bool {
	wait := make(chan struct{})
	if !l.Post(func() {
		defer close(wait)
		call()
	}) {
		return false
	}
	select {
	case <-wait:
		return true
	case <-l.done:
		select {
		case <-wait:
			return true
		default:
			return false
		}
	}
}

func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}

func (l *Loop) Stopped() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
