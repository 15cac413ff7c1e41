package console

import (
	"sync"
	"time"

	"github.com/luscis/bootdash/pkg/libol"
)

// Task calls Call once on Start and then on every tick of Interval until
// stopped. A tick never waits for the work started by the previous one.
type Task struct {
	Name     string
	Interval time.Duration
	Call     func()
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
}

func NewTask(name string, interval time.Duration, call func()) *Task {
	return &Task{
		Name:     name,
		Interval: interval,
		Call:     call,
		done:     make(chan struct{}),
	}
}

func (t *Task) Start() {
	t.ticker = time.NewTicker(t.Interval)
	t.Call()
	libol.Go(t.run)
}

func (t *Task) run() {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			libol.Debug("Task.run: %s", t.Name)
			t.Call()
		}
	}
}

func (t *Task) Stop() {
	t.once.Do(func() {
		if t.ticker != nil {
			t.ticker.Stop()
		}
		close(t.done)
	})
}
