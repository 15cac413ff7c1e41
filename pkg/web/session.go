package web

import (
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/luscis/bootdash/pkg/console"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/luscis/bootdash/pkg/view"
)

// Session is one dashboard page handed out to a browser. It gets a
// console once the page opens its live connection.
type Session struct {
	ID      string
	Remote  string
	Created time.Time
	Page    *view.Page
	lock    sync.Mutex
	console *console.Console
	conn    io.Closer
}

// Attach binds c and the live connection feeding it to the session, a
// session takes one console only.
func (s *Session) Attach(c *console.Console, conn io.Closer) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.console != nil {
		return false
	}
	s.console = c
	s.conn = conn
	return true
}

func (s *Session) Attached() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.console != nil
}

// Detach stops the console and closes the live connection, so the page
// reloads into a new session.
func (s *Session) Detach() {
	s.lock.Lock()
	c, conn := s.console, s.conn
	s.lock.Unlock()
	if c != nil {
		c.Stop()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

// HTML snapshots the page, through its console once one is attached.
func (s *Session) HTML() (string, bool) {
	s.lock.Lock()
	c := s.console
	s.lock.Unlock()
	if c == nil {
		return s.Page.HTML(), true
	}
	return c.HTML()
}

func (s *Session) Schema() schema.Session {
	return schema.Session{
		ID:       s.ID,
		Remote:   s.Remote,
		Attached: s.Attached(),
		Created:  s.Created.Unix(),
		Uptime:   libol.Since(s.Created),
	}
}

type Sessions struct {
	Expire time.Duration
	items  *libol.SafeStrMap
}

func NewSessions(size int) *Sessions {
	return &Sessions{
		Expire: 3 * time.Minute,
		items:  libol.NewSafeStrMap(size),
	}
}

// New renders a fresh page and registers it under a new id.
func (s *Sessions) New(remote string, data view.PageData) (*Session, error) {
	data.Session = uuid.NewString()
	page, err := view.NewPage(data)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		ID:      data.Session,
		Remote:  remote,
		Created: time.Now(),
		Page:    page,
	}
	if err := s.items.Set(sess.ID, sess); err != nil {
		if !s.evict() {
			return nil, err
		}
		if err := s.items.Set(sess.ID, sess); err != nil {
			return nil, err
		}
	}
	sessionsMetric.Set(float64(s.items.Len()))
	libol.Debug("Sessions.New %s from %s", sess.ID, remote)
	return sess, nil
}

func (s *Sessions) Get(id string) *Session {
	if v, ok := s.items.GetEx(id); ok {
		return v.(*Session)
	}
	return nil
}

// Del drops the session and stops its console.
func (s *Sessions) Del(id string) bool {
	sess := s.Get(id)
	if sess == nil {
		return false
	}
	s.items.Del(id)
	sess.Detach()
	sessionsMetric.Set(float64(s.items.Len()))
	libol.Debug("Sessions.Del %s", id)
	return true
}

func (s *Sessions) List(call func(sess *Session)) {
	s.items.Iter(func(k string, v any) {
		call(v.(*Session))
	})
}

func (s *Sessions) Len() int {
	return s.items.Len()
}

// evict drops the oldest page that never opened its live connection.
func (s *Sessions) evict() bool {
	var oldest *Session
	s.List(func(sess *Session) {
		if sess.Attached() {
			return
		}
		if oldest == nil || sess.Created.Before(oldest.Created) {
			oldest = sess
		}
	})
	if oldest == nil {
		return false
	}
	libol.Info("Sessions.evict %s", oldest.ID)
	return s.Del(oldest.ID)
}

// Reap drops pages that never opened a live connection within Expire.
func (s *Sessions) Reap() {
	expired := make([]string, 0, 32)
	s.List(func(sess *Session) {
		if !sess.Attached() && time.Since(sess.Created) >= s.Expire {
			expired = append(expired, sess.ID)
		}
	})
	for _, id := range expired {
		s.Del(id)
	}
	if len(expired) > 0 {
		libol.Info("Sessions.Reap %d expired", len(expired))
	}
}

// Clear stops and drops every session.
func (s *Sessions) Clear() {
	ids := make([]string, 0, 32)
	s.List(func(sess *Session) {
		ids = append(ids, sess.ID)
	})
	for _, id := range ids {
		s.Del(id)
	}
}
