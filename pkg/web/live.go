package web

import (
	"io"

	"github.com/luscis/bootdash/pkg/api"
	"github.com/luscis/bootdash/pkg/console"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"golang.org/x/net/websocket"
)

// Live runs the console of a session for as long as its page stays
// connected. Patches go out as JSON frames, browser inputs come back the
// same way.
func (h *Http) Live(ws *websocket.Conn) {
	defer ws.Close()
	id := api.GetQueryOne(ws.Request(), "session")
	sess := h.sessions.Get(id)
	if sess == nil {
		libol.Warn("Http.Live: session %s not found", id)
		return
	}
	c := console.New(h.backend, sess.Page, h.options)
	if !sess.Attach(c, ws) {
		libol.Warn("Http.Live: session %s already attached", id)
		return
	}
	defer h.sessions.Del(id)

	out := make(chan schema.Patch, 256)
	done := make(chan struct{})
	c.OnPatch = func(patches []schema.Patch) {
		for _, p := range patches {
			select {
			case out <- p:
			case <-done:
				return
			}
		}
	}
	libol.Go(func() {
		for {
			select {
			case p := <-out:
				if err := websocket.JSON.Send(ws, p); err != nil {
					libol.Warn("Http.Live: %s %s", id, err)
					ws.Close()
					return
				}
			case <-done:
				return
			}
		}
	})

	libol.Info("Http.Live: %s from %s", id, ws.Request().RemoteAddr)
	c.Start()
	for {
		var in schema.Input
		if err := websocket.JSON.Receive(ws, &in); err != nil {
			if err != io.EOF {
				libol.Debug("Http.Live: %s %s", id, err)
			}
			break
		}
		if err := c.HandleInput(in); err != nil {
			libol.Warn("Http.Live: %s %s", id, err)
		}
	}
	close(done)
	libol.Info("Http.Live: %s closed", id)
}
