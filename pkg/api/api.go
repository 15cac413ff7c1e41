package api

import (
	"github.com/gorilla/mux"
	"github.com/luscis/bootdash/pkg/schema"
)

// Dashboarder is what the dashboard API reads from the web front end.
type Dashboarder interface {
	ListSessions(call func(obj schema.Session))
	DelSession(id string) bool
	SessionHTML(id string) (string, bool)
	Targets() []schema.Target
}

func Add(router *mux.Router, d Dashboarder) {
	Session{Dash: d}.Router(router)
	Target{Dash: d}.Router(router)
	Log{}.Router(router)
	Version{}.Router(router)
}
