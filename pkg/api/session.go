package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/luscis/bootdash/pkg/schema"
)

type Session struct {
	Dash Dashboarder
}

func (s Session) Router(router *mux.Router) {
	router.HandleFunc("/api/sessions", s.List).Methods("GET")
	router.HandleFunc("/api/sessions/{id}", s.Remove).Methods("DELETE")
	router.HandleFunc("/api/sessions/{id}/page", s.Page).Methods("GET")
}

func (s Session) List(w http.ResponseWriter, r *http.Request) {
	items := make([]schema.Session, 0, 32)
	s.Dash.ListSessions(func(obj schema.Session) {
		items = append(items, obj)
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Created < items[j].Created
	})
	ResponseJson(w, items)
}

// Page returns the document of the session as its console last rendered it.
func (s Session) Page(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	doc, ok := s.Dash.SessionHTML(id)
	if !ok {
		http.Error(w, id+" not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func (s Session) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if !s.Dash.DelSession(id) {
		http.Error(w, id+" not found", http.StatusNotFound)
		return
	}
	ResponseMsg(w, 0, "")
}
