package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Target struct {
	Dash Dashboarder
}

func (t Target) Router(router *mux.Router) {
	router.HandleFunc("/api/targets", t.List).Methods("GET")
}

func (t Target) List(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, t.Dash.Targets())
}
