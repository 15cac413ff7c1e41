// Package web serves the dashboard: a page per browser session, the live
// patch stream of its console and the boot form proxy.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/luscis/bootdash/pkg/api"
	"github.com/luscis/bootdash/pkg/config"
	"github.com/luscis/bootdash/pkg/console"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/luscis/bootdash/pkg/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/websocket"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusNotFound)
}

func NotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusMethodNotAllowed)
}

// Backend is the boot server as seen by the web front end.
type Backend interface {
	console.Fetcher
	UpdateTarget(ctx context.Context, boot schema.Boot) error
}

type Http struct {
	backend  Backend
	listen   string
	targets  []schema.Target
	options  console.Options
	server   *http.Server
	router   *mux.Router
	sessions *Sessions
	reaper   *console.Task
}

func NewHttp(cfg *config.Dashboard, backend Backend) (*Http, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	h := &Http{
		backend: backend,
		listen:  cfg.Http.Listen,
		targets: cfg.Targets,
		options: console.Options{
			Interval:    cfg.PollInterval(),
			BannerDelay: cfg.BannerDelay(),
			DateFormat:  cfg.DateFormat,
			Location:    loc,
		},
		sessions: NewSessions(1024),
	}
	return h, nil
}

func (h *Http) Initialize() {
	r := h.Router()
	if h.server == nil {
		h.server = &http.Server{
			Addr:        h.listen,
			Handler:     r,
			ReadTimeout: 5 * time.Minute,
		}
	}
	h.LoadRouter()
}

func (h *Http) PProf(r *mux.Router) {
	if r != nil {
		r.HandleFunc("/debug/pprof/", pprof.Index)
		r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		r.HandleFunc("/debug/pprof/profile", pprof.Profile)
		r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

func (h *Http) Prome(r *mux.Router) {
	if r != nil {
		gatherers := prometheus.Gatherers{console.Metrics, metrics}
		r.Handle("/metrics", promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}))
	}
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		libol.Info("Http.Middleware %s %s", r.Method, r.URL.Path)
		latst := time.Now().Unix()
		next.ServeHTTP(w, r)
		dt := time.Now().Unix() - latst
		if dt > 2 && r.URL.Path != "/ws" {
			libol.Warn("Http.Middleware %s %s long time %d", r.Method, r.URL.Path, dt)
		}
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.NotFoundHandler = http.HandlerFunc(NotFound)
		h.router.MethodNotAllowedHandler = http.HandlerFunc(NotAllowed)
		h.router.Use(h.Middleware)
	}

	return h.router
}

func (h *Http) LoadRouter() {
	router := h.Router()

	router.HandleFunc("/", h.IndexHtml).Methods("GET")
	router.HandleFunc("/index.html", h.IndexHtml).Methods("GET")
	router.Handle("/ws", websocket.Handler(h.Live))
	router.HandleFunc("/update/target", h.UpdateTarget).Methods("POST")

	h.PProf(router)
	h.Prome(router)
	router.HandleFunc("/api/urls", h.GetApi).Methods("GET")
	api.Add(router, h)
}

func (h *Http) Start() {
	h.Initialize()
	h.reaper = console.NewTask("reaper", time.Minute, h.sessions.Reap)
	h.reaper.Start()

	libol.Info("Http.Start %s", h.listen)
	promise := &libol.Promise{
		First:  time.Second * 2,
		MaxInt: time.Minute,
		MinInt: time.Second * 10,
	}
	promise.Go(func() error {
		if err := h.server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			libol.Error("Http.Start on %s: %s", h.listen, err)
			return err
		}
		return nil
	})
}

func (h *Http) Shutdown() {
	libol.Info("Http.Shutdown %s", h.listen)
	if h.reaper != nil {
		h.reaper.Stop()
	}
	h.sessions.Clear()
	if h.server == nil {
		return
	}
	if err := h.server.Shutdown(context.Background()); err != nil {
		libol.Error("Http.Shutdown: %v", err)
	}
}

func (h *Http) ListSessions(call func(obj schema.Session)) {
	h.sessions.List(func(sess *Session) {
		call(sess.Schema())
	})
}

func (h *Http) DelSession(id string) bool {
	return h.sessions.Del(id)
}

func (h *Http) SessionHTML(id string) (string, bool) {
	sess := h.sessions.Get(id)
	if sess == nil {
		return "", false
	}
	return sess.HTML()
}

func (h *Http) Targets() []schema.Target {
	return h.targets
}

func (h *Http) IndexHtml(w http.ResponseWriter, r *http.Request) {
	alerts := make([]schema.Alert, 0, 2)
	if msg := api.GetQueryOne(r, "alert"); msg != "" {
		alerts = append(alerts, schema.Alert{Kind: "success", Message: msg})
	}
	if msg := api.GetQueryOne(r, "error"); msg != "" {
		alerts = append(alerts, schema.Alert{Kind: "danger", Message: msg})
	}
	sess, err := h.sessions.New(r.RemoteAddr, view.PageData{
		Targets: h.targets,
		Alerts:  alerts,
	})
	if err != nil {
		libol.Error("Http.IndexHtml %s", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, sess.Page.HTML())
}

// UpdateTarget forwards the boot form and sends the browser back to a new
// page telling how it went.
func (h *Http) UpdateTarget(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	boot := schema.Boot{
		Mac:         r.PostForm.Get("mac"),
		Target:      r.PostForm.Get("target"),
		Environment: r.PostForm.Get("environment"),
		Params:      make(map[string]string),
	}
	for k, v := range r.PostForm {
		if k == "mac" || k == "target" || k == "environment" || len(v) == 0 {
			continue
		}
		boot.Params[k] = v[0]
	}

	query := url.Values{}
	if boot.Mac == "" || boot.Target == "" {
		query.Set("error", "Choose a device and a boot target")
	} else if err := h.backend.UpdateTarget(r.Context(), boot); err != nil {
		libol.Warn("Http.UpdateTarget %s: %s", boot.Mac, err)
		query.Set("error", err.Error())
	} else {
		libol.Info("Http.UpdateTarget %s boots %s", boot.Mac, boot.Target)
		query.Set("alert", fmt.Sprintf("%s will boot %s", boot.Mac, boot.Target))
	}
	http.Redirect(w, r, "/?"+query.Encode(), http.StatusSeeOther)
}

func (h *Http) GetApi(w http.ResponseWriter, r *http.Request) {
	var urls []string
	_ = h.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil || !strings.HasPrefix(path, "/api") {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			urls = append(urls, fmt.Sprintf("%-6s %s", m, path))
		}
		return nil
	})
	api.ResponseYaml(w, urls)
}
