package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
)

// Result carries the outcome of one fetch.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) Ok() bool {
	return r.Err == nil
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Client talks to the boot server's AJAX endpoints.
type Client struct {
	Url     string
	Auth    libol.Auth
	Timeout time.Duration
	Logger  logr.Logger
	http    *http.Client
}

// New returns a client for the server at prefix. token is "user[:pass]",
// a bare user goes out with an empty password and an empty token disables
// authentication.
func New(prefix, token string, timeout time.Duration) *Client {
	cl := &Client{
		Url:     strings.TrimRight(prefix, "/"),
		Timeout: timeout,
		Logger:  logr.Discard(),
	}
	if token != "" {
		user, pass, _ := strings.Cut(token, ":")
		cl.Auth = libol.Auth{
			Type:     "basic",
			Username: user,
			Password: pass,
		}
	}
	cl.http = &http.Client{
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
		Timeout: timeout,
		// the boot form answers with a redirect to its own UI.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return cl
}

func (cl *Client) WithLogger(logger logr.Logger) *Client {
	cl.Logger = logger.WithName("client")
	return cl
}

func (cl *Client) NewRequest(method, path string) *libol.HttpClient {
	return &libol.HttpClient{
		Method: method,
		Url:    cl.Url + path,
		Auth:   cl.Auth,
		Client: cl.http,
	}
}

func (cl *Client) do(ctx context.Context, req *libol.HttpClient) ([]byte, int, error) {
	start := time.Now()
	r, err := req.Do(ctx)
	if err != nil {
		cl.Logger.V(1).Info("request failed", "method", req.Method, "url", req.Url, "error", err.Error())
		return nil, 0, err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, r.StatusCode, err
	}
	cl.Logger.V(1).Info("request", "method", req.Method, "url", req.Url,
		"status", r.StatusCode, "bytes", len(body), "elapsed", time.Since(start).String())
	return body, r.StatusCode, nil
}

func (cl *Client) GetJSON(ctx context.Context, path string, v interface{}) error {
	req := cl.NewRequest("GET", path)
	body, code, err := cl.do(ctx, req)
	if err != nil {
		return err
	}
	if code != http.StatusOK {
		return libol.NewErr("GET %s: %d %s", path, code, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return libol.NewErr("GET %s: %s", path, err)
	}
	return nil
}

// ListServers fetches the devices waiting for a boot target.
func (cl *Client) ListServers(ctx context.Context) Result[[]schema.Device] {
	var items []schema.Device
	if err := cl.GetJSON(ctx, "/ajax/servers", &items); err != nil {
		return Fail[[]schema.Device](err)
	}
	return Result[[]schema.Device]{Value: items}
}

// ListEvents fetches the event history grouped by device.
func (cl *Client) ListEvents(ctx context.Context) Result[schema.EventLog] {
	var items schema.EventLog
	if err := cl.GetJSON(ctx, "/ajax/events", &items); err != nil {
		return Fail[schema.EventLog](err)
	}
	return Result[schema.EventLog]{Value: items}
}

// ListParams fetches the parameter names of script in environment.
func (cl *Client) ListParams(ctx context.Context, script, environment string) Result[[]string] {
	query := url.Values{}
	query.Set("script", script)
	query.Set("environment", environment)
	var items []string
	if err := cl.GetJSON(ctx, "/ajax/script/params?"+query.Encode(), &items); err != nil {
		return Fail[[]string](err)
	}
	return Result[[]string]{Value: items}
}

// UpdateTarget submits a manual boot selection. The server answers a
// successful update with a redirect.
func (cl *Client) UpdateTarget(ctx context.Context, boot schema.Boot) error {
	form := url.Values{}
	for k, v := range boot.Params {
		form.Set(k, v)
	}
	form.Set("mac", boot.Mac)
	form.Set("target", boot.Target)
	if boot.Environment != "" {
		form.Set("environment", boot.Environment)
	}
	req := cl.NewRequest("POST", "/update/target")
	req.Payload = strings.NewReader(form.Encode())
	req.Header = http.Header{"Content-Type": {"application/x-www-form-urlencoded"}}
	body, code, err := cl.do(ctx, req)
	if err != nil {
		return err
	}
	if code >= 400 {
		return libol.NewErr("%s", strings.TrimSpace(string(body)))
	}
	return nil
}
