package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/luscis/bootdash/cmd/api"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type backend struct {
	lock sync.Mutex
	form url.Values
	user string
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, _, _ := r.BasicAuth()
	b.lock.Lock()
	b.user = user
	b.lock.Unlock()
	switch r.URL.Path {
	case "/ajax/servers":
		_, _ = io.WriteString(w, `[{"Mac":"aa:aa","IP":"10.0.0.1","Hostname":"node1"},{"Mac":"bb:bb","IP":"10.0.0.2","Hostname":""}]`)
	case "/ajax/events":
		_, _ = io.WriteString(w, `{"ZZ":[{"date":"2024-01-01T00:00:00Z","message":"boot","params":{"b":"2","a":"1"},"server":{"IP":"10.0.0.5"}}],"AA":[{"date":"2024-01-01T00:00:00Z","message":"done"}]}`)
	case "/ajax/script/params":
		if r.URL.Query().Get("script") != "ubuntu.ipxe" {
			http.Error(w, "no such script", http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `["version","hostname"]`)
	case "/update/target":
		_ = r.ParseForm()
		b.lock.Lock()
		b.form = r.PostForm
		b.lock.Unlock()
		http.Redirect(w, r, "/", http.StatusFound)
	default:
		http.NotFound(w, r)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	var buf bytes.Buffer
	saved := api.Output
	api.Output = &buf
	defer func() {
		api.Output = saved
	}()
	app := &api.App{}
	app.New()
	Commands(app)
	err := app.Run(append([]string{"bootdash"}, args...))
	return buf.String(), err
}

func TestServerList(t *testing.T) {
	b := &backend{}
	srv := httptest.NewServer(b)
	defer srv.Close()

	out, err := run(t, "--url", srv.URL, "--token", "admin:pass", "server", "ls")
	assert.Nil(t, err)
	assert.Contains(t, out, "# total 2")
	assert.Contains(t, out, "aa:aa              10.0.0.1         node1")
	assert.Equal(t, "admin", b.user, "be the same.")

	out, err = run(t, "--url", srv.URL, "--format", "json", "server", "list")
	assert.Nil(t, err)
	assert.Contains(t, out, `"Mac": "bb:bb"`)
}

func TestEventList(t *testing.T) {
	srv := httptest.NewServer(&backend{})
	defer srv.Close()

	out, err := run(t, "--url", srv.URL, "--format", "json", "event", "ls")
	assert.Nil(t, err)
	var rows []eventRow
	assert.Nil(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "ZZ", rows[0].Key, "server order is kept.")
	assert.Equal(t, "a:1 b:2 ", rows[0].Params)
	assert.Equal(t, "10.0.0.5", rows[0].Host)
	assert.Equal(t, "AA", rows[1].Key)
}

func TestParamList(t *testing.T) {
	srv := httptest.NewServer(&backend{})
	defer srv.Close()

	out, err := run(t, "--url", srv.URL, "param", "ls", "--script", "ubuntu.ipxe", "--env", "prod")
	assert.Nil(t, err)
	assert.Equal(t, "# total 2\nversion\nhostname\n", out, "be the same.")

	_, err = run(t, "--url", srv.URL, "param", "ls", "--script", "other.ipxe")
	assert.NotNil(t, err)
}

func TestBoot(t *testing.T) {
	b := &backend{}
	srv := httptest.NewServer(b)
	defer srv.Close()

	out, err := run(t, "--url", srv.URL, "boot", "--mac", "aa:aa", "--target", "ubuntu.ipxe",
		"--env", "prod", "-p", "version=7", "-p", "hostname=node1")
	assert.Nil(t, err)
	assert.Equal(t, "aa:aa will boot ubuntu.ipxe\n", out, "be the same.")

	b.lock.Lock()
	defer b.lock.Unlock()
	assert.Equal(t, "ubuntu.ipxe", b.form.Get("target"))
	assert.Equal(t, "prod", b.form.Get("environment"))
	assert.Equal(t, "7", b.form.Get("version"))
	assert.Equal(t, "node1", b.form.Get("hostname"))
}

func TestEventRows(t *testing.T) {
	rows := Event{}.Rows(schema.EventLog{
		{Key: "k", Events: []schema.Event{{Message: "a"}, {Message: "b"}}},
	})
	assert.Len(t, rows, 2)
	assert.Equal(t, "b", rows[1].Message)
}
