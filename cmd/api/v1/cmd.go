package v1

import (
	"log"
	"os"

	"github.com/go-logr/stdr"
	"github.com/luscis/bootdash/cmd/api"
	"github.com/luscis/bootdash/pkg/client"
	"github.com/urfave/cli/v2"
)

type Cmd struct {
}

// NewClient builds a boot server client from the global flags. Verbose
// runs trace every request on stderr.
func (c Cmd) NewClient(ctx *cli.Context) *client.Client {
	cl := client.New(ctx.String("url"), ctx.String("token"), 0)
	if api.Verbose {
		stdr.SetVerbosity(1)
		cl.WithLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)))
	}
	return cl
}

func (c Cmd) Tmpl() string {
	return ""
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	return api.Out(data, format, tmpl)
}

func Before(c *cli.Context) error {
	return nil
}

func After(c *cli.Context) error {
	return nil
}

func Commands(app *api.App) {
	app.After = After
	app.Before = Before
	Server{}.Commands(app)
	Event{}.Commands(app)
	Param{}.Commands(app)
	Boot{}.Commands(app)
	Serve{}.Commands(app)
}
