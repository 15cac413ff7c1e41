package v1

import (
	"github.com/luscis/bootdash/cmd/api"
	"github.com/urfave/cli/v2"
)

type Server struct {
	Cmd
}

func (u Server) Tmpl() string {
	return `# total {{ len . }}
{{ps -18 "mac"}} {{ps -16 "address"}} {{ps -24 "hostname"}}
{{- range . }}
{{ps -18 .Mac}} {{ps -16 .IP}} {{ps -24 .Hostname}}
{{- end }}
`
}

func (u Server) List(c *cli.Context) error {
	result := u.NewClient(c).ListServers(c.Context)
	if !result.Ok() {
		return result.Err
	}
	return u.Out(result.Value, c.String("format"), u.Tmpl())
}

func (u Server) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "server",
		Aliases: []string{"sr"},
		Usage:   "Devices waiting for a boot target",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all devices",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
		},
	})
}
