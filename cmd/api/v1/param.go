package v1

import (
	"github.com/luscis/bootdash/cmd/api"
	"github.com/urfave/cli/v2"
)

type Param struct {
	Cmd
}

func (u Param) Tmpl() string {
	return `# total {{ len . }}
{{- range . }}
{{ . }}
{{- end }}
`
}

func (u Param) List(c *cli.Context) error {
	result := u.NewClient(c).ListParams(c.Context, c.String("script"), c.String("environment"))
	if !result.Ok() {
		return result.Err
	}
	return u.Out(result.Value, c.String("format"), u.Tmpl())
}

func (u Param) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "param",
		Aliases: []string{"pa"},
		Usage:   "Script parameters",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display the parameters of a script",
				Aliases: []string{"ls"},
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "script", Required: true},
					&cli.StringFlag{Name: "environment", Aliases: []string{"env"}},
				},
				Action: u.List,
			},
		},
	})
}
