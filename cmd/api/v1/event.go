package v1

import (
	"github.com/luscis/bootdash/cmd/api"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Event struct {
	Cmd
}

type eventRow struct {
	Key     string `json:"key"`
	Date    string `json:"date"`
	Host    string `json:"host,omitempty"`
	Message string `json:"message"`
	Params  string `json:"params,omitempty"`
}

func (u Event) Tmpl() string {
	return `# total {{ len . }}
{{ps -18 "key"}} {{ps -20 "date"}} {{ps -16 "host"}} {{ps -32 "message"}} {{ps -16 "params"}}
{{- range . }}
{{ps -18 .Key}} {{ps -20 .Date}} {{ps -16 .Host}} {{ps -32 .Message}} {{ps -16 .Params}}
{{- end }}
`
}

// Rows flattens the history into one row per event, keeping the group
// order of the server.
func (u Event) Rows(events schema.EventLog) []eventRow {
	rows := make([]eventRow, 0, 32)
	for _, group := range events {
		for _, e := range group.Events {
			rows = append(rows, eventRow{
				Key:     group.Key,
				Date:    e.Date.Local().Format(libol.SimpleTime),
				Host:    e.Server.Host(),
				Message: e.Message,
				Params:  e.FlatParams(),
			})
		}
	}
	return rows
}

func (u Event) List(c *cli.Context) error {
	result := u.NewClient(c).ListEvents(c.Context)
	if !result.Ok() {
		return result.Err
	}
	return u.Out(u.Rows(result.Value), c.String("format"), u.Tmpl())
}

func (u Event) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "event",
		Aliases: []string{"ev"},
		Usage:   "Boot event history",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all events",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
		},
	})
}
