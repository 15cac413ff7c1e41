package v1

import (
	"fmt"

	"github.com/luscis/bootdash/cmd/api"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Boot struct {
	Cmd
}

func (u Boot) Update(c *cli.Context) error {
	boot := schema.Boot{
		Mac:         c.String("mac"),
		Target:      c.String("target"),
		Environment: c.String("environment"),
		Params:      make(map[string]string),
	}
	for _, value := range c.StringSlice("param") {
		k, v := api.SplitPair(value)
		if k == "" {
			return libol.NewErr("invalid param %q", value)
		}
		boot.Params[k] = v
	}
	if err := u.NewClient(c).UpdateTarget(c.Context, boot); err != nil {
		return err
	}
	fmt.Fprintf(api.Output, "%s will boot %s\n", boot.Mac, boot.Target)
	return nil
}

func (u Boot) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "boot",
		Usage: "Set the boot target of a device",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mac", Required: true},
			&cli.StringFlag{Name: "target", Required: true, Usage: "script to boot"},
			&cli.StringFlag{Name: "environment", Aliases: []string{"env"}},
			&cli.StringSliceFlag{Name: "param", Aliases: []string{"p"}, Usage: "script parameter as key=value"},
		},
		Action: u.Update,
	})
}
