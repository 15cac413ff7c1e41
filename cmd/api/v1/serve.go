package v1

import (
	"log"
	"os"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/go-logr/stdr"
	"github.com/luscis/bootdash/cmd/api"
	"github.com/luscis/bootdash/pkg/client"
	"github.com/luscis/bootdash/pkg/config"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/web"
	"github.com/urfave/cli/v2"
)

type Serve struct {
	Cmd
}

// Config loads the dashboard configuration, the command line wins over
// the file.
func (u Serve) Config(c *cli.Context) (*config.Dashboard, error) {
	cfg, err := config.NewDashboard(c.String("conf"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("listen") {
		cfg.Http.Listen = c.String("listen")
	}
	if c.IsSet("url") || api.GetEnv("URL", "") != "" {
		cfg.Backend.Url = c.String("url")
	}
	if c.IsSet("token") || api.GetEnv("TOKEN", "") != "" {
		cfg.Backend.Token = c.String("token")
	}
	if api.Verbose {
		cfg.Log.Verbose = libol.DEBUG
	}
	cfg.Correct()
	return cfg, nil
}

func (u Serve) Run(c *cli.Context) error {
	cfg, err := u.Config(c)
	if err != nil {
		return err
	}
	libol.SetLogger(cfg.Log.File, cfg.Log.Verbose)

	cl := client.New(cfg.Backend.Url, cfg.Backend.Token, cfg.BackendTimeout())
	if cfg.Log.Verbose <= libol.DEBUG {
		stdr.SetVerbosity(1)
	}
	cl.WithLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags)))

	h, err := web.NewHttp(cfg, cl)
	if err != nil {
		return err
	}
	h.Start()
	if ok, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		libol.Warn("Serve.Run: notify %s", err)
	} else if ok {
		libol.Info("Serve.Run: notified systemd")
	}
	libol.Info("Serve.Run: polling %s every %s", cfg.Backend.Url, cfg.PollInterval())

	libol.Wait()
	h.Shutdown()
	return nil
}

func (u Serve) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "serve",
		Usage: "Run the web dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "conf", Aliases: []string{"c"}, Usage: "configuration file, json or yaml"},
			&cli.StringFlag{Name: "listen", Usage: "http listen address"},
		},
		Action: u.Run,
	})
}
