// Package console keeps a dashboard page in sync with the boot server. It
// polls the device inventory and the event history on fixed timers and
// fetches script parameters when the boot target changes.
package console

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/luscis/bootdash/pkg/client"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/luscis/bootdash/pkg/view"
)

const (
	OpDevices = "devices"
	OpEvents  = "events"
	OpParams  = "params"
)

// Fetcher is the part of the boot server API the console reads.
type Fetcher interface {
	ListServers(ctx context.Context) client.Result[[]schema.Device]
	ListEvents(ctx context.Context) client.Result[schema.EventLog]
	ListParams(ctx context.Context, script, environment string) client.Result[[]string]
}

type Options struct {
	Interval    time.Duration
	BannerDelay time.Duration
	DateFormat  string
	Location    *time.Location
}

func (o *Options) Correct() {
	if o.Interval <= 0 {
		o.Interval = 5 * time.Second
	}
	if o.BannerDelay <= 0 {
		o.BannerDelay = 3 * time.Second
	}
	if o.DateFormat == "" {
		o.DateFormat = view.DateLayout
	}
	if o.Location == nil {
		o.Location = time.Local
	}
}

type Console struct {
	Options
	Fetcher Fetcher
	Page    *view.Page
	Loop    *Loop
	// OnError receives every failed fetch. It runs on the loop.
	OnError func(op string, err error)
	// OnPatch receives the re-rendered regions. It runs on the loop.
	OnPatch func(patches []schema.Patch)
	out     *libol.SubLogger
	devices *view.DeviceList
	targets *view.TargetSelect
	params  *view.ParamsForm
	events  *view.EventLog
	alerts  *view.Alerts
	ctx     context.Context
	cancel  context.CancelFunc
	lock    sync.Mutex
	started bool
	stopped bool
	tasks   []*Task
	banner  *time.Timer
}

func New(fetcher Fetcher, page *view.Page, opts Options) *Console {
	opts.Correct()
	c := &Console{
		Options: opts,
		Fetcher: fetcher,
		Page:    page,
		Loop:    NewLoop(64),
		out:     libol.NewSubLogger("console"),
		devices: page.Devices(),
		targets: page.Targets(),
		params:  page.Params(),
		events:  page.Events(opts.DateFormat, opts.Location),
		alerts:  page.Alerts(),
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.OnError = c.logError
	return c
}

func (c *Console) logError(op string, err error) {
	c.out.Warn("Console.%s: %s", op, err)
	refreshMetric.WithLabelValues(op, "error").Inc()
}

// Start renders both views right away, schedules their refresh and arms
// the banner dismissal. Starting twice has no effect.
func (c *Console) Start() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.Loop.Start()
	c.tasks = []*Task{
		NewTask(OpDevices, c.Interval, c.RefreshDevices),
		NewTask(OpEvents, c.Interval, c.RefreshEventHistory),
	}
	for _, t := range c.tasks {
		t.Start()
	}
	c.banner = time.AfterFunc(c.BannerDelay, c.DismissBanners)
	c.out.Info("Console.Start: every %s", c.Interval)
}

// Stop cancels the timers and in-flight requests. Nothing is rendered
// after Stop returns.
func (c *Console) Stop() {
	c.lock.Lock()
	if c.stopped {
		c.lock.Unlock()
		return
	}
	c.stopped = true
	tasks := c.tasks
	banner := c.banner
	c.lock.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
	if banner != nil {
		banner.Stop()
	}
	c.cancel()
	c.Loop.Stop()
	c.out.Info("Console.Stop")
}

func (c *Console) Stopped() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.stopped
}

func (c *Console) patch(regions []string) {
	if len(regions) == 0 || c.OnPatch == nil {
		return
	}
	patches := make([]schema.Patch, 0, len(regions))
	for _, id := range regions {
		patches = append(patches, schema.Patch{ID: id, Html: c.Page.Region(id)})
	}
	c.OnPatch(patches)
}

// fetch runs call off the loop and hands its result back to render on the
// loop. Failures leave the document as it is.
func fetch[T any](c *Console, op string, call func(ctx context.Context) client.Result[T], render func(T) []string) {
	libol.Go(func() {
		result := call(c.ctx)
		c.Loop.Post(func() {
			if c.Stopped() {
				return
			}
			if !result.Ok() {
				c.OnError(op, result.Err)
				return
			}
			refreshMetric.WithLabelValues(op, "ok").Inc()
			c.patch(render(result.Value))
		})
	})
}

func (c *Console) RefreshDevices() {
	fetch(c, OpDevices, c.Fetcher.ListServers, func(devices []schema.Device) []string {
		devicesMetric.Set(float64(len(devices)))
		return c.devices.Render(devices)
	})
}

func (c *Console) RefreshEventHistory() {
	fetch(c, OpEvents, c.Fetcher.ListEvents, c.events.Render)
}

// OnScriptSelectionChange selects the target at index. Choosing a target
// without a script clears the parameter form without asking the server.
func (c *Console) OnScriptSelectionChange(index int) {
	c.Loop.Post(func() {
		if c.Stopped() {
			return
		}
		script, env := c.targets.Choose(index)
		if script == "" {
			c.patch(c.params.Clear())
			return
		}
		fetch(c, OpParams, func(ctx context.Context) client.Result[[]string] {
			return c.Fetcher.ListParams(ctx, script, env)
		}, func(names []string) []string {
			return c.params.Render(env, names)
		})
	})
}

func (c *Console) OnDeviceSelectionChange(mac string) {
	c.Loop.Post(func() {
		if c.Stopped() {
			return
		}
		if !c.devices.Choose(mac) {
			c.out.Debug("Console.OnDeviceSelectionChange: %s not listed", mac)
		}
	})
}

func (c *Console) DismissBanners() {
	c.Loop.Post(func() {
		if c.Stopped() {
			return
		}
		if n := c.alerts.Dismiss(); n > 0 {
			c.patch([]string{view.RegionAlerts})
		}
	})
}

// HandleInput routes a browser event to its handler.
func (c *Console) HandleInput(in schema.Input) error {
	if in.Event != "change" {
		return libol.NewErr("unknown event %q", in.Event)
	}
	switch in.Name {
	case "target":
		index, err := strconv.Atoi(in.Value)
		if err != nil {
			return libol.NewErr("target index %q: %s", in.Value, err)
		}
		c.OnScriptSelectionChange(index)
	case "mac":
		c.OnDeviceSelectionChange(in.Value)
	default:
		return libol.NewErr("unknown input %q", in.Name)
	}
	return nil
}

// HTML snapshots the whole document.
func (c *Console) HTML() (string, bool) {
	c.lock.Lock()
	started := c.started
	c.lock.Unlock()
	if !started {
		return c.Page.HTML(), true
	}
	var doc string
	ok := c.Loop.Call(func() {
		doc = c.Page.HTML()
	})
	return doc, ok
}
