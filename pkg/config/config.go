package config

import (
	"strings"
	"time"

	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
)

// Backend is the boot server the dashboard polls.
type Backend struct {
	Url     string `json:"url" yaml:"url"`
	Token   string `json:"token,omitempty" yaml:"token,omitempty"`
	Timeout int    `json:"timeout,omitempty" yaml:"timeout,omitempty"` // seconds, 0 waits forever.
}

func (b *Backend) Correct() {
	if b.Url == "" {
		b.Url = "http://127.0.0.1:8081"
	}
	b.Url = strings.TrimRight(b.Url, "/")
}

type Dashboard struct {
	File       string          `json:"-" yaml:"-"`
	Backend    Backend         `json:"backend" yaml:"backend"`
	Http       Http            `json:"http" yaml:"http"`
	Interval   int             `json:"interval,omitempty" yaml:"interval,omitempty"` // milliseconds
	Banner     int             `json:"banner,omitempty" yaml:"banner,omitempty"`     // milliseconds
	DateFormat string          `json:"dateFormat,omitempty" yaml:"dateFormat,omitempty"`
	Timezone   string          `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Targets    []schema.Target `json:"targets,omitempty" yaml:"targets,omitempty"`
	Log        Log             `json:"log" yaml:"log"`
}

// NewDashboard loads file when given and fills in the defaults.
func NewDashboard(file string) (*Dashboard, error) {
	d := &Dashboard{File: file}
	if err := d.Load(); err != nil {
		return nil, err
	}
	d.Correct()
	libol.Debug("NewDashboard %v", d)
	return d, nil
}

func (d *Dashboard) Load() error {
	if d.File == "" {
		return nil
	}
	return libol.UnmarshalLoad(d, d.File)
}

func (d *Dashboard) Correct() {
	d.Log.Correct()
	d.Http.Correct()
	d.Backend.Correct()
	if d.Interval <= 0 {
		d.Interval = 5000
	}
	if d.Banner <= 0 {
		d.Banner = 3000
	}
}

func (d *Dashboard) PollInterval() time.Duration {
	return time.Duration(d.Interval) * time.Millisecond
}

func (d *Dashboard) BannerDelay() time.Duration {
	return time.Duration(d.Banner) * time.Millisecond
}

func (d *Dashboard) BackendTimeout() time.Duration {
	return time.Duration(d.Backend.Timeout) * time.Second
}

// Location resolves Timezone, local time when empty.
func (d *Dashboard) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, libol.NewErr("timezone %s: %s", d.Timezone, err)
	}
	return loc, nil
}
