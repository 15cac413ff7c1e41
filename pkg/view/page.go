// Package view renders the dashboard regions into an HTML document. Each
// view owns the container nodes it is given and rewrites them completely on
// every Render.
package view

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/luscis/bootdash/pkg/dom"
	"github.com/luscis/bootdash/pkg/libol"
	"github.com/luscis/bootdash/pkg/schema"
)

// Region ids patched into the live page.
const (
	RegionSystems = "systems"
	RegionLoading = "loading"
	RegionParams  = "params"
	RegionEvents  = "events"
	RegionAlerts  = "alerts"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type PageData struct {
	Session string
	Targets []schema.Target
	Alerts  []schema.Alert
}

// Page is one dashboard document.
type Page struct {
	Doc *dom.Node
}

func NewPage(data PageData) (*Page, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return nil, libol.NewErr("page: %s", err)
	}
	return ParsePage(buf.String())
}

// ParsePage wraps an existing document. It fails when any container the
// views depend on is missing.
func ParsePage(src string) (*Page, error) {
	doc, err := dom.Parse(src)
	if err != nil {
		return nil, err
	}
	p := &Page{Doc: doc}
	for _, sel := range []string{
		"#systems", "#loading", "#mac", `select[name="target"]`, ".params-container", ".event-log",
	} {
		if dom.Find(doc, sel) == nil {
			return nil, libol.NewErr("page: missing %s", sel)
		}
	}
	return p, nil
}

func (p *Page) Find(selector string) *dom.Node {
	return dom.Find(p.Doc, selector)
}

func (p *Page) Devices() *DeviceList {
	return &DeviceList{
		Systems: p.Find("#systems"),
		Loading: p.Find("#loading"),
		Select:  p.Find("#mac"),
	}
}

func (p *Page) Targets() *TargetSelect {
	return &TargetSelect{Select: p.Find(`select[name="target"]`)}
}

func (p *Page) Params() *ParamsForm {
	return &ParamsForm{Container: p.Find(".params-container")}
}

func (p *Page) Events(layout string, loc *time.Location) *EventLog {
	return &EventLog{
		Panel:    p.Find(".event-log"),
		Layout:   layout,
		Location: loc,
	}
}

func (p *Page) Alerts() *Alerts {
	return &Alerts{Root: p.Doc}
}

// Region renders the element with the given id, or "" when absent.
func (p *Page) Region(id string) string {
	n := p.Find("#" + id)
	if n == nil {
		return ""
	}
	return dom.Render(n)
}

func (p *Page) HTML() string {
	return dom.Render(p.Doc)
}
