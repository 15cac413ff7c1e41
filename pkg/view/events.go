package view

import (
	"time"

	"github.com/luscis/bootdash/pkg/dom"
	"github.com/luscis/bootdash/pkg/schema"
)

// DateLayout formats event dates the way a en-US browser shows them.
const DateLayout = "1/2/2006, 3:04:05 PM"

type EventLog struct {
	Panel    *dom.Node
	Layout   string
	Location *time.Location
}

func (v *EventLog) format(t time.Time) string {
	layout := v.Layout
	if layout == "" {
		layout = DateLayout
	}
	if v.Location != nil {
		t = t.In(v.Location)
	}
	return t.Format(layout)
}

// Render draws one card per device. An empty history leaves the panel as
// it is and reports no change.
func (v *EventLog) Render(events schema.EventLog) []string {
	if events.Len() == 0 {
		return nil
	}
	dom.Empty(v.Panel)
	for _, group := range events {
		card := dom.Element("div", "class", "card", "id", group.Key)
		header := dom.Element("h5", "class", "card-header text-primary-custom")
		dom.Append(header, dom.Text(group.Title()))
		list := dom.Element("ul", "class", "list-group list-group-flush")
		for _, e := range group.Events {
			// params stay out of the line, the CLI listing shows them.
			item := dom.Element("li", "class", "list-group-item")
			dom.Append(item,
				dom.Append(dom.Element("b"), dom.Text(v.format(e.Date))),
				dom.Text(": "+e.Message))
			dom.Append(list, item)
		}
		body := dom.Append(dom.Element("div", "class", "card-body"), list)
		dom.Append(v.Panel, dom.Append(card, header, body))
	}
	return []string{RegionEvents}
}
