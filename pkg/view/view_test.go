package view

import (
	"testing"
	"time"

	"github.com/luscis/bootdash/pkg/dom"
	"github.com/luscis/bootdash/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func newPage(t *testing.T) *Page {
	p, err := NewPage(PageData{
		Session: "s1",
		Targets: []schema.Target{
			{Name: "Ubuntu", Script: "ubuntu.ipxe", Environment: "prod"},
			{Name: "Rescue", Script: "rescue.ipxe"},
		},
		Alerts: []schema.Alert{{Kind: "success", Message: "Target updated"}},
	})
	assert.Nil(t, err)
	return p
}

// marked returns the labels of the options carrying the selected attribute.
func marked(v *DeviceList) []string {
	items := make([]string, 0, 1)
	for _, opt := range dom.Children(v.Select) {
		if dom.HasAttr(opt, "selected") {
			items = append(items, dom.TextContent(opt))
		}
	}
	return items
}

func labels(v *DeviceList) []string {
	items := make([]string, 0, 4)
	for _, opt := range dom.Children(v.Select) {
		items = append(items, dom.TextContent(opt))
	}
	return items
}

func TestPageContainers(t *testing.T) {
	p := newPage(t)
	assert.Equal(t, "s1", dom.AttrOr(p.Find("body"), "data-session", ""))
	assert.False(t, dom.Visible(p.Find("#systems")))
	assert.Len(t, dom.FindAll(p.Doc, ".alert"), 1)
	assert.Contains(t, p.Region(RegionAlerts), "Target updated")
	assert.Equal(t, "", p.Region("missing"))

	_, err := ParsePage("<html><body><div id=\"mac\"></div></body></html>")
	assert.NotNil(t, err)
}

func TestDeviceListEmpty(t *testing.T) {
	p := newPage(t)
	v := p.Devices()

	regions := v.Render(nil)
	assert.Equal(t, []string{RegionSystems, RegionLoading}, regions)
	assert.False(t, dom.Visible(v.Systems), "list hidden.")
	assert.True(t, dom.Visible(v.Loading), "loading shown.")
	assert.Empty(t, labels(v))
}

func TestDeviceListLabels(t *testing.T) {
	p := newPage(t)
	v := p.Devices()

	v.Render([]schema.Device{
		{Mac: "aa:aa", IP: "10.0.0.1"},
		{Mac: "bb:bb", IP: "10.0.0.2", Hostname: "node2"},
	})
	assert.True(t, dom.Visible(v.Systems), "list shown.")
	assert.False(t, dom.Visible(v.Loading), "loading hidden.")
	assert.Equal(t, []string{"aa:aa - 10.0.0.1", "bb:bb - 10.0.0.2 - node2"}, labels(v))
	assert.Equal(t, "bb:bb", dom.AttrOr(dom.Children(v.Select)[1], "value", ""))

	// back to nothing clears the control too.
	v.Render([]schema.Device{})
	assert.Empty(t, labels(v))
	assert.False(t, dom.Visible(v.Systems))
}

func TestDeviceListKeepsSelection(t *testing.T) {
	p := newPage(t)
	v := p.Devices()

	v.Render([]schema.Device{
		{Mac: "aa:aa", IP: "10.0.0.1"},
		{Mac: "bb:bb", IP: "10.0.0.2"},
	})
	assert.True(t, v.Choose("bb:bb"))
	assert.Equal(t, "bb:bb - 10.0.0.2", v.Selected())

	v.Render([]schema.Device{
		{Mac: "cc:cc", IP: "10.0.0.3"},
		{Mac: "bb:bb", IP: "10.0.0.2"},
		{Mac: "aa:aa", IP: "10.0.0.1"},
	})
	assert.Equal(t, "bb:bb - 10.0.0.2", v.Selected(), "selection survives the rebuild.")

	v.Render([]schema.Device{{Mac: "cc:cc", IP: "10.0.0.3"}})
	assert.Empty(t, marked(v), "nothing marked when gone.")
	assert.Equal(t, "cc:cc - 10.0.0.3", v.Selected(), "first option shows by default.")
	assert.Equal(t, []string{"cc:cc - 10.0.0.3"}, labels(v))

	assert.False(t, v.Choose("zz:zz"))
}

func TestDeviceListSelectionByLabel(t *testing.T) {
	p := newPage(t)
	v := p.Devices()

	v.Render([]schema.Device{{Mac: "aa:aa", IP: "10.0.0.1"}})
	v.Choose("aa:aa")
	// same mac but a new address is a different label.
	v.Render([]schema.Device{{Mac: "aa:aa", IP: "10.0.0.9"}, {Mac: "bb:bb", IP: "10.0.0.2"}})
	assert.Empty(t, marked(v))
	assert.Equal(t, "aa:aa - 10.0.0.9", v.Selected())
}

func TestDeviceListKeepsDefaultSelection(t *testing.T) {
	p := newPage(t)
	v := p.Devices()
	assert.Equal(t, "", v.Selected(), "empty select has no selection.")

	v.Render([]schema.Device{
		{Mac: "aa:aa", IP: "10.0.0.1"},
		{Mac: "bb:bb", IP: "10.0.0.2"},
	})
	assert.Empty(t, marked(v))
	assert.Equal(t, "aa:aa - 10.0.0.1", v.Selected(), "untouched select shows the first option.")

	// a new device shows up on top.
	v.Render([]schema.Device{
		{Mac: "cc:cc", IP: "10.0.0.3"},
		{Mac: "aa:aa", IP: "10.0.0.1"},
	})
	assert.Equal(t, []string{"aa:aa - 10.0.0.1"}, marked(v), "the shown device stays shown.")
	assert.Equal(t, "aa:aa - 10.0.0.1", v.Selected())
	assert.Contains(t, p.Region(RegionSystems), `<option class="text-primary-custom" value="aa:aa" selected="">`)
}

func TestEventLogEmptyIsNoop(t *testing.T) {
	p := newPage(t)
	v := p.Events("", time.UTC)

	v.Render(schema.EventLog{{Key: "AA:BB", Events: []schema.Event{{Message: "boot"}}}})
	before := dom.Render(v.Panel)

	assert.Nil(t, v.Render(nil))
	assert.Equal(t, before, dom.Render(v.Panel), "nil history is a no-op.")
	assert.Nil(t, v.Render(schema.EventLog{}))
	assert.Equal(t, before, dom.Render(v.Panel), "empty history is a no-op.")
}

func TestEventLogCards(t *testing.T) {
	p := newPage(t)
	v := p.Events("", time.UTC)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	regions := v.Render(schema.EventLog{
		{Key: "AA:BB", Events: []schema.Event{
			{Date: date, Message: "boot", Server: schema.Device{Hostname: "", IP: "10.0.0.5"}},
		}},
		{Key: "CC:DD", Events: []schema.Event{
			{Date: date, Message: "first", Server: schema.Device{Hostname: "n1", IP: "10.0.0.6"},
				Params: map[string]interface{}{"version": "7"}},
			{Date: date.Add(time.Hour), Message: "second", Server: schema.Device{Hostname: "n1"}},
		}},
	})
	assert.Equal(t, []string{RegionEvents}, regions)

	cards := dom.FindAll(v.Panel, ".card")
	assert.Len(t, cards, 2)
	assert.Equal(t, "AA:BB (10.0.0.5)", dom.TextContent(dom.Find(cards[0], ".card-header")))
	assert.Equal(t, "CC:DD (n1)", dom.TextContent(dom.Find(cards[1], ".card-header")))

	items := dom.FindAll(cards[0], "li.list-group-item")
	assert.Len(t, items, 1)
	assert.Equal(t, "1/1/2024, 12:00:00 AM: boot", dom.TextContent(items[0]))
	assert.Equal(t, "1/1/2024, 12:00:00 AM", dom.TextContent(dom.Find(items[0], "b")))

	items = dom.FindAll(cards[1], "ul.list-group > li")
	assert.Len(t, items, 2)
	assert.Equal(t, "1/1/2024, 12:00:00 AM: first", dom.TextContent(items[0]), "params are not shown.")
	assert.Equal(t, "1/1/2024, 1:00:00 AM: second", dom.TextContent(items[1]))

	// a new history replaces the old one.
	v.Render(schema.EventLog{{Key: "EE:FF", Events: []schema.Event{{Date: date, Message: "x"}}}})
	assert.Len(t, dom.FindAll(v.Panel, ".card"), 1)
	assert.Equal(t, "EE:FF", dom.TextContent(dom.Find(v.Panel, ".card-header")))
}

func TestEventLogLayout(t *testing.T) {
	p := newPage(t)
	loc := time.FixedZone("X", 2*3600)
	v := p.Events("2006-01-02 15:04", loc)
	v.Render(schema.EventLog{{Key: "k", Events: []schema.Event{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Message: "m"},
	}}})
	assert.Equal(t, "2024-01-01 02:00: m", dom.TextContent(dom.Find(v.Panel, "li")))
}

func TestTargetAndParams(t *testing.T) {
	p := newPage(t)
	targets := p.Targets()
	params := p.Params()

	script, env := targets.Choose(1)
	assert.Equal(t, "ubuntu.ipxe", script)
	assert.Equal(t, "prod", env)

	script, env = targets.Choose(2)
	assert.Equal(t, "rescue.ipxe", script)
	assert.Equal(t, "", env)

	script, _ = targets.Choose(0)
	assert.Equal(t, "", script, "placeholder has no script.")
	script, _ = targets.Choose(9)
	assert.Equal(t, "", script)

	assert.Equal(t, []string{RegionParams}, params.Render("prod", []string{"version", "hostname"}))
	inputs := dom.FindAll(params.Container, "input")
	assert.Len(t, inputs, 3)
	for i, name := range []string{"version", "hostname"} {
		assert.Equal(t, "text", dom.AttrOr(inputs[i], "type", ""))
		assert.Equal(t, name, dom.AttrOr(inputs[i], "id", ""))
		assert.Equal(t, name, dom.AttrOr(inputs[i], "name", ""))
		assert.Equal(t, name, dom.AttrOr(inputs[i], "placeholder", ""))
		assert.True(t, dom.HasAttr(inputs[i], "required"))
		assert.Equal(t, "col", dom.AttrOr(inputs[i].Parent, "class", ""))
	}
	hidden := inputs[2]
	assert.Equal(t, "hidden", dom.AttrOr(hidden, "type", ""))
	assert.Equal(t, "environment", dom.AttrOr(hidden, "name", ""))
	assert.Equal(t, "prod", dom.AttrOr(hidden, "value", ""))

	params.Clear()
	assert.Empty(t, dom.Children(params.Container))
}

func TestAlertsDismiss(t *testing.T) {
	p := newPage(t)
	a := p.Alerts()
	assert.Equal(t, 1, a.Dismiss())
	assert.Equal(t, 0, a.Dismiss())
	assert.NotContains(t, p.HTML(), "Target updated")
}
