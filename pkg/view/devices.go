package view

import (
	"github.com/luscis/bootdash/pkg/dom"
	"github.com/luscis/bootdash/pkg/schema"
)

// DeviceList renders the devices waiting for a target into the select
// control, toggling between the list and the loading indicator.
type DeviceList struct {
	Systems *dom.Node
	Loading *dom.Node
	Select  *dom.Node
}

// Selected returns the label of the selected option. Like a browser, an
// untouched select shows its first option.
func (v *DeviceList) Selected() string {
	options := dom.Children(v.Select)
	for _, opt := range options {
		if dom.HasAttr(opt, "selected") {
			return dom.TextContent(opt)
		}
	}
	if len(options) > 0 {
		return dom.TextContent(options[0])
	}
	return ""
}

// Choose selects the option whose value is mac.
func (v *DeviceList) Choose(mac string) bool {
	found := false
	for _, opt := range dom.Children(v.Select) {
		if !found && dom.AttrOr(opt, "value", "") == mac {
			dom.SetAttr(opt, "selected", "")
			found = true
		} else {
			dom.DelAttr(opt, "selected")
		}
	}
	return found
}

func (v *DeviceList) Render(devices []schema.Device) []string {
	selection := v.Selected()
	dom.Empty(v.Select)

	if len(devices) == 0 {
		dom.Hide(v.Systems)
		dom.Show(v.Loading)
		return []string{RegionSystems, RegionLoading}
	}

	dom.Hide(v.Loading)
	dom.Show(v.Systems)
	for _, d := range devices {
		opt := dom.Element("option", "class", "text-primary-custom", "value", d.Mac)
		dom.Append(opt, dom.Text(d.Label()))
		dom.Append(v.Select, opt)
	}
	if selection != "" {
		for _, opt := range dom.Children(v.Select) {
			if dom.TextContent(opt) == selection {
				dom.SetAttr(opt, "selected", "")
				break
			}
		}
	}
	return []string{RegionSystems, RegionLoading}
}
