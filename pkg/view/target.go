package view

import (
	"github.com/luscis/bootdash/pkg/dom"
)

// TargetSelect is the boot script selection control.
type TargetSelect struct {
	Select *dom.Node
}

// Choose marks the option at index selected and returns its script and
// environment. An index out of range selects nothing.
func (v *TargetSelect) Choose(index int) (script, env string) {
	for i, opt := range dom.Children(v.Select) {
		if i == index {
			dom.SetAttr(opt, "selected", "")
			script = dom.AttrOr(opt, "data-script", "")
			env = dom.AttrOr(opt, "data-env", "")
		} else {
			dom.DelAttr(opt, "selected")
		}
	}
	return script, env
}
