package view

import (
	"github.com/luscis/bootdash/pkg/dom"
)

type ParamsForm struct {
	Container *dom.Node
}

func (v *ParamsForm) Clear() []string {
	dom.Empty(v.Container)
	return []string{RegionParams}
}

// Render replaces the inputs with one required text field per parameter,
// followed by the hidden environment field.
func (v *ParamsForm) Render(env string, params []string) []string {
	dom.Empty(v.Container)
	for _, name := range params {
		input := dom.Element("input",
			"type", "text",
			"class", "form-control",
			"id", name,
			"name", name,
			"placeholder", name,
			"required", "")
		dom.Append(v.Container, dom.Append(dom.Element("div", "class", "col"), input))
	}
	dom.Append(v.Container, dom.Element("input", "type", "hidden", "name", "environment", "value", env))
	return []string{RegionParams}
}
