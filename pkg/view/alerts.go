package view

import (
	"github.com/luscis/bootdash/pkg/dom"
)

type Alerts struct {
	Root *dom.Node
}

// Dismiss removes every .alert element and returns how many were removed.
func (v *Alerts) Dismiss() int {
	items := dom.FindAll(v.Root, ".alert")
	for _, n := range items {
		dom.Remove(n)
	}
	return len(items)
}
