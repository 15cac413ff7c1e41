package config

import (
	"fmt"
	"strings"

	"github.com/luscis/bootdash/pkg/libol"
)

type Log struct {
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Verbose int    `json:"level,omitempty" yaml:"level,omitempty"`
}

func (l *Log) Correct() {
	if l.Verbose == 0 {
		l.Verbose = libol.INFO
	}
}

type Http struct {
	Listen string `json:"listen,omitempty" yaml:"listen,omitempty"`
}

func (h *Http) Correct() {
	SetListen(&h.Listen, 10081)
}

// SetListen fills in the address and port missing from listen.
func SetListen(listen *string, port int) {
	if *listen == "" {
		*listen = fmt.Sprintf("0.0.0.0:%d", port)
		return
	}
	values := strings.SplitN(*listen, ":", 2)
	if len(values) == 1 {
		*listen = fmt.Sprintf("%s:%d", values[0], port)
	} else if values[0] == "" {
		*listen = "0.0.0.0" + *listen
	}
}
