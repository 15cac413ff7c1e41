package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type Event struct {
	Type     int                    `json:"eventType"`
	Date     time.Time              `json:"date"`
	Server   Device                 `json:"server"`
	BootType string                 `json:"bootType,omitempty"`
	Script   string                 `json:"script,omitempty"`
	Message  string                 `json:"message"`
	Params   map[string]interface{} `json:"params,omitempty"`
}

// FlatParams joins the parameters as "key:value " pairs in key order.
func (e Event) FlatParams() string {
	keys := make([]string, 0, len(e.Params))
	for k := range e.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var buf bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s:%v ", k, e.Params[k])
	}
	return buf.String()
}

type EventGroup struct {
	Key    string  `json:"key"`
	Events []Event `json:"events"`
}

// Title is the group key, followed by the host of its first event when
// that event carries any host information.
func (g EventGroup) Title() string {
	if len(g.Events) == 0 {
		return g.Key
	}
	if host := g.Events[0].Server.Host(); host != "" {
		return g.Key + " (" + host + ")"
	}
	return g.Key
}

// EventLog is the event history grouped by device. It decodes from and
// encodes to a JSON object while keeping the key order of the document.
type EventLog []EventGroup

func (l EventLog) Len() int {
	return len(l)
}

func (l *EventLog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*l = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("EventLog: expected object, got %v", tok)
	}
	groups := make(EventLog, 0, 8)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("EventLog: expected key, got %v", tok)
		}
		var events []Event
		if err := dec.Decode(&events); err != nil {
			return fmt.Errorf("EventLog %s: %w", key, err)
		}
		groups = append(groups, EventGroup{Key: key, Events: events})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = groups
	return nil
}

func (l EventLog) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Key)
		if err != nil {
			return nil, err
		}
		events := g.Events
		if events == nil {
			events = []Event{}
		}
		value, err := json.Marshal(events)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
