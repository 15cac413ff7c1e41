package schema

// Device is a host that polled the boot server without a matching mapping.
type Device struct {
	Mac      string `json:"Mac"`
	IP       string `json:"IP"`
	Hostname string `json:"Hostname"`
}

// Label is the text shown for the device in the selection list.
func (d Device) Label() string {
	label := d.Mac + " - " + d.IP
	if d.Hostname != "" {
		label += " - " + d.Hostname
	}
	return label
}

// Host prefers the hostname and falls back to the IP address.
func (d Device) Host() string {
	if d.Hostname != "" {
		return d.Hostname
	}
	return d.IP
}
