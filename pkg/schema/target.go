package schema

// Target is a boot script offered in the target selection.
type Target struct {
	Name        string `json:"name" yaml:"name"`
	Script      string `json:"script" yaml:"script"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// Boot is the manual boot request submitted for a device.
type Boot struct {
	Mac         string            `json:"mac"`
	Target      string            `json:"target"`
	Environment string            `json:"environment,omitempty"`
	Params      map[string]string `json:"params,omitempty"`
}
