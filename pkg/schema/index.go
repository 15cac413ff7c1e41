package schema

type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Session describes one live dashboard page.
type Session struct {
	ID       string `json:"id"`
	Remote   string `json:"remote"`
	Attached bool   `json:"attached"`
	Created  int64  `json:"created"`
	Uptime   int64  `json:"uptime"`
}

type Patch struct {
	ID   string `json:"id"`
	Html string `json:"html"`
}

// Input is a browser event forwarded over the live connection.
type Input struct {
	Event string `json:"event"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Alert is a transient banner shown on top of the page.
type Alert struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
