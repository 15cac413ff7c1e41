package libol

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"io"
	"net/http"
	"time"
)

type Auth struct {
	Type     string
	Username string
	Password string
}

func BasicAuth(username, password string) string {
	auth := username + ":"
	if password != "" {
		auth += password
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}

type HttpClient struct {
	Method    string
	Url       string
	Payload   io.Reader
	Header    http.Header
	Auth      Auth
	TlsConfig *tls.Config
	Timeout   time.Duration
	Client    *http.Client
}

func (cl *HttpClient) Do(ctx context.Context) (*http.Response, error) {
	if cl.Method == "" {
		cl.Method = "GET"
	}
	if cl.TlsConfig == nil {
		cl.TlsConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, cl.Method, cl.Url, cl.Payload)
	if err != nil {
		return nil, err
	}
	for key, values := range cl.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if cl.Auth.Type == "basic" {
		req.Header.Set("Authorization", BasicAuth(cl.Auth.Username, cl.Auth.Password))
	}
	if cl.Client == nil {
		cl.Client = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: cl.TlsConfig,
			},
			Timeout: cl.Timeout,
		}
	}
	return cl.Client.Do(req)
}

func (cl *HttpClient) Close() {
	if cl.Client != nil {
		cl.Client.CloseIdleConnections()
	}
}
