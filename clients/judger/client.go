// Package judger is a thin client for the judger node's JSON endpoints, for
// dashboards and operational scripts.
package judger

import (
	"net/http"

	"atcoder_judger/lib/connector"

	"github.com/go-resty/resty/v2"
)

// Status mirrors the /judger/status response.
type Status struct {
	Epoch        string   `json:"epoch"`
	LoggedIn     bool     `json:"loggedIn"`
	Tracking     []string `json:"tracking"`
	TrackedCount int      `json:"trackedCount"`
}

type Client struct {
	client *resty.Client
}

func NewClient(address string) *Client {
	return &Client{client: resty.New().SetBaseURL(address)}
}

// Status fetches the node state. The epoch changes whenever the node
// restarts, so callers can detect that tracked submissions were lost.
func (c *Client) Status() (*Status, error) {
	return connector.Receive[Status](c.client.R(), "/judger/status", http.MethodGet)
}
