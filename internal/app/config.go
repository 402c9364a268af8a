package app

import (
	"net/http"
	"time"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string        // keystore directory, e.g. $HOME/.labelkey
	PDSHost string        // PDS base URL, e.g. https://bsky.social
	HTTP    *http.Client  // optional; defaults to a client with Timeout
	Timeout time.Duration // per-request timeout for the default client
}
