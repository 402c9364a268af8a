package atproto

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx XRPC response.
type Error struct {
	HTTPMethod string
	Method     string
	Status     string
	StatusCode int

	// Name and Message come from the XRPC error body, when present.
	Name    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("xrpc %s %s: %s", e.HTTPMethod, e.Method, e.Status)
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func newError(httpMethod, method string, resp *http.Response) error {
	e := &Error{
		HTTPMethod: httpMethod,
		Method:     method,
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(b, e)
	return e
}
