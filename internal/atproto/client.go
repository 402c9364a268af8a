package atproto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"labelkey/internal/domain"
)

// XRPC method IDs used by labelkey.
const (
	MethodCreateSession                = "com.atproto.server.createSession"
	MethodRequestPLCOperationSignature = "com.atproto.identity.requestPlcOperationSignature"
	MethodGetRecommendedDIDCredentials = "com.atproto.identity.getRecommendedDidCredentials"
	MethodSignPLCOperation             = "com.atproto.identity.signPlcOperation"
	MethodSubmitPLCOperation           = "com.atproto.identity.submitPlcOperation"
	MethodPutRecord                    = "com.atproto.repo.putRecord"
)

// DefaultHost is the PDS entryway used when none is configured.
const DefaultHost = "https://bsky.social"

// Client is an XRPC client for a single PDS.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for the PDS at base. A nil httpClient uses
// http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

// CreateSession logs in with a handle (or DID / email) and password.
func (c *Client) CreateSession(
	ctx context.Context,
	identifier domain.Handle,
	password string,
) (domain.Session, error) {
	var out domain.Session
	in := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{Identifier: identifier.String(), Password: password}
	if err := c.procedure(ctx, MethodCreateSession, "", in, &out); err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

// RequestPLCOperationSignature asks the PDS to email a PLC operation token
// to the account owner.
func (c *Client) RequestPLCOperationSignature(ctx context.Context, session domain.Session) error {
	return c.procedure(ctx, MethodRequestPLCOperationSignature, session.AccessJWT, nil, nil)
}

// GetRecommendedDIDCredentials returns the PLC fields the PDS would publish
// for the account.
func (c *Client) GetRecommendedDIDCredentials(
	ctx context.Context,
	session domain.Session,
) (domain.DIDCredentials, error) {
	var out domain.DIDCredentials
	if err := c.query(ctx, MethodGetRecommendedDIDCredentials, session.AccessJWT, nil, &out); err != nil {
		return domain.DIDCredentials{}, err
	}
	return out, nil
}

// SignPLCOperation has the PDS sign a PLC operation with its rotation key.
// The signed operation is returned verbatim for SubmitPLCOperation.
func (c *Client) SignPLCOperation(
	ctx context.Context,
	session domain.Session,
	request domain.SignPLCOperationRequest,
) (json.RawMessage, error) {
	var out struct {
		Operation json.RawMessage `json:"operation"`
	}
	if err := c.procedure(ctx, MethodSignPLCOperation, session.AccessJWT, request, &out); err != nil {
		return nil, err
	}
	if len(out.Operation) == 0 {
		return nil, fmt.Errorf("xrpc %s: response has no operation", MethodSignPLCOperation)
	}
	return out.Operation, nil
}

// SubmitPLCOperation forwards a signed operation to the PLC directory.
func (c *Client) SubmitPLCOperation(
	ctx context.Context,
	session domain.Session,
	operation json.RawMessage,
) error {
	in := struct {
		Operation json.RawMessage `json:"operation"`
	}{Operation: operation}
	return c.procedure(ctx, MethodSubmitPLCOperation, session.AccessJWT, in, nil)
}

// PutRecord creates or replaces a record in the session's repository.
func (c *Client) PutRecord(
	ctx context.Context,
	session domain.Session,
	collection string,
	rkey string,
	record any,
) error {
	in := struct {
		Repo       string `json:"repo"`
		Collection string `json:"collection"`
		Rkey       string `json:"rkey"`
		Record     any    `json:"record"`
	}{Repo: session.DID.String(), Collection: collection, Rkey: rkey, Record: record}
	return c.procedure(ctx, MethodPutRecord, session.AccessJWT, in, nil)
}

func (c *Client) procedure(ctx context.Context, method, token string, in any, out any) error {
	var body *bytes.Buffer
	if in != nil {
		body = new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return err
		}
	}
	return c.do(ctx, http.MethodPost, method, token, nil, body, out)
}

func (c *Client) query(ctx context.Context, method, token string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, method, token, params, nil, out)
}

func (c *Client) do(
	ctx context.Context,
	httpMethod, method, token string,
	params url.Values,
	body *bytes.Buffer,
	out any,
) error {
	u := c.Base + "/xrpc/" + method
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, httpMethod, u, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, httpMethod, u, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("xrpc %s %s: %w", httpMethod, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return newError(httpMethod, method, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("xrpc %s %s: decode response: %w", httpMethod, method, err)
		}
	}
	return nil
}

var _ domain.PDSClient = (*Client)(nil)
