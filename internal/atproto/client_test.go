package atproto_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"labelkey/internal/atproto"
	"labelkey/internal/domain"
)

func TestCreateSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/xrpc/"+atproto.MethodCreateSession, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "labeler.example.com", in["identifier"])
		require.Equal(t, "app-password", in["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"did":       "did:plc:abc123",
			"handle":    "labeler.example.com",
			"accessJwt": "access-token",
		})
	}))
	defer srv.Close()

	c := atproto.NewClient(srv.URL+"/", srv.Client())
	sess, err := c.CreateSession(context.Background(), "labeler.example.com", "app-password")
	require.NoError(t, err)
	require.Equal(t, domain.DID("did:plc:abc123"), sess.DID)
	require.Equal(t, "access-token", sess.AccessJWT)
}

func TestAuthenticatedCallsCarryBearerToken(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		seen = append(seen, r.Method+" "+r.URL.Path)

		switch r.URL.Path {
		case "/xrpc/" + atproto.MethodGetRecommendedDIDCredentials:
			_, _ = w.Write([]byte(`{"rotationKeys":["did:key:zRot"],"alsoKnownAs":["at://labeler.example.com"],` +
				`"verificationMethods":{"atproto":"did:key:zRepo"},` +
				`"services":{"atproto_pds":{"type":"AtprotoPersonalDataServer","endpoint":"https://pds.example.com"}}}`))
		case "/xrpc/" + atproto.MethodSignPLCOperation:
			var in domain.SignPLCOperationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "TOKEN-123", in.Token)
			_, _ = w.Write([]byte(`{"operation":{"type":"plc_operation","sig":"abc"}}`))
		case "/xrpc/" + atproto.MethodSubmitPLCOperation:
			var in struct {
				Operation map[string]string `json:"operation"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "abc", in.Operation["sig"])
		case "/xrpc/" + atproto.MethodRequestPLCOperationSignature:
		case "/xrpc/" + atproto.MethodPutRecord:
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Equal(t, "did:plc:abc123", in["repo"])
			require.Equal(t, "self", in["rkey"])
			_, _ = w.Write([]byte(`{"uri":"at://did:plc:abc123/app.bsky.labeler.service/self","cid":"bafy"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	c := atproto.NewClient(srv.URL, nil)
	sess := domain.Session{DID: "did:plc:abc123", AccessJWT: "access-token"}

	require.NoError(t, c.RequestPLCOperationSignature(ctx, sess))

	creds, err := c.GetRecommendedDIDCredentials(ctx, sess)
	require.NoError(t, err)
	require.Equal(t, "did:key:zRepo", creds.VerificationMethods["atproto"])
	require.Equal(t, "https://pds.example.com", creds.Services["atproto_pds"].Endpoint)

	op, err := c.SignPLCOperation(ctx, sess, domain.SignPLCOperationRequest{Token: "TOKEN-123", DIDCredentials: creds})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"plc_operation","sig":"abc"}`, string(op))

	require.NoError(t, c.SubmitPLCOperation(ctx, sess, op))
	require.NoError(t, c.PutRecord(ctx, sess, "app.bsky.labeler.service", "self", map[string]string{"$type": "x"}))

	require.Equal(t, []string{
		"POST /xrpc/" + atproto.MethodRequestPLCOperationSignature,
		"GET /xrpc/" + atproto.MethodGetRecommendedDIDCredentials,
		"POST /xrpc/" + atproto.MethodSignPLCOperation,
		"POST /xrpc/" + atproto.MethodSubmitPLCOperation,
		"POST /xrpc/" + atproto.MethodPutRecord,
	}, seen)
}

func TestErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"AuthenticationRequired","message":"Invalid identifier or password"}`))
	}))
	defer srv.Close()

	_, err := atproto.NewClient(srv.URL, nil).CreateSession(context.Background(), "x", "y")
	require.Error(t, err)

	var xerr *atproto.Error
	require.True(t, errors.As(err, &xerr))
	require.Equal(t, http.StatusUnauthorized, xerr.StatusCode)
	require.Equal(t, "AuthenticationRequired", xerr.Name)
	require.Contains(t, err.Error(), atproto.MethodCreateSession)
	require.Contains(t, err.Error(), "Invalid identifier or password")
}

func TestSignPLCOperation_EmptyOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := atproto.NewClient(srv.URL, nil).SignPLCOperation(context.Background(), domain.Session{}, domain.SignPLCOperationRequest{})
	require.Error(t, err)
}

func TestContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := atproto.NewClient(srv.URL, nil).CreateSession(ctx, "x", "y")
	require.ErrorIs(t, err, context.Canceled)
}
