// Package atproto provides the XRPC client labelkey uses to reach the
// account's PDS (personal data server), and through it the PLC directory.
//
// Supported calls:
//   - Logging in (com.atproto.server.createSession).
//   - Requesting an emailed PLC operation token.
//   - Fetching the recommended DID credentials.
//   - Signing and submitting a PLC operation.
//   - Writing a record (com.atproto.repo.putRecord).
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *Error with the HTTP method,
// XRPC method, status and the server's error name and message.
package atproto
