package interfaces

import (
	"context"
	"encoding/json"

	domaintypes "labelkey/internal/domain/types"
)

// PDSClient is how we talk to the account's personal data server, all with context.
type PDSClient interface {
	CreateSession(
		ctx context.Context,
		identifier domaintypes.Handle,
		password string,
	) (domaintypes.Session, error)
	RequestPLCOperationSignature(ctx context.Context, session domaintypes.Session) error
	GetRecommendedDIDCredentials(
		ctx context.Context,
		session domaintypes.Session,
	) (domaintypes.DIDCredentials, error)
	SignPLCOperation(
		ctx context.Context,
		session domaintypes.Session,
		request domaintypes.SignPLCOperationRequest,
	) (json.RawMessage, error)
	SubmitPLCOperation(ctx context.Context, session domaintypes.Session, operation json.RawMessage) error
	PutRecord(
		ctx context.Context,
		session domaintypes.Session,
		collection string,
		rkey string,
		record any,
	) error
}
