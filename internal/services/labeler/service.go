package labeler

import (
	"context"
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"labelkey/internal/domain"
)

var log = logging.Logger("labeler")

// Service publishes the labeler declaration record.
type Service struct {
	pds domain.PDSClient
	now func() time.Time
}

// New returns a Service writing through pds.
func New(pds domain.PDSClient) *Service { return &Service{pds: pds, now: time.Now} }

// Declare logs in and writes the app.bsky.labeler.service record listing
// definitions, replacing any previous declaration. It returns the DID of
// the declaring account.
func (s *Service) Declare(
	ctx context.Context,
	cfg domain.SetupConfig,
	definitions []domain.LabelDefinition,
) (domain.DID, error) {
	rec, err := BuildRecord(definitions, s.now())
	if err != nil {
		return "", err
	}
	sess, err := s.pds.CreateSession(ctx, cfg.Handle, cfg.Credential)
	if err != nil {
		return "", fmt.Errorf("%w: login as %s: %w", domain.ErrCollaborator, cfg.Handle, err)
	}
	if err := s.pds.PutRecord(ctx, sess, Collection, RecordKey, rec); err != nil {
		return "", fmt.Errorf("%w: put %s: %w", domain.ErrCollaborator, Collection, err)
	}
	log.Infow("labeler declared", "did", sess.DID, "labels", len(rec.Policies.LabelValues))
	return sess.DID, nil
}

// Compile-time assertion that Service implements domain.LabelerService.
var _ domain.LabelerService = (*Service)(nil)
