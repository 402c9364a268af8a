package plcsetup

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"labelkey/internal/didkey"
	"labelkey/internal/domain"
)

var log = logging.Logger("plcsetup")

const (
	// VerificationMethodID is the DID document key slot for label signing.
	VerificationMethodID = "atproto_label"

	// ServiceID and ServiceType declare the labeler endpoint in the DID document.
	ServiceID   = "atproto_labeler"
	ServiceType = "AtprotoLabeler"
)

// ErrInvalidConfig is returned before any network call when SetupConfig is incomplete.
var ErrInvalidConfig = errors.New("invalid setup config")

// Service registers a labeler signing key and endpoint in the account's
// did:plc document through its PDS.
type Service struct {
	pds domain.PDSClient
}

// New returns a Service talking to pds.
func New(pds domain.PDSClient) *Service { return &Service{pds: pds} }

// RequestToken logs in and asks the PDS to email the PLC operation token
// Setup needs.
func (s *Service) RequestToken(ctx context.Context, cfg domain.SetupConfig) error {
	if err := validateLogin(cfg); err != nil {
		return err
	}
	sess, err := s.login(ctx, cfg)
	if err != nil {
		return err
	}
	if err := s.pds.RequestPLCOperationSignature(ctx, sess); err != nil {
		return collaborator("request plc token", err)
	}
	log.Infow("plc operation token requested", "did", sess.DID)
	return nil
}

// Setup points the account's DID document at keys.PublicDIDKey as its label
// signing key and at cfg.ServiceEndpoint as its labeler service. Every
// failure after validation wraps domain.ErrCollaborator; keys stays valid
// and can be registered again.
func (s *Service) Setup(
	ctx context.Context,
	cfg domain.SetupConfig,
	keys domain.EncodedKeys,
) (domain.SetupResult, error) {
	if err := Validate(cfg); err != nil {
		return domain.SetupResult{}, err
	}
	if _, err := didkey.ParsePublic(keys.PublicDIDKey.String()); err != nil {
		return domain.SetupResult{}, err
	}

	sess, err := s.login(ctx, cfg)
	if err != nil {
		return domain.SetupResult{}, err
	}
	creds, err := s.pds.GetRecommendedDIDCredentials(ctx, sess)
	if err != nil {
		return domain.SetupResult{}, collaborator("get recommended credentials", err)
	}

	req := domain.SignPLCOperationRequest{
		Token:          strings.TrimSpace(cfg.Token),
		DIDCredentials: withLabeler(creds, keys.PublicDIDKey, cfg.ServiceEndpoint),
	}
	op, err := s.pds.SignPLCOperation(ctx, sess, req)
	if err != nil {
		return domain.SetupResult{}, collaborator("sign plc operation", err)
	}
	if err := s.pds.SubmitPLCOperation(ctx, sess, op); err != nil {
		return domain.SetupResult{}, collaborator("submit plc operation", err)
	}

	log.Infow("labeler key registered", "did", sess.DID, "signingKey", keys.PublicDIDKey, "endpoint", cfg.ServiceEndpoint)
	return domain.SetupResult{DID: sess.DID, SigningKey: keys.PublicDIDKey}, nil
}

func (s *Service) login(ctx context.Context, cfg domain.SetupConfig) (domain.Session, error) {
	sess, err := s.pds.CreateSession(ctx, cfg.Handle, cfg.Credential)
	if err != nil {
		return domain.Session{}, collaborator("login as "+cfg.Handle.String(), err)
	}
	log.Debugw("logged in", "handle", cfg.Handle, "did", sess.DID)
	return sess, nil
}

// withLabeler returns a copy of creds with the label key and labeler service
// set. Other verification methods and services are kept as recommended.
func withLabeler(creds domain.DIDCredentials, key domain.DID, endpoint string) domain.DIDCredentials {
	out := creds
	out.VerificationMethods = make(map[string]string, len(creds.VerificationMethods)+1)
	for k, v := range creds.VerificationMethods {
		out.VerificationMethods[k] = v
	}
	out.VerificationMethods[VerificationMethodID] = key.String()

	out.Services = make(map[string]domain.PLCService, len(creds.Services)+1)
	for k, v := range creds.Services {
		out.Services[k] = v
	}
	out.Services[ServiceID] = domain.PLCService{Type: ServiceType, Endpoint: endpoint}
	return out
}

func validateLogin(cfg domain.SetupConfig) error {
	if cfg.Handle == "" {
		return fmt.Errorf("%w: handle required", ErrInvalidConfig)
	}
	if cfg.Credential == "" {
		return fmt.Errorf("%w: credential required", ErrInvalidConfig)
	}
	return nil
}

// Validate reports whether cfg is complete enough for Setup. It makes no
// network calls, so callers can check a config before generating a key.
func Validate(cfg domain.SetupConfig) error {
	if err := validateLogin(cfg); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return fmt.Errorf("%w: plc operation token required (run request-token first)", ErrInvalidConfig)
	}
	u, err := url.Parse(cfg.ServiceEndpoint)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: service endpoint %q is not an absolute http(s) URL", ErrInvalidConfig, cfg.ServiceEndpoint)
	}
	return nil
}

func collaborator(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrCollaborator, step, err)
}

// Compile-time assertion that Service implements domain.PLCRegistrar.
var _ domain.PLCRegistrar = (*Service)(nil)
