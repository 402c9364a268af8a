package devpds

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"labelkey/internal/atproto"
	"labelkey/internal/didkey"
	"labelkey/internal/domain"
)

var log = logging.Logger("devpds")

// Account is a login known to the server.
type Account struct {
	Handle   domain.Handle
	Password string
	DID      domain.DID
}

// Server is an in-memory stand-in for a PDS that implements the XRPC calls
// labelkey makes. Submitted PLC operations and written records are kept for
// inspection instead of being forwarded anywhere.
type Server struct {
	mu       sync.Mutex
	accounts map[domain.Handle]Account
	sessions map[string]domain.DID
	tokens   map[domain.DID]string
	creds    map[domain.DID]domain.DIDCredentials
	records  map[string]json.RawMessage

	// Token, when set, is issued by requestPlcOperationSignature instead of
	// a random one.
	Token string
}

// New returns a Server with the given accounts.
func New(accounts ...Account) *Server {
	s := &Server{
		accounts: make(map[domain.Handle]Account),
		sessions: make(map[string]domain.DID),
		tokens:   make(map[domain.DID]string),
		creds:    make(map[domain.DID]domain.DIDCredentials),
		records:  make(map[string]json.RawMessage),
	}
	for _, a := range accounts {
		s.accounts[a.Handle] = a
		s.creds[a.DID] = domain.DIDCredentials{
			AlsoKnownAs:         []string{"at://" + a.Handle.String()},
			VerificationMethods: map[string]string{},
			Services: map[string]domain.PLCService{
				"atproto_pds": {Type: "AtprotoPersonalDataServer", Endpoint: "http://localhost"},
			},
		}
	}
	return s
}

// Credentials returns the DID credentials currently recorded for did.
func (s *Server) Credentials(did domain.DID) (domain.DIDCredentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creds[did]
	return c, ok
}

// IssuedToken returns the PLC token last issued for did.
func (s *Server) IssuedToken(did domain.DID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[did]
}

// Record returns the raw JSON of a stored record.
func (s *Server) Record(did domain.DID, collection, rkey string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[recordKey(did.String(), collection, rkey)]
	return r, ok
}

// Handler returns the XRPC routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /xrpc/"+atproto.MethodCreateSession, s.createSession)
	mux.HandleFunc("POST /xrpc/"+atproto.MethodRequestPLCOperationSignature, s.authed(s.requestToken))
	mux.HandleFunc("GET /xrpc/"+atproto.MethodGetRecommendedDIDCredentials, s.authed(s.recommendedCreds))
	mux.HandleFunc("POST /xrpc/"+atproto.MethodSignPLCOperation, s.authed(s.signOperation))
	mux.HandleFunc("POST /xrpc/"+atproto.MethodSubmitPLCOperation, s.authed(s.submitOperation))
	mux.HandleFunc("POST /xrpc/"+atproto.MethodPutRecord, s.authed(s.putRecord))
	return mux
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		xrpcError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	s.mu.Lock()
	acct, ok := s.accounts[domain.Handle(in.Identifier)]
	if !ok || acct.Password != in.Password {
		s.mu.Unlock()
		xrpcError(w, http.StatusUnauthorized, "AuthenticationRequired", "Invalid identifier or password")
		return
	}
	jwt := randomHex(16)
	s.sessions[jwt] = acct.DID
	s.mu.Unlock()

	log.Infow("session created", "handle", acct.Handle, "did", acct.DID)
	writeJSON(w, domain.Session{DID: acct.DID, Handle: acct.Handle, AccessJWT: jwt, RefreshJWT: randomHex(16)})
}

func (s *Server) requestToken(w http.ResponseWriter, _ *http.Request, did domain.DID) {
	token := s.Token
	if token == "" {
		token = strings.ToUpper(randomHex(3) + "-" + randomHex(3))
	}
	s.mu.Lock()
	s.tokens[did] = token
	s.mu.Unlock()
	log.Infow("plc token issued", "did", did, "token", token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) recommendedCreds(w http.ResponseWriter, _ *http.Request, did domain.DID) {
	s.mu.Lock()
	c := s.creds[did]
	s.mu.Unlock()
	writeJSON(w, c)
}

func (s *Server) signOperation(w http.ResponseWriter, r *http.Request, did domain.DID) {
	var in domain.SignPLCOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		xrpcError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	s.mu.Lock()
	want := s.tokens[did]
	s.mu.Unlock()
	if want == "" || in.Token != want {
		xrpcError(w, http.StatusBadRequest, "InvalidToken", "Token is invalid")
		return
	}
	if key, ok := in.VerificationMethods["atproto_label"]; ok {
		if _, err := didkey.ParsePublic(key); err != nil {
			xrpcError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
	}
	op := struct {
		Type string `json:"type"`
		domain.DIDCredentials
		Prev string `json:"prev,omitempty"`
		Sig  string `json:"sig"`
	}{Type: "plc_operation", DIDCredentials: in.DIDCredentials, Sig: randomHex(32)}
	writeJSON(w, map[string]any{"operation": op})
}

func (s *Server) submitOperation(w http.ResponseWriter, r *http.Request, did domain.DID) {
	var in struct {
		Operation struct {
			Type string `json:"type"`
			domain.DIDCredentials
			Sig string `json:"sig"`
		} `json:"operation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Operation.Sig == "" {
		xrpcError(w, http.StatusBadRequest, "InvalidRequest", "operation must be signed")
		return
	}
	s.mu.Lock()
	s.creds[did] = in.Operation.DIDCredentials
	delete(s.tokens, did)
	s.mu.Unlock()
	log.Infow("plc operation applied", "did", did, "verificationMethods", in.Operation.VerificationMethods)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) putRecord(w http.ResponseWriter, r *http.Request, did domain.DID) {
	var in struct {
		Repo       string          `json:"repo"`
		Collection string          `json:"collection"`
		Rkey       string          `json:"rkey"`
		Record     json.RawMessage `json:"record"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		xrpcError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	if in.Repo != did.String() {
		xrpcError(w, http.StatusForbidden, "InvalidRequest", "repo does not match session")
		return
	}
	uri := "at://" + recordKey(in.Repo, in.Collection, in.Rkey)
	s.mu.Lock()
	s.records[recordKey(in.Repo, in.Collection, in.Rkey)] = in.Record
	s.mu.Unlock()
	log.Infow("record written", "uri", uri)
	writeJSON(w, map[string]string{"uri": uri, "cid": randomHex(16)})
}

func (s *Server) authed(next func(http.ResponseWriter, *http.Request, domain.DID)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwt := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.mu.Lock()
		did, ok := s.sessions[jwt]
		s.mu.Unlock()
		if !ok {
			xrpcError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication Required")
			return
		}
		next(w, r, did)
	}
}

func recordKey(repo, collection, rkey string) string {
	return repo + "/" + collection + "/" + rkey
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func xrpcError(w http.ResponseWriter, status int, name, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": name, "message": msg})
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
