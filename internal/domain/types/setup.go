package types

// SetupConfig carries the runtime parameters for registering a labeler key.
type SetupConfig struct {
	Handle          Handle // account identifier used to log in
	Credential      string // account password or app password
	ServiceEndpoint string // public URL of the labeler service
	Token           string // PLC operation token emailed by the PDS
}

// SetupResult is returned once the PLC operation has been accepted.
type SetupResult struct {
	DID        DID `json:"did"`
	SigningKey DID `json:"signingKey"`
}

// Session is an authenticated PDS session.
type Session struct {
	DID        DID    `json:"did"`
	Handle     Handle `json:"handle"`
	AccessJWT  string `json:"accessJwt"`
	RefreshJWT string `json:"refreshJwt"`
}

// PLCService is a service entry of a DID document as carried in PLC operations.
type PLCService struct {
	Type     string `json:"type"`
	Endpoint string `json:"endpoint"`
}

// DIDCredentials is the set of PLC fields the PDS recommends for an account.
type DIDCredentials struct {
	RotationKeys        []string              `json:"rotationKeys,omitempty"`
	AlsoKnownAs         []string              `json:"alsoKnownAs,omitempty"`
	VerificationMethods map[string]string     `json:"verificationMethods,omitempty"`
	Services            map[string]PLCService `json:"services,omitempty"`
}

// SignPLCOperationRequest asks the PDS to sign a PLC operation with its rotation key.
type SignPLCOperationRequest struct {
	Token string `json:"token"`
	DIDCredentials
}
