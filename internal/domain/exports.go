package domain

import (
	interfaces "labelkey/internal/domain/interfaces"
	types "labelkey/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DID                     = types.DID
	Handle                  = types.Handle
	Fingerprint             = types.Fingerprint
	Ed25519Seed             = types.Ed25519Seed
	Ed25519Public           = types.Ed25519Public
	Keypair                 = types.Keypair
	EncodedKeys             = types.EncodedKeys
	SetupConfig             = types.SetupConfig
	SetupResult             = types.SetupResult
	Session                 = types.Session
	PLCService              = types.PLCService
	DIDCredentials          = types.DIDCredentials
	SignPLCOperationRequest = types.SignPLCOperationRequest
	LabelLocale             = types.LabelLocale
	LabelDefinition         = types.LabelDefinition
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyEncoder      = interfaces.KeyEncoder
	IdentityService = interfaces.IdentityService
	PLCRegistrar    = interfaces.PLCRegistrar
	LabelerService  = interfaces.LabelerService
	KeyStore        = interfaces.KeyStore
	PDSClient       = interfaces.PDSClient
)
