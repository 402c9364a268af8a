// Package plcsetup registers a labeler's signing key with the PLC directory.
//
// The account's PDS does the PLC work: labelkey logs in, asks for the
// recommended DID credentials, adds the atproto_label verification method
// and the atproto_labeler service, has the PDS sign the operation with the
// emailed token and submits it. Nothing is retried.
package plcsetup
