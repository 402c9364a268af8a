// Package commands defines the labelkey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - generate       Create a signing key and print its multibase / did:key forms
//   - inspect        Decode a did:key or multibase private key
//   - request-token  Have the PDS email a PLC operation token
//   - setup          Register the key and labeler endpoint in the DID document
//   - declare        Publish the labeler service record
//
// # Implementation
//
// The root command builds the dependency graph (key encoder, keystore, PDS
// client, services) before any subcommand runs. Fresh keys are printed before
// any network call so a failed registration never loses them.
package commands
