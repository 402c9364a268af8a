// Package app wires application dependencies for the CLI.
//
// It builds the key encoder, keystore, PDS client and the services on top of
// them from Config, exposing them via the Wire struct for commands to use.
package app
