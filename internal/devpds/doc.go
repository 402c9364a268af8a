// Package devpds is an in-memory PDS for trying labelkey end to end without
// touching a real account or the PLC directory. It is a development tool
// and performs no signature or PLC validation beyond what the CLI needs.
package devpds
