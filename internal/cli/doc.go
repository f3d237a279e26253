// Package cli handles the binary-level slice of the command line: logging
// flags, the options-file flag, and process exit codes. It deliberately does
// not own the adapter's flag surface — arbitrary flags flow through to the
// adapter pipeline, which projects them into the dispatched request.
package cli
