// Package argv tokenizes raw command-line arguments into positional
// segments, an ordered flag map, and a raw tail captured after a "--"
// separator.
//
// Unlike the standard flag package, flags do not need to be declared up
// front: any "--key value" pair is captured as-is. This is required because
// the adapter projects every non-reserved flag into the query string of the
// built request. First-appearance order of flags is preserved so downstream
// consumers can produce deterministic output.
package argv
