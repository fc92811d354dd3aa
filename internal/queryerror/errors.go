// Package queryerror holds the failure classes of registry lookups. All of them
// except ErrInvalidEntity mean "no data" to the enrichment stage.
package queryerror

import "errors"

var (
	// ErrNoServer: bootstrap found no registry server for the name or address.
	ErrNoServer = errors.New("no registry server found")
	// ErrNotFound: the server answered without a usable record.
	ErrNotFound = errors.New("registry object not found")
	// ErrMalformedInput: the identifier could not be parsed.
	ErrMalformedInput = errors.New("malformed identifier")
	// ErrTransport: timeout, connection or decoding failure.
	ErrTransport = errors.New("registry transport failure")

	// ErrInvalidEntity marks structurally invalid upstream input.
	ErrInvalidEntity = errors.New("invalid entity")
)
