// Package server holds the HTTP server configuration and response helpers.
//
// The start command owns the fiber application; this package defines the
// listen port, the API key and the graceful shutdown budget, plus the paths
// that stay reachable without a key.
//
// # Errors
//
// RespondError maps the shared error taxonomy onto HTTP statuses so every
// feature reports failures the same way:
//   - ValidationError: 400 with the full violation list
//   - DuplicateKeyError: 409
//   - ParseError: 422
//   - anything else: 500
package server
