// Package errs holds the sentinel errors shared across services and
// handlers.
package errs

import "errors"

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)
