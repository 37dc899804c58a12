package services

import "errors"

var (
	// ErrSessionNotFound signals an unknown or expired session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrWorkshopNotFound signals a workshop ID the catalog does not define.
	ErrWorkshopNotFound = errors.New("workshop not found")

	// ErrEmptyInput signals a generation attempt before every required
	// category has an answer. The HTTP layer gates this too; the check
	// here protects direct callers.
	ErrEmptyInput = errors.New("required selections missing")

	// ErrSuperseded signals a generation call whose result arrived
	// after a newer call for the same session. The newer result wins;
	// this call's output is discarded.
	ErrSuperseded = errors.New("generation superseded by a newer request")

	// ErrNoDocument signals a document read before any successful
	// generation.
	ErrNoDocument = errors.New("no document generated yet")
)
