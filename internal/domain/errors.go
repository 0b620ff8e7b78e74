package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// itinerary does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, rating outside 1..5).
// Missing and malformed fields share this one kind; only the message differs.
var ErrValidation = errors.New("validation error")

// ErrDuplicateUsername is returned by registration when the username is taken.
// Repos translate the storage unique-constraint failure into this error.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrInvalidCredentials is returned by authentication for an unknown username
// and for a wrong credential alike, so callers cannot tell which one it was.
var ErrInvalidCredentials = errors.New("invalid username or credential")

// ErrNotAuthenticated is returned by itinerary operations called without an
// active session. No store access happens in that case.
var ErrNotAuthenticated = errors.New("not authenticated")
