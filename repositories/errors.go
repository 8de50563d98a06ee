package repositories

import "errors"

// Error taxonomy shared by all repositories. Callers match with errors.Is;
// repositories wrap these with fmt.Errorf("%w: ...") to add detail.
var (
	// ErrValidation covers bad or duplicate input (empty fields, taken
	// username/email, oversized message text, self-follow).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an operation requires an entity that
	// does not exist. Plain lookups return (nil, nil) instead.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the actor lacks rights over the target
	// resource. It is raised before any mutation happens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateEdge is returned when a follow edge already exists.
	ErrDuplicateEdge = errors.New("follow edge already exists")
)
