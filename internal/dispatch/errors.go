package dispatch

import "fmt"

// NotFoundError marks a dispatch that cannot proceed because the recipient's
// stored data is incomplete: no profile row, no email address on file, or no
// preferences row. Handlers map it to a client error, not a server fault.
type NotFoundError struct {
	Resource string
	UserID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found for user %s", e.Resource, e.UserID)
}
