package shared

import (
	"github.com/google/uuid"
)

// ActiveProductSnapshot is the read-only projection the create-order command
// works against. Requested ids that are missing or inactive are simply absent
// from the lookup result; the command decides what that means.
type ActiveProductSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Currency   string
}
