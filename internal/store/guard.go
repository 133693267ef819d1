package store

import (
	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

// RequireOwner is the single ownership check applied before any lookup,
// update, or delete of owned content. A non-owner gets Unauthorized rather
// than NotFound so an owner debugging their own ids can tell the two apart;
// the caller must never include record contents in the rejection.
func RequireOwner(requesterID, ownerID uuid.UUID) error {
	if requesterID != ownerID {
		return apperror.NewUnauthorized("You do not have access to this record")
	}
	return nil
}
