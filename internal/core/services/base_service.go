package services

import (
	"fmt"

	"github.com/quizforum/quizforum-backend/internal/apperrors"
)

// assertOwner enforces the ownership policy shared by every mutate/delete
// path: only the creating member may change or delete an entity. It must run
// against the ownerID of the freshly fetched row, never a client-supplied
// claim.
func assertOwner(ownerID, requesterID string) error {
	if ownerID != requesterID {
		return fmt.Errorf("requester is not the owner: %w", apperrors.ErrForbidden)
	}
	return nil
}
