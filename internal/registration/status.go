package registration

import (
	"github.com/vinaythakkar13/yatra-backend/internal/apperror"
)

// transitions lists the explicit status changes. Cancelled is terminal.
// Forced cancellation after a document rejection and the revert-to-pending
// on edit are handled by their operations, not by this table.
var transitions = map[string]map[string]bool{
	StatusPending: {
		StatusApproved:  true,
		StatusRejected:  true,
		StatusCancelled: true,
	},
	StatusApproved: {
		StatusCancelled: true,
	},
}

var verbs = map[string]string{
	StatusApproved:  "approve",
	StatusRejected:  "reject",
	StatusCancelled: "cancel",
}

// checkTransition returns a Conflict naming the rule when from -> to is
// not allowed.
func checkTransition(from, to string) error {
	if transitions[from][to] {
		return nil
	}
	if from == to {
		return apperror.Conflict("registration is already %s", to)
	}
	if from == StatusCancelled {
		return apperror.Conflict("registration is cancelled; cancelled registrations cannot change status")
	}
	return apperror.Conflict("cannot %s a registration that is %s", verbs[to], from)
}

// checkEditable guards Update: rejected and cancelled registrations are
// closed to edits.
func checkEditable(status string) error {
	switch status {
	case StatusRejected, StatusCancelled:
		return apperror.Conflict("registration is %s and can no longer be edited", status)
	}
	return nil
}

// checkDocumentReview guards ApproveDocument / RejectDocument.
func checkDocumentReview(reg *Registration) error {
	if reg.Status == StatusCancelled {
		return apperror.Conflict("registration is already cancelled; documents cannot be reviewed")
	}
	if reg.DocumentStatus != DocumentPending {
		return apperror.Conflict("documents are already %s", reg.DocumentStatus)
	}
	return nil
}
