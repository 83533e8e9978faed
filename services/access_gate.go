package services

import "internship-noc-api/models"

// CanAct decides whether the session's actor may decide on the submission
// at its current stage. Students are read-only, admins manage accounts
// only, and an unauthenticated session always denies with the
// redirect-to-login condition rather than a silent no-op.
func CanAct(session *Session, submission *models.Submission) error {
	if !session.Valid() {
		return ErrUnauthenticated
	}
	if submission == nil {
		return ErrSubmissionNotFound
	}

	switch session.Role {
	case models.RoleReviewer:
		if submission.Status == StatusPendingReview {
			return nil
		}
	case models.RoleHOD:
		if submission.Status == StatusPendingHOD {
			return nil
		}
	}
	return ErrNotAuthorized
}
