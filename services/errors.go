package services

import "errors"

// Workflow engine failures. Controllers translate these into HTTP status
// codes; none of them is ever swallowed silently.
var (
	// ErrUnauthenticated means no valid session accompanied the action.
	// The client must redirect to login.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotAuthorized means the session's role may not act on the
	// submission's current stage.
	ErrNotAuthorized = errors.New("role not authorized for this stage")

	// ErrInvalidDecision means the decision label is unknown for the
	// acting role (e.g. HOD "rework").
	ErrInvalidDecision = errors.New("invalid decision for role")

	// ErrMissingComments means a reject/rework decision arrived without
	// comments. The submission is left unchanged.
	ErrMissingComments = errors.New("comments are required for reject and rework decisions")

	// ErrStaleState means the submission already moved past the stage the
	// decision targets. Clients should refresh their list.
	ErrStaleState = errors.New("submission is not awaiting this decision")

	// ErrSubmissionNotFound means the submission does not exist or was
	// archived.
	ErrSubmissionNotFound = errors.New("submission not found")
)
