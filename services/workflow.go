package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/anggasct/fluo"

	"internship-noc-api/models"
)

// Submission workflow states. A submission is visible to the reviewer role
// only in pending_review and to the HOD role only in pending_hod; every
// other state is terminal for the portal.
const (
	StatusSubmitted        = "submitted"
	StatusPendingReview    = "pending_review"
	StatusReviewerRejected = "reviewer_rejected"
	StatusReviewerRework   = "reviewer_rework"
	StatusPendingHOD       = "pending_hod"
	StatusHODApproved      = "hod_approved"
	StatusHODRejected      = "hod_rejected"
)

// Decision labels. The portals historically sent mixed casings ("Approve",
// "accept"); NormalizeDecision folds them onto these.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionRework  = "rework"
)

// Machine events. One event per role+decision pair keeps the transition
// table authoritative: a reviewer event can never fire from pending_hod.
const (
	eventEnterReview     = "enter_review"
	eventReviewerApprove = "reviewer_approve"
	eventReviewerReject  = "reviewer_reject"
	eventReviewerRework  = "reviewer_rework"
	eventHODApprove      = "hod_approve"
	eventHODReject       = "hod_reject"
)

var (
	workflowOnce sync.Once
	workflowDef  fluo.MachineDefinition
)

// workflowDefinition builds the submission state machine once. Reviewer
// approval lands directly in pending_hod; rejected and rework outcomes are
// terminal (a corrected application is a brand-new submission).
func workflowDefinition() fluo.MachineDefinition {
	workflowOnce.Do(func() {
		builder := fluo.NewMachine()

		builder.State(StatusSubmitted).Initial().
			To(StatusPendingReview).On(eventEnterReview)

		builder.State(StatusPendingReview).
			To(StatusPendingHOD).On(eventReviewerApprove).
			To(StatusReviewerRejected).On(eventReviewerReject).
			To(StatusReviewerRework).On(eventReviewerRework)

		builder.State(StatusReviewerRejected).Final()
		builder.State(StatusReviewerRework).Final()

		builder.State(StatusPendingHOD).
			To(StatusHODApproved).On(eventHODApprove).
			To(StatusHODRejected).On(eventHODReject)

		builder.State(StatusHODApproved).Final()
		builder.State(StatusHODRejected).Final()

		workflowDef = builder.Build()
	})
	return workflowDef
}

// InitialStatus runs a fresh machine through intake: a validated submission
// enters review immediately, so the stored status is pending_review.
func InitialStatus() string {
	machine := workflowDefinition().CreateInstance()
	if err := machine.Start(); err != nil {
		return StatusSubmitted
	}
	result := machine.SendEvent(eventEnterReview, nil)
	return result.CurrentState
}

// NormalizeDecision lowercases a portal decision label and folds the legacy
// "accept" spelling onto approve.
func NormalizeDecision(decision string) string {
	d := strings.ToLower(strings.TrimSpace(decision))
	if d == "accept" {
		d = DecisionApprove
	}
	return d
}

// decisionEvent maps a role+decision pair onto a machine event. HOD has no
// rework option; only the first-line reviewer can send work back.
func decisionEvent(role, decision string) (string, error) {
	switch role {
	case models.RoleReviewer:
		switch decision {
		case DecisionApprove:
			return eventReviewerApprove, nil
		case DecisionReject:
			return eventReviewerReject, nil
		case DecisionRework:
			return eventReviewerRework, nil
		}
	case models.RoleHOD:
		switch decision {
		case DecisionApprove:
			return eventHODApprove, nil
		case DecisionReject:
			return eventHODReject, nil
		}
	}
	return "", fmt.Errorf("%w: %s cannot %q", ErrInvalidDecision, role, decision)
}

// NextStatus drives the state machine from the stored status with the
// given role's decision and returns the resulting status. A decision that
// the machine rejects (terminal state, wrong stage) yields ErrStaleState.
func NextStatus(current, role, decision string) (string, error) {
	event, err := decisionEvent(role, decision)
	if err != nil {
		return "", err
	}

	machine := workflowDefinition().CreateInstance()
	if err := machine.Start(); err != nil {
		return "", err
	}
	if err := machine.SetState(current); err != nil {
		return "", fmt.Errorf("%w: unknown status %q", ErrStaleState, current)
	}

	result := machine.SendEvent(event, nil)
	if !result.StateChanged {
		return "", ErrStaleState
	}
	return result.CurrentState, nil
}

// IsTerminal reports whether no further decision can act on the status.
func IsTerminal(status string) bool {
	switch status {
	case StatusReviewerRejected, StatusReviewerRework, StatusHODApproved, StatusHODRejected:
		return true
	}
	return false
}
