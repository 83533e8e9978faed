package services

import (
	"errors"
	"testing"

	"internship-noc-api/models"
)

func TestInitialStatusEntersReview(t *testing.T) {
	if got := InitialStatus(); got != StatusPendingReview {
		t.Fatalf("InitialStatus() = %q, want %q", got, StatusPendingReview)
	}
}

func TestNextStatusTransitions(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		role     string
		decision string
		want     string
		wantErr  error
	}{
		{"reviewer approve", StatusPendingReview, models.RoleReviewer, DecisionApprove, StatusPendingHOD, nil},
		{"reviewer reject", StatusPendingReview, models.RoleReviewer, DecisionReject, StatusReviewerRejected, nil},
		{"reviewer rework", StatusPendingReview, models.RoleReviewer, DecisionRework, StatusReviewerRework, nil},
		{"hod approve", StatusPendingHOD, models.RoleHOD, DecisionApprove, StatusHODApproved, nil},
		{"hod reject", StatusPendingHOD, models.RoleHOD, DecisionReject, StatusHODRejected, nil},
		{"hod has no rework", StatusPendingHOD, models.RoleHOD, DecisionRework, "", ErrInvalidDecision},
		{"reviewer event cannot fire at hod stage", StatusPendingHOD, models.RoleReviewer, DecisionApprove, "", ErrStaleState},
		{"hod event cannot fire at review stage", StatusPendingReview, models.RoleHOD, DecisionApprove, "", ErrStaleState},
		{"approved is terminal", StatusHODApproved, models.RoleHOD, DecisionReject, "", ErrStaleState},
		{"hod rejected is terminal", StatusHODRejected, models.RoleHOD, DecisionApprove, "", ErrStaleState},
		{"reviewer rejected is terminal", StatusReviewerRejected, models.RoleReviewer, DecisionApprove, "", ErrStaleState},
		{"rework is terminal", StatusReviewerRework, models.RoleReviewer, DecisionApprove, "", ErrStaleState},
		{"unknown status", "archived", models.RoleReviewer, DecisionApprove, "", ErrStaleState},
		{"student cannot decide", StatusPendingReview, models.RoleStudent, DecisionApprove, "", ErrInvalidDecision},
		{"admin cannot decide", StatusPendingReview, models.RoleAdmin, DecisionApprove, "", ErrInvalidDecision},
		{"unknown decision", StatusPendingReview, models.RoleReviewer, "escalate", "", ErrInvalidDecision},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextStatus(tc.current, tc.role, tc.decision)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NextStatus(%q, %s, %s) error = %v, want %v", tc.current, tc.role, tc.decision, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextStatus(%q, %s, %s) unexpected error: %v", tc.current, tc.role, tc.decision, err)
			}
			if got != tc.want {
				t.Fatalf("NextStatus(%q, %s, %s) = %q, want %q", tc.current, tc.role, tc.decision, got, tc.want)
			}
		})
	}
}

func TestNextStatusFullApprovalPath(t *testing.T) {
	status := InitialStatus()

	status, err := NextStatus(status, models.RoleReviewer, DecisionApprove)
	if err != nil {
		t.Fatalf("reviewer approve failed: %v", err)
	}
	status, err = NextStatus(status, models.RoleHOD, DecisionApprove)
	if err != nil {
		t.Fatalf("hod approve failed: %v", err)
	}
	if status != StatusHODApproved {
		t.Fatalf("final status = %q, want %q", status, StatusHODApproved)
	}
	if !IsTerminal(status) {
		t.Fatalf("expected %q to be terminal", status)
	}
}

func TestNormalizeDecision(t *testing.T) {
	cases := map[string]string{
		"Approve":  DecisionApprove,
		"accept":   DecisionApprove,
		"ACCEPT":   DecisionApprove,
		" Reject ": DecisionReject,
		"rework":   DecisionRework,
		"escalate": "escalate",
	}
	for in, want := range cases {
		if got := NormalizeDecision(in); got != want {
			t.Errorf("NormalizeDecision(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []string{StatusReviewerRejected, StatusReviewerRework, StatusHODApproved, StatusHODRejected}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%q) = false, want true", s)
		}
	}
	active := []string{StatusSubmitted, StatusPendingReview, StatusPendingHOD}
	for _, s := range active {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%q) = true, want false", s)
		}
	}
}
