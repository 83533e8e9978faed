package services

import (
	"fmt"
	"log"

	"internship-noc-api/config"
	"internship-noc-api/models"
)

// Notifier mails the student when a decision lands on their application.
// Delivery is best-effort: a failed send is logged and never bubbles back
// into the decision path.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

var decisionSubjects = map[string]string{
	StatusPendingHOD:       "Your NOC application passed reviewer screening",
	StatusReviewerRejected: "Your NOC application was rejected",
	StatusReviewerRework:   "Your NOC application needs rework",
	StatusHODApproved:      "Your NOC application is approved",
	StatusHODRejected:      "Your NOC application was rejected by the HOD",
}

// DecisionApplied sends the outcome mail for a freshly decided submission.
func (n *Notifier) DecisionApplied(submission *models.Submission, role, decision, comments string) {
	subject, ok := decisionSubjects[submission.Status]
	if !ok {
		subject = "Update on your NOC application"
	}

	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your internship NOC application <b>%s</b> has been marked <b>%s</b> by the %s.</p>",
		submission.StudentName, submission.ApplicationNumber, decision, roleTitle(role),
	)
	if comments != "" {
		body += fmt.Sprintf("<p>Comments: %s</p>", comments)
	}

	if err := config.SendMail([]string{submission.Email}, subject, body); err != nil {
		log.Printf("Warning: decision mail for %s not sent: %v", submission.ApplicationNumber, err)
	}
}

func roleTitle(role string) string {
	switch role {
	case models.RoleReviewer:
		return "program coordinator"
	case models.RoleHOD:
		return "head of department"
	}
	return role
}
