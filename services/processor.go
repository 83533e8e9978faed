package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"internship-noc-api/models"
)

// DecisionProcessor applies reviewer and HOD decisions to submissions. It
// is the sole mutation path for status, reviewer and HOD fields: every
// accepted decision updates the submission, appends a ReviewRecord and a
// StatusHistory row inside one transaction, and a failed write leaves the
// stored state untouched.
type DecisionProcessor struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewDecisionProcessor(db *gorm.DB, notifier *Notifier) *DecisionProcessor {
	return &DecisionProcessor{db: db, notifier: notifier}
}

// Apply records the actor's decision on a submission and advances the
// workflow. Pure precondition failures (invalid decision, missing
// comments) are reported before anything is read or written.
func (p *DecisionProcessor) Apply(session *Session, submissionID int, decision, comments string) (*models.Submission, error) {
	if !session.Valid() {
		return nil, ErrUnauthenticated
	}

	decision = NormalizeDecision(decision)
	if _, err := decisionEvent(session.Role, decision); err != nil {
		return nil, err
	}

	comments = strings.TrimSpace(comments)
	if (decision == DecisionReject || decision == DecisionRework) && comments == "" {
		return nil, ErrMissingComments
	}

	tx := p.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var submission models.Submission
	if err := tx.Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	if err := CanAct(session, &submission); err != nil {
		tx.Rollback()
		if errors.Is(err, ErrNotAuthorized) && decisionRole(session.Role) {
			// Right kind of actor, wrong stage: the submission moved
			// under their feet. Report staleness so the client
			// refreshes its list instead of re-showing the action.
			return nil, ErrStaleState
		}
		return nil, err
	}

	newStatus, err := NextStatus(submission.Status, session.Role, decision)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": now,
	}
	switch session.Role {
	case models.RoleReviewer:
		updates["reviewer_id"] = session.UserID
		updates["reviewer_decision"] = decision
		updates["reviewer_comments"] = comments
		updates["reviewed_at"] = now
	case models.RoleHOD:
		updates["hod_id"] = session.UserID
		updates["hod_decision"] = decision
		updates["hod_remarks"] = comments
		updates["hod_decided_at"] = now
	}

	if err := tx.Model(&models.Submission{}).
		Where("submission_id = ?", submission.SubmissionID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	record := models.ReviewRecord{
		SubmissionID: submission.SubmissionID,
		ActorID:      session.UserID,
		ActorRole:    session.Role,
		Decision:     decision,
		DecidedAt:    now,
	}
	if comments != "" {
		record.Comments = &comments
	}
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	oldStatus := submission.Status
	history := models.StatusHistory{
		SubmissionID: submission.SubmissionID,
		OldStatus:    &oldStatus,
		NewStatus:    newStatus,
		ChangedBy:    session.UserID,
		CreatedAt:    now,
	}
	if comments != "" {
		history.Reason = &comments
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var updated models.Submission
	if err := p.db.Preload("Documents").Preload("Reviewer").Preload("HOD").
		Where("submission_id = ?", submission.SubmissionID).
		First(&updated).Error; err != nil {
		// The decision committed; fall back to the pre-reload snapshot.
		submission.Status = newStatus
		updated = submission
	}

	if p.notifier != nil {
		p.notifier.DecisionApplied(&updated, session.Role, decision, comments)
	}

	return &updated, nil
}

// decisionRole reports whether the role takes workflow decisions at all.
func decisionRole(role string) bool {
	return role == models.RoleReviewer || role == models.RoleHOD
}
