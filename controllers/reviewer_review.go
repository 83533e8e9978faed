package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-noc-api/config"
	"internship-noc-api/middleware"
	"internship-noc-api/models"
	"internship-noc-api/services"
)

// GetReviewerSubmissions lists applications waiting for reviewer screening.
func GetReviewerSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := config.DB.Preload("Documents").
		Where("deleted_at IS NULL").
		Where("status = ?", services.StatusPendingReview).
		Order("submitted_at ASC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// ReviewerDecision applies an approve/reject/rework decision from the
// reviewer portal.
func ReviewerDecision(c *gin.Context) {
	var req struct {
		SubmissionID int    `json:"submission_id" binding:"required"`
		ReviewerID   int    `json:"reviewer_id"`
		Status       string `json:"status" binding:"required"`
		Comments     string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session := middleware.GetSession(c)
	processor := services.NewDecisionProcessor(config.DB, services.NewNotifier())

	updated, err := processor.Apply(session, req.SubmissionID, req.Status, req.Comments)
	if err != nil {
		status, message := decisionError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Decision recorded",
		"submission": updated,
	})
}

// decisionError maps workflow engine failures onto HTTP semantics.
func decisionError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, services.ErrNotAuthorized):
		return http.StatusForbidden, "Not authorized for this stage"
	case errors.Is(err, services.ErrInvalidDecision):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrMissingComments):
		return http.StatusBadRequest, services.ErrMissingComments.Error()
	case errors.Is(err, services.ErrStaleState):
		return http.StatusConflict, "Submission is not awaiting this decision"
	case errors.Is(err, services.ErrSubmissionNotFound):
		return http.StatusNotFound, "Submission not found"
	}
	return http.StatusInternalServerError, "Failed to record decision"
}
