package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internship-noc-api/config"
	"internship-noc-api/middleware"
	"internship-noc-api/models"
	"internship-noc-api/services"
)

// GetHODSubmissions lists reviewer-approved applications waiting for the
// department head. A submission only ever shows up here after reviewer
// approval.
func GetHODSubmissions(c *gin.Context) {
	var submissions []models.Submission
	if err := config.DB.Preload("Documents").Preload("Reviewer").
		Where("deleted_at IS NULL").
		Where("status = ?", services.StatusPendingHOD).
		Order("reviewed_at ASC").
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

// HODDecision applies the department head's final approve/reject call.
// There is no rework at this stage.
func HODDecision(c *gin.Context) {
	var req struct {
		SubmissionID int    `json:"submission_id" binding:"required"`
		HODID        int    `json:"hod_id"`
		Action       string `json:"action" binding:"required"`
		Remarks      string `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session := middleware.GetSession(c)
	processor := services.NewDecisionProcessor(config.DB, services.NewNotifier())

	updated, err := processor.Apply(session, req.SubmissionID, req.Action, req.Remarks)
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
