package controllers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"internship-noc-api/config"
	"internship-noc-api/models"
	"internship-noc-api/services"
	"internship-noc-api/utils"
)

// SubmitApplication handles the public multipart intake of an internship
// NOC application. The submission validator gates entry: nothing is stored
// unless every field and attachment rule passes.
func SubmitApplication(c *gin.Context) {
	input := services.SubmissionInput{
		Name:               utils.SanitizeInput(c.PostForm("name")),
		RegistrationNumber: utils.SanitizeInput(c.PostForm("registrationNumber")),
		Email:              utils.SanitizeInput(c.PostForm("email")),
		Mobile:             utils.SanitizeInput(c.PostForm("mobile")),
		Department:         utils.SanitizeInput(c.PostForm("department")),
		Semester:           utils.SanitizeInput(c.PostForm("semester")),
		Section:            utils.SanitizeInput(c.PostForm("section")),
		Gender:             utils.SanitizeInput(c.PostForm("gender")),
		OfferType:          utils.SanitizeInput(c.PostForm("offerType")),
		CompanyName:        utils.SanitizeInput(c.PostForm("companyName")),
		CompanyCity:        utils.SanitizeInput(c.PostForm("companyCity")),
		CompanyState:       utils.SanitizeInput(c.PostForm("companyState")),
		CompanyPin:         utils.SanitizeInput(c.PostForm("companyPin")),
		InternshipType:     utils.SanitizeInput(c.PostForm("internshipType")),
		PPOPackage:         utils.SanitizeInput(c.PostForm("ppoPackage")),
		Stipend:            utils.SanitizeInput(c.PostForm("stipend")),
		StartDate:          utils.SanitizeInput(c.PostForm("startDate")),
		EndDate:            utils.SanitizeInput(c.PostForm("endDate")),
		HRDEmail:           utils.SanitizeInput(c.PostForm("hrdEmail")),
		HRDNumber:          utils.SanitizeInput(c.PostForm("hrdNumber")),
		HasOfferLetter:     formBool(c.PostForm("hasOfferLetter")),
		TermsAccepted:      formBool(c.PostForm("termsAccepted")),
	}

	mailCopyHeader, err := c.FormFile("mailCopy")
	if err != nil {
		mailCopyHeader = nil
	}
	offerLetterHeader, err := c.FormFile("offerLetter")
	if err != nil {
		offerLetterHeader = nil
	}

	validator := services.NewSubmissionValidator(config.App.OfficialEmailDomain)
	submission, fieldErrors := validator.Validate(input,
		attachmentMeta(mailCopyHeader), attachmentMeta(offerLetterHeader))
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	now := time.Now()
	submission.ApplicationNumber = utils.ApplicationNumber(now.Year())
	submission.Status = services.InitialStatus()
	submission.SubmittedAt = now
	submission.UpdatedAt = now

	// Store attachments under the application's own folder.
	uploadDir := filepath.Join(config.App.UploadPath, "submissions", submission.ApplicationNumber)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare storage"})
		return
	}

	documents := make([]models.SubmissionDocument, 0, 2)
	saveDocument := func(header *multipart.FileHeader, kind string) bool {
		storedPath := filepath.Join(uploadDir, utils.StoredFilename(header.Filename))
		if err := c.SaveUploadedFile(header, storedPath); err != nil {
			return false
		}
		documents = append(documents, models.SubmissionDocument{
			DocumentKind: kind,
			OriginalName: header.Filename,
			StoredPath:   storedPath,
			FileSize:     header.Size,
			MimeType:     header.Header.Get("Content-Type"),
			UploadedAt:   now,
		})
		return true
	}

	if !saveDocument(mailCopyHeader, models.DocumentKindMailCopy) {
		os.RemoveAll(uploadDir)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mail copy"})
		return
	}
	if offerLetterHeader != nil {
		if !saveDocument(offerLetterHeader, models.DocumentKindOfferLetter) {
			os.RemoveAll(uploadDir)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save offer letter"})
			return
		}
	}

	tx := config.DB.Begin()
	if err := tx.Create(submission).Error; err != nil {
		tx.Rollback()
		os.RemoveAll(uploadDir)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	for i := range documents {
		documents[i].SubmissionID = submission.SubmissionID
		if err := tx.Create(&documents[i]).Error; err != nil {
			tx.Rollback()
			os.RemoveAll(uploadDir)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save documents"})
			return
		}
	}

	history := models.StatusHistory{
		SubmissionID: submission.SubmissionID,
		NewStatus:    submission.Status,
		CreatedAt:    now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		os.RemoveAll(uploadDir)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		os.RemoveAll(uploadDir)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":            true,
		"submission_id":      submission.SubmissionID,
		"application_number": submission.ApplicationNumber,
		"status":             submission.Status,
	})
}

func attachmentMeta(header *multipart.FileHeader) *services.Attachment {
	if header == nil {
		return nil
	}
	return &services.Attachment{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
}

func formBool(value string) bool {
	switch value {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
