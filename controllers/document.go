package controllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"internship-noc-api/config"
	"internship-noc-api/models"
)

// DownloadDocument streams a stored submission attachment to the reviewer
// or HOD portal.
func DownloadDocument(c *gin.Context) {
	documentID, err := strconv.Atoi(c.Param("id"))
	if err != nil || documentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID"})
		return
	}

	var document models.SubmissionDocument
	if err := config.DB.Where("document_id = ?", documentID).First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if _, err := os.Stat(document.StoredPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stored file is missing"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+document.OriginalName+`"`)
	c.Header("Content-Type", document.MimeType)
	c.File(document.StoredPath)
}
