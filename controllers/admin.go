package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"internship-noc-api/config"
	"internship-noc-api/models"
)

var accountValidate = validator.New()

type CreateAccountRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ListAccounts returns the active accounts of the given role.
func ListAccounts(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var accounts []models.User
		if err := config.DB.
			Where("role = ? AND delete_at IS NULL", role).
			Order("name ASC").
			Find(&accounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"accounts": accounts,
			"total":    len(accounts),
		})
	}
}

// CreateAccount registers a reviewer (SPC) or HOD account with a generated
// initial password. The password is returned once in the response and
// mailed to the account holder when SMTP is configured.
func CreateAccount(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := accountValidate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := config.DB.
			Where("email = ? AND delete_at IS NULL", req.Email).
			First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}

		initialPassword := uuid.NewString()[:12]
		hash, err := HashPassword(initialPassword)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		now := time.Now()
		account := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hash,
			Role:     role,
			CreateAt: &now,
			UpdateAt: &now,
		}
		if err := config.DB.Create(&account).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		body := fmt.Sprintf(
			"<p>Dear %s,</p><p>An account has been created for you on the internship NOC portal.</p><p>Initial password: <b>%s</b></p>",
			account.Name, initialPassword,
		)
		if err := config.SendMail([]string{account.Email}, "Your NOC portal account", body); err != nil {
			log.Printf("Warning: account mail for %s not sent: %v", account.Email, err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":          true,
			"account":          account,
			"initial_password": initialPassword,
		})
	}
}
