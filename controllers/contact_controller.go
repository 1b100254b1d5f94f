package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sbo-seals/oilseal-api/models"
	"github.com/sbo-seals/oilseal-api/store"
)

// ContactController serves the public contact/quote-request form.
type ContactController struct {
	store store.ContactStore
	log   *slog.Logger
}

// NewContactController returns a controller over the given contact store.
func NewContactController(s store.ContactStore, log *slog.Logger) *ContactController {
	if log == nil {
		log = slog.Default()
	}
	return &ContactController{store: s, log: log}
}

// Create handles POST /api/contact
func (ctl *ContactController) Create(c *gin.Context) {
	var in models.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"errors":  ValidationDetails(err),
			"message": "Invalid contact data provided",
		})
		return
	}

	// Sanitized submission log: phone masked, message truncated
	ctl.log.Info("new contact request",
		"name", in.Name,
		"email", in.Email,
		"phone", maskPhone(in.Phone),
		"company", in.Company,
		"product", in.Product,
		"message", truncate(in.Message, 100),
	)

	if _, err := ctl.store.AddContact(in); err != nil {
		ctl.log.Error("contact submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Failed to process contact request",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func maskPhone(phone string) string {
	if phone == "" {
		return ""
	}
	return "***"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
