package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sbo-seals/oilseal-api/models"
	"github.com/sbo-seals/oilseal-api/services"
	"github.com/sbo-seals/oilseal-api/store"
)

// Notifier sends an outbound message to a contact over one channel.
type Notifier interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, body string) error
	SendWhatsApp(to, body string) error
}

const replySubject = "Reply from SBO Oil Seals"

// AdminController serves the token-gated inquiry console: list, inspect,
// reply to, re-status and notify contacts.
type AdminController struct {
	store    store.ContactStore
	notifier Notifier
	log      *slog.Logger
}

// NewAdminController returns a controller over the given contact store and
// notifier.
func NewAdminController(s store.ContactStore, n Notifier, log *slog.Logger) *AdminController {
	if log == nil {
		log = slog.Default()
	}
	return &AdminController{store: s, notifier: n, log: log}
}

// ReplyInput is the request body for POST /api/admin/contacts/:id/reply
type ReplyInput struct {
	Message string `json:"message" binding:"required,min=1"`
}

// StatusInput is the request body for PATCH /api/admin/contacts/:id
type StatusInput struct {
	Status models.ContactStatus `json:"status" binding:"required,oneof=new in_progress closed replied"`
}

// NotifyInput is the request body for POST /api/admin/contacts/:id/notify
type NotifyInput struct {
	Channel string `json:"channel" binding:"required,oneof=email sms whatsapp"`
	Message string `json:"message" binding:"required,min=1"`
}

// ListContacts handles GET /api/admin/contacts
func (ctl *AdminController) ListContacts(c *gin.Context) {
	var status *models.ContactStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ContactStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &s
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	items, err := ctl.store.ListContacts(status, limit, offset)
	if err != nil {
		ctl.log.Error("failed to list contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	if items == nil {
		items = []models.Contact{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetContact handles GET /api/admin/contacts/:id
func (ctl *AdminController) GetContact(c *gin.Context) {
	item, err := ctl.store.GetContact(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctl.log.Error("failed to load contact", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// Reply handles POST /api/admin/contacts/:id/reply. Recording a reply
// implicitly moves the contact to "replied".
func (ctl *AdminController) Reply(c *gin.Context) {
	var in ReplyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ValidationDetails(err)})
		return
	}

	id := c.Param("id")
	if _, err := ctl.store.GetContact(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctl.log.Error("failed to load contact for reply", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reply"})
		return
	}

	updated, err := ctl.store.UpdateContact(id, models.ContactPatch{
		Reply: &models.Reply{Message: in.Message, RepliedAt: time.Now().UTC()},
	})
	if err != nil {
		ctl.log.Error("failed to record reply", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": updated})
}

// UpdateStatus handles PATCH /api/admin/contacts/:id
func (ctl *AdminController) UpdateStatus(c *gin.Context) {
	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ValidationDetails(err)})
		return
	}

	updated, err := ctl.store.UpdateContact(c.Param("id"), models.ContactPatch{Status: &in.Status})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctl.log.Error("failed to update contact status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "item": updated})
}

// Notify handles POST /api/admin/contacts/:id/notify. The chosen channel must
// have a destination on the contact; a channel missing provider credentials is
// a client-visible configuration error.
func (ctl *AdminController) Notify(c *gin.Context) {
	var in NotifyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ValidationDetails(err)})
		return
	}

	item, err := ctl.store.GetContact(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		ctl.log.Error("failed to load contact for notify", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to notify"})
		return
	}

	switch in.Channel {
	case "email":
		if item.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact has no email"})
			return
		}
		err = ctl.notifier.SendEmail(item.Email, replySubject, in.Message)
	case "sms":
		if item.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact has no phone"})
			return
		}
		err = ctl.notifier.SendSMS(item.Phone, in.Message)
	case "whatsapp":
		if item.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contact has no phone"})
			return
		}
		err = ctl.notifier.SendWhatsApp(item.Phone, in.Message)
	}
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctl.log.Error("failed to send notification", "channel", in.Channel, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to notify"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
