package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sbo-seals/oilseal-api/models"
)

// contactRow is the persisted shape of a contact: snake_case columns with
// nullable optionals, as opposed to the camelCase wire shape in models.
type contactRow struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Status       string `gorm:"not null;default:'new';index"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Phone        *string
	Company      *string
	Product      *string
	Quantity     *string
	Message      string  `gorm:"type:text;not null"`
	ReplyMessage *string `gorm:"type:text"`
	ReplyAt      *time.Time
	Notes        *string `gorm:"type:text"`
}

// TableName specifies the table name for the contact row
func (contactRow) TableName() string {
	return "contacts"
}

func (r *contactRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// contactFromRow maps a persisted row to the domain shape. Nullable columns
// become absent optional fields; the reply is present only when both of its
// columns are set.
func contactFromRow(r contactRow) models.Contact {
	c := models.Contact{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Status:    models.ContactStatus(r.Status),
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.Company != nil {
		c.Company = *r.Company
	}
	if r.Product != nil {
		c.Product = *r.Product
	}
	if r.Quantity != nil {
		q := models.QuantityFromString(*r.Quantity)
		c.Quantity = &q
	}
	if r.ReplyMessage != nil && r.ReplyAt != nil {
		c.Reply = &models.Reply{Message: *r.ReplyMessage, RepliedAt: *r.ReplyAt}
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
	return c
}

// contactToRow maps a domain contact back to its row shape. Absent optional
// fields become NULL columns.
func contactToRow(c models.Contact) contactRow {
	r := contactRow{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Status:    string(c.Status),
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
	}
	if c.Phone != "" {
		r.Phone = &c.Phone
	}
	if c.Company != "" {
		r.Company = &c.Company
	}
	if c.Product != "" {
		r.Product = &c.Product
	}
	if c.Quantity != nil {
		q := c.Quantity.String()
		r.Quantity = &q
	}
	if c.Reply != nil {
		r.ReplyMessage = &c.Reply.Message
		at := c.Reply.RepliedAt
		r.ReplyAt = &at
	}
	if c.Notes != "" {
		r.Notes = &c.Notes
	}
	return r
}

// ContactDBStore persists contacts in the hosted relational store.
type ContactDBStore struct {
	db *gorm.DB
}

// NewContactDBStore returns a contact adapter over db.
func NewContactDBStore(db *gorm.DB) *ContactDBStore {
	return &ContactDBStore{db: db}
}

// AddContact inserts a new inquiry with status "new" and a server-assigned
// identifier and timestamps.
func (s *ContactDBStore) AddContact(in models.ContactInput) (*models.Contact, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	row := contactToRow(models.Contact{
		Status:   models.StatusNew,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Company:  in.Company,
		Product:  in.Product,
		Quantity: in.Quantity,
		Message:  in.Message,
	})
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	rec := contactFromRow(row)
	return &rec, nil
}

// ListContacts returns contacts most-recent-first, optionally filtered by
// status. A zero limit means unbounded.
func (s *ContactDBStore) ListContacts(status *models.ContactStatus, limit, offset int) ([]models.Contact, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	q := s.db.Model(&contactRow{}).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var rows []contactRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	items := make([]models.Contact, 0, len(rows))
	for _, r := range rows {
		items = append(items, contactFromRow(r))
	}
	return items, nil
}

// GetContact returns the contact with the given id, or ErrNotFound.
func (s *ContactDBStore) GetContact(id string) (*models.Contact, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var row contactRow
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	rec := contactFromRow(row)
	return &rec, nil
}

// UpdateContact applies a partial patch. Setting a reply forces the status to
// "replied"; the update timestamp is always refreshed.
func (s *ContactDBStore) UpdateContact(id string, patch models.ContactPatch) (*models.Contact, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Reply != nil {
		updates["status"] = string(models.StatusReplied)
		updates["reply_message"] = patch.Reply.Message
		updates["reply_at"] = patch.Reply.RepliedAt
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	res := s.db.Model(&contactRow{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetContact(id)
}
