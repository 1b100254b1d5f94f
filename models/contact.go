package models

import "time"

// ContactStatus is the workflow state of a submitted inquiry.
type ContactStatus string

const (
	StatusNew        ContactStatus = "new"
	StatusInProgress ContactStatus = "in_progress"
	StatusClosed     ContactStatus = "closed"
	StatusReplied    ContactStatus = "replied"
)

// Valid reports whether s is one of the recognized statuses.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClosed, StatusReplied:
		return true
	}
	return false
}

// Reply is the owner's answer attached to a contact.
type Reply struct {
	Message   string    `json:"message"`
	RepliedAt time.Time `json:"repliedAt"`
}

// Contact represents a submitted inquiry (quote request) from the site's
// contact form. The ID is assigned at creation and never changes.
type Contact struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Status    ContactStatus `json:"status"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Company   string        `json:"company,omitempty"`
	Product   string        `json:"product,omitempty"`
	Quantity  *Quantity     `json:"quantity,omitempty"`
	Message   string        `json:"message"`
	Reply     *Reply        `json:"reply,omitempty"`
	Notes     string        `json:"notes,omitempty"`
}

// ContactInput is the request body for POST /api/contact.
type ContactInput struct {
	Name     string    `json:"name" binding:"required,min=2"`
	Email    string    `json:"email" binding:"required,email"`
	Phone    string    `json:"phone"`
	Company  string    `json:"company"`
	Product  string    `json:"product"`
	Quantity *Quantity `json:"quantity"`
	Message  string    `json:"message" binding:"required,min=10"`
}

// ContactPatch is a partial update applied by the admin endpoints. Nil fields
// are left untouched.
type ContactPatch struct {
	Status *ContactStatus
	Reply  *Reply
	Notes  *string
}
