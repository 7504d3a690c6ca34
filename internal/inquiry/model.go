// Package inquiry stores and validates contact form submissions.
package inquiry

import "time"

// Inquiry is a contact request left on the website.
type Inquiry struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	PropertyID *int64    `json:"property_id,omitempty"`
	Lang       string    `json:"lang"`
	RemoteIP   string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Notification records one attempt to e-mail an inquiry to the office.
type Notification struct {
	ID        int64     `json:"id"`
	InquiryID int64     `json:"inquiry_id"`
	Recipient string    `json:"recipient"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
