package events

import (
	"time"

	"github.com/goldenpays/consultancy-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInquirySubmitted     EventType = "inquiry_submitted"
	EventInquiryStatusChanged EventType = "inquiry_status_changed"
	EventInquiryDeleted       EventType = "inquiry_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	InquiryID string      `json:"inquiry_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// InquirySubmittedPayload carries a copy of the stored inquiry.
type InquirySubmittedPayload struct {
	Inquiry domain.Inquiry `json:"inquiry"`
}

// InquiryStatusChangedPayload payload.
type InquiryStatusChangedPayload struct {
	OldStatus domain.InquiryStatus `json:"old_status"`
	NewStatus domain.InquiryStatus `json:"new_status"`
}
