package events

import (
	"time"

	"github.com/legalsuite/case-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLawsuitCreated  EventType = "lawsuit_created"
	EventLawsuitAssigned EventType = "lawsuit_assigned"
	EventLawsuitResolved EventType = "lawsuit_resolved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	LawsuitID string      `json:"lawsuit_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LawsuitCreatedPayload payload.
type LawsuitCreatedPayload struct {
	CaseNumber string               `json:"case_number"`
	CaseType   domain.CaseType      `json:"case_type"`
	Status     domain.LawsuitStatus `json:"status"`
}

// LawsuitAssignedPayload payload.
type LawsuitAssignedPayload struct {
	LawyerID string `json:"lawyer_id"`
}

// LawsuitResolvedPayload payload.
type LawsuitResolvedPayload struct {
	LawyerID *string `json:"lawyer_id,omitempty"`
}
