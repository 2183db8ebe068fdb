package domain

import "time"

// LawyerStatus represents lifecycle states for a lawyer.
type LawyerStatus string

const (
	LawyerStatusActive   LawyerStatus = "active"
	LawyerStatusInactive LawyerStatus = "inactive"
)

// Lawyer is an attorney who may be assigned to zero or more lawsuits.
type Lawyer struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Specialization string
	Status         LawyerStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Active reports whether the lawyer can take new assignments.
func (l *Lawyer) Active() bool {
	return l != nil && l.Status == LawyerStatusActive
}
