package domain

import "time"

// LawsuitStatus enumerates lifecycle states for lawsuits.
//
// The lifecycle is pending -> assigned -> resolved. Resolved is terminal;
// no operation may move a lawsuit backwards.
type LawsuitStatus string

const (
	LawsuitStatusPending  LawsuitStatus = "pending"
	LawsuitStatusAssigned LawsuitStatus = "assigned"
	LawsuitStatusResolved LawsuitStatus = "resolved"
)

// CaseType enumerates the areas of law a lawsuit belongs to.
type CaseType string

const (
	CaseTypeCivil      CaseType = "civil"
	CaseTypeCriminal   CaseType = "criminal"
	CaseTypeLabor      CaseType = "labor"
	CaseTypeCommercial CaseType = "commercial"
)

// Lawsuit is the aggregate for a tracked legal case.
//
// Invariant: Status == assigned exactly when LawyerID is non-nil. Both fields
// are only ever written together through LawsuitRepository.AssignLawyer or at
// creation after the coupling has been validated.
type Lawsuit struct {
	ID         string
	CaseNumber string
	Plaintiff  string
	Defendant  string
	CaseType   CaseType
	Status     LawsuitStatus
	LawyerID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
