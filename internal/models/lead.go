package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead represents a prospective customer record. Email and phone are each
// unique across all leads; uniqueness is enforced at creation time.
type Lead struct {
	ID        string `json:"id" dynamodbav:"id"`
	Email     string `json:"email" dynamodbav:"email"`
	Phone     string `json:"phone" dynamodbav:"phone"`
	FirstName string `json:"firstName" dynamodbav:"firstName"`
	LastName  string `json:"lastName" dynamodbav:"lastName"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewLead creates a lead record from a validated payload. A fresh identifier
// is generated when none is supplied, and both timestamps are stamped with
// the same creation instant in milliseconds since epoch.
func NewLead(id, email, phone, firstName, lastName string) *Lead {
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UnixMilli()
	return &Lead{
		ID:        id,
		Email:     email,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (l *Lead) Touch() {
	l.UpdatedAt = time.Now().UnixMilli()
}

// LeadWithInterests is the get-lead payload: the lead record with its
// interests attached via the lead index.
type LeadWithInterests struct {
	Lead
	InterestCount int        `json:"interestCount"`
	Interests     []Interest `json:"interests"`
}
