package models

import (
	"time"

	"github.com/google/uuid"
)

// Interest is a note or request attached to a lead. Its identity is the
// (id, leadId) composite; the owning lead is looked up through the lead
// index. The lead reference is not enforced by the store itself, callers
// check it with a prior existence read.
type Interest struct {
	ID        string `json:"id" dynamodbav:"id"`
	LeadID    string `json:"leadId" dynamodbav:"leadId"`
	Message   string `json:"message" dynamodbav:"message"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt int64  `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewInterest creates an interest record from a validated payload,
// generating an identifier when none is supplied.
func NewInterest(id, leadID, message string) *Interest {
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UnixMilli()
	return &Interest{
		ID:        id,
		LeadID:    leadID,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (i *Interest) Touch() {
	i.UpdatedAt = time.Now().UnixMilli()
}
