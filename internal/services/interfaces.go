package services

import (
	"context"

	"lead-management-api/internal/models"
)

// CreateLeadRequest is the create-lead payload. A supplied id is echoed
// into the record; unknown fields are dropped by the JSON binding.
type CreateLeadRequest struct {
	ID        string `json:"id" validate:"omitempty,uuid4"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// GetLeadRequest identifies a single lead.
type GetLeadRequest struct {
	LeadID string `json:"leadId" validate:"required"`
}

// UpdateLeadRequest is the update-lead payload; every field is rewritten.
type UpdateLeadRequest struct {
	LeadID    string `json:"leadId" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// CreateInterestRequest attaches a new interest to an existing lead.
type CreateInterestRequest struct {
	LeadID  string `json:"leadId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// GetInterestRequest identifies an interest by its composite key.
type GetInterestRequest struct {
	LeadID     string `json:"leadId" validate:"required"`
	InterestID string `json:"interestId" validate:"required"`
}

// UpdateInterestRequest rewrites an interest's message.
type UpdateInterestRequest struct {
	LeadID     string `json:"leadId" validate:"required"`
	InterestID string `json:"interestId" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// DeleteInterestRequest identifies an interest to remove.
type DeleteInterestRequest struct {
	LeadID     string `json:"leadId" validate:"required"`
	InterestID string `json:"interestId" validate:"required"`
}

// SubmitLeadFormRequest is the public lead-capture payload.
type SubmitLeadFormRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// LeadService runs the lead pipelines: validate, pre-check, persist.
type LeadService interface {
	Create(ctx context.Context, req *CreateLeadRequest) (string, error)
	Get(ctx context.Context, req *GetLeadRequest) (*models.LeadWithInterests, error)
	List(ctx context.Context) ([]models.Lead, error)
	Update(ctx context.Context, req *UpdateLeadRequest) (map[string]interface{}, error)
}

// InterestService runs the interest pipelines.
type InterestService interface {
	Create(ctx context.Context, req *CreateInterestRequest) (string, error)
	Get(ctx context.Context, req *GetInterestRequest) (*models.Interest, error)
	Update(ctx context.Context, req *UpdateInterestRequest) (map[string]interface{}, error)
	Delete(ctx context.Context, req *DeleteInterestRequest) error
}

// FormService handles the public lead-capture submission.
type FormService interface {
	Submit(ctx context.Context, req *SubmitLeadFormRequest) error
}
