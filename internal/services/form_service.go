package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"lead-management-api/internal/models"
	"lead-management-api/internal/repositories"
)

// formService implements the FormService interface
type formService struct {
	leads     repositories.LeadRepository
	interests repositories.InterestRepository
	validate  *validator.Validate
}

// NewFormService creates a new form service instance
func NewFormService(leads repositories.LeadRepository, interests repositories.InterestRepository) FormService {
	return &formService{
		leads:     leads,
		interests: interests,
		validate:  newValidator(),
	}
}

// Submit captures a public lead-form submission. A lead matching the email
// or phone is reused rather than rejected, so repeat submissions are
// idempotent on the lead; the interest row is written every time. The two
// writes are not transactional: a failure after the lead insert leaves a
// lead with no interest.
func (s *formService) Submit(ctx context.Context, req *SubmitLeadFormRequest) error {
	if err := checkRequest(s.validate, req); err != nil {
		return err
	}

	form := models.NewLeadForm("", req.Email, req.Phone, req.FirstName, req.LastName, req.Message)

	existing, err := s.leads.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing == nil {
		existing, err = s.leads.FindByPhone(ctx, req.Phone)
		if err != nil {
			return err
		}
	}

	leadID := form.ID
	if existing != nil {
		leadID = existing.ID
	} else {
		if err := s.leads.Create(ctx, &form.Lead); err != nil {
			return err
		}
	}

	if err := s.interests.Create(ctx, form.Interest(leadID)); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"lead_id": leadID,
		"reused":  existing != nil,
	}).Info("Lead form submitted")

	return nil
}
