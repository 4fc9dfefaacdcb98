package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
	"lead-management-api/internal/repositories"
)

// leadService implements the LeadService interface
type leadService struct {
	leads     repositories.LeadRepository
	interests repositories.InterestRepository
	validate  *validator.Validate
}

// NewLeadService creates a new lead service instance
func NewLeadService(leads repositories.LeadRepository, interests repositories.InterestRepository) LeadService {
	return &leadService{
		leads:     leads,
		interests: interests,
		validate:  newValidator(),
	}
}

// Create validates the payload, checks both uniqueness indexes, and inserts
// the lead under a conditional write. A duplicate email or phone is a hard
// conflict and persists nothing.
func (s *leadService) Create(ctx context.Context, req *CreateLeadRequest) (string, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return "", err
	}

	// Both index lookups are independent, issue them concurrently.
	var byEmail, byPhone *models.Lead
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byEmail, err = s.leads.FindByEmail(gctx, req.Email)
		return err
	})
	g.Go(func() error {
		var err error
		byPhone, err = s.leads.FindByPhone(gctx, req.Phone)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	if byEmail != nil || byPhone != nil {
		return "", &ConflictError{Message: models.MsgCreateLeadDuplicate}
	}

	lead := models.NewLead(req.ID, req.Email, req.Phone, req.FirstName, req.LastName)
	if err := s.leads.Create(ctx, lead); err != nil {
		if database.IsConflict(err) {
			return "", &ConflictError{Message: models.MsgCreateLeadDuplicate}
		}
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"lead_id": lead.ID,
		"email":   lead.Email,
	}).Info("Lead created")

	return lead.ID, nil
}

// Get fetches a lead and attaches its interests from the lead index.
func (s *leadService) Get(ctx context.Context, req *GetLeadRequest) (*models.LeadWithInterests, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	lead, err := s.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, &NotFoundError{Entity: "lead", ID: req.LeadID}
		}
		return nil, err
	}

	interests, err := s.interests.ListByLead(ctx, req.LeadID)
	if err != nil {
		return nil, err
	}

	return &models.LeadWithInterests{
		Lead:          *lead,
		InterestCount: len(interests),
		Interests:     interests,
	}, nil
}

// List returns every lead via a full table scan.
func (s *leadService) List(ctx context.Context) ([]models.Lead, error) {
	return s.leads.List(ctx)
}

// Update rewrites the lead's attributes after checking it exists. The
// existence read and the constraint validation are independent and run
// concurrently.
func (s *leadService) Update(ctx context.Context, req *UpdateLeadRequest) (map[string]interface{}, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return checkRequest(s.validate, req)
	})
	g.Go(func() error {
		if _, err := s.leads.GetByID(gctx, req.LeadID); err != nil {
			if database.IsNotFound(err) {
				return &NotFoundError{Entity: "lead", ID: req.LeadID}
			}
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		ID:        req.LeadID,
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	return s.leads.Update(ctx, lead)
}
