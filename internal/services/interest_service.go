package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
	"lead-management-api/internal/repositories"
)

// interestService implements the InterestService interface
type interestService struct {
	leads     repositories.LeadRepository
	interests repositories.InterestRepository
	validate  *validator.Validate
}

// NewInterestService creates a new interest service instance
func NewInterestService(leads repositories.LeadRepository, interests repositories.InterestRepository) InterestService {
	return &interestService{
		leads:     leads,
		interests: interests,
		validate:  newValidator(),
	}
}

// leadExists reads the owning lead, translating a storage miss into a
// not-found failure. The store itself does not enforce the reference.
func (s *interestService) leadExists(ctx context.Context, leadID string) error {
	if _, err := s.leads.GetByID(ctx, leadID); err != nil {
		if database.IsNotFound(err) {
			return &NotFoundError{Entity: "lead", ID: leadID}
		}
		return err
	}
	return nil
}

// Create validates the payload and the owning lead concurrently, then
// inserts the interest row.
func (s *interestService) Create(ctx context.Context, req *CreateInterestRequest) (string, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return checkRequest(s.validate, req)
	})
	g.Go(func() error {
		return s.leadExists(gctx, req.LeadID)
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	interest := models.NewInterest("", req.LeadID, req.Message)
	if err := s.interests.Create(ctx, interest); err != nil {
		return "", err
	}
	return interest.ID, nil
}

// Get fetches an interest by its composite key.
func (s *interestService) Get(ctx context.Context, req *GetInterestRequest) (*models.Interest, error) {
	if err := checkRequest(s.validate, req); err != nil {
		return nil, err
	}

	interest, err := s.interests.Get(ctx, req.InterestID, req.LeadID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, &NotFoundError{Entity: "interest", ID: req.InterestID}
		}
		return nil, err
	}
	return interest, nil
}

// Update rewrites the interest message. Validation, the owning-lead check
// and the interest existence check are independent reads joined before the
// write; without the existence check the store would silently upsert.
func (s *interestService) Update(ctx context.Context, req *UpdateInterestRequest) (map[string]interface{}, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return checkRequest(s.validate, req)
	})
	g.Go(func() error {
		return s.leadExists(gctx, req.LeadID)
	})
	g.Go(func() error {
		if _, err := s.interests.Get(gctx, req.InterestID, req.LeadID); err != nil {
			if database.IsNotFound(err) {
				return &NotFoundError{Entity: "interest", ID: req.InterestID}
			}
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.interests.Update(ctx, req.InterestID, req.LeadID, req.Message)
}

// Delete removes an interest by its composite key, failing with not-found
// when it does not exist.
func (s *interestService) Delete(ctx context.Context, req *DeleteInterestRequest) error {
	if err := checkRequest(s.validate, req); err != nil {
		return err
	}

	if _, err := s.interests.Get(ctx, req.InterestID, req.LeadID); err != nil {
		if database.IsNotFound(err) {
			return &NotFoundError{Entity: "interest", ID: req.InterestID}
		}
		return err
	}

	return s.interests.Delete(ctx, req.InterestID, req.LeadID)
}
