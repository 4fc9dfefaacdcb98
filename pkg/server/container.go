package server

import (
	"context"
	"fmt"

	"lead-management-api/internal/config"
	"lead-management-api/internal/database"
	"lead-management-api/internal/middleware"
	"lead-management-api/internal/repositories"
	"lead-management-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	LeadService     services.LeadService
	InterestService services.InterestService
	FormService     services.FormService
	AuthService     *middleware.AuthService
}

// NewContainer creates a new dependency injection container. The same
// wiring backs both the HTTP server and the Lambda entrypoints.
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	leadRepo := repositories.NewLeadRepository(db, cfg.Tables.Leads)
	interestRepo := repositories.NewInterestRepository(db, cfg.Tables.Interests)

	return &Container{
		Config:          cfg,
		LeadService:     services.NewLeadService(leadRepo, interestRepo),
		InterestService: services.NewInterestService(leadRepo, interestRepo),
		FormService:     services.NewFormService(leadRepo, interestRepo),
		AuthService:     middleware.NewAuthService(&cfg.Auth),
	}, nil
}

// Close cleans up all resources. The DynamoDB client holds no persistent
// connections, so there is nothing to release yet.
func (c *Container) Close() error {
	return nil
}
