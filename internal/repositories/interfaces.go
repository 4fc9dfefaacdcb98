package repositories

import (
	"context"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
)

// Secondary index names on the two tables.
const (
	EmailIndex = "email_index"
	PhoneIndex = "phone_index"
	LeadIndex  = "lead_index"
)

// Store is the storage accessor the repositories run on. It is satisfied by
// *database.Client; tests substitute a fake.
type Store interface {
	GetItem(ctx context.Context, table string, key database.Item) (database.Item, error)
	Query(ctx context.Context, table, index, keyCondition string, values database.Item) ([]database.Item, int32, error)
	Create(ctx context.Context, table string, item database.Item, condition string, names map[string]string) error
	Update(ctx context.Context, table string, key database.Item, expression string, values database.Item) (database.Item, error)
	Delete(ctx context.Context, table string, key database.Item) error
	Scan(ctx context.Context, table string) ([]database.Item, error)
}

// LeadRepository persists lead records.
type LeadRepository interface {
	// Create inserts a lead under a condition that rejects duplicate email
	// or phone attributes; a rejected write surfaces as a conflict.
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context) ([]models.Lead, error)
	// Update mutates the lead's attributes and returns the new values of the
	// updated attributes. Callers check existence first; the store would
	// otherwise upsert.
	Update(ctx context.Context, lead *models.Lead) (map[string]interface{}, error)
	// FindByEmail and FindByPhone query the secondary indexes and return
	// nil without error when no lead matches.
	FindByEmail(ctx context.Context, email string) (*models.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*models.Lead, error)
}

// InterestRepository persists interest records keyed by (id, leadId).
type InterestRepository interface {
	Create(ctx context.Context, interest *models.Interest) error
	Get(ctx context.Context, id, leadID string) (*models.Interest, error)
	ListByLead(ctx context.Context, leadID string) ([]models.Interest, error)
	Update(ctx context.Context, id, leadID, message string) (map[string]interface{}, error)
	Delete(ctx context.Context, id, leadID string) error
}
