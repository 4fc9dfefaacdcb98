package repositories

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
)

// leadRepository implements LeadRepository on the DynamoDB accessor
type leadRepository struct {
	db    Store
	table string
}

// NewLeadRepository creates a lead repository over the given table.
func NewLeadRepository(db Store, table string) LeadRepository {
	return &leadRepository{db: db, table: table}
}

// leadKey builds the primary key for a lead id.
func leadKey(id string) database.Item {
	return database.Item{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Create inserts the lead with a conditional expression so the store rejects
// an item carrying an already-present email or phone attribute.
func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	item, err := attributevalue.MarshalMap(lead)
	if err != nil {
		return fmt.Errorf("failed to marshal lead: %w", err)
	}

	condition := "attribute_not_exists(#email) AND attribute_not_exists(#phone)"
	names := map[string]string{
		"#email": "email",
		"#phone": "phone",
	}

	return r.db.Create(ctx, r.table, item, condition, names)
}

// GetByID fetches a lead by its primary key.
func (r *leadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	item, err := r.db.GetItem(ctx, r.table, leadKey(id))
	if err != nil {
		return nil, err
	}

	var lead models.Lead
	if err := attributevalue.UnmarshalMap(item, &lead); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lead %s: %w", id, err)
	}
	return &lead, nil
}

// List returns every lead in the table. No pagination; the table is expected
// to stay small.
func (r *leadRepository) List(ctx context.Context) ([]models.Lead, error) {
	items, err := r.db.Scan(ctx, r.table)
	if err != nil {
		return nil, err
	}

	leads := make([]models.Lead, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &leads); err != nil {
		return nil, fmt.Errorf("failed to unmarshal leads: %w", err)
	}
	return leads, nil
}

// Update rewrites the lead's mutable attributes and stamps updatedAt,
// returning the new attribute values.
func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) (map[string]interface{}, error) {
	lead.Touch()

	values, err := attributevalue.MarshalMap(map[string]interface{}{
		":email":     lead.Email,
		":phone":     lead.Phone,
		":firstName": lead.FirstName,
		":lastName":  lead.LastName,
		":updatedAt": lead.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead update: %w", err)
	}

	expression := "SET email = :email, phone = :phone, firstName = :firstName, lastName = :lastName, updatedAt = :updatedAt"
	attrs, err := r.db.Update(ctx, r.table, leadKey(lead.ID), expression, values)
	if err != nil {
		return nil, err
	}

	updated := map[string]interface{}{}
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated attributes: %w", err)
	}
	return updated, nil
}

// FindByEmail queries the email index. A miss returns nil, nil.
func (r *leadRepository) FindByEmail(ctx context.Context, email string) (*models.Lead, error) {
	return r.findByIndex(ctx, EmailIndex, "email = :email", database.Item{
		":email": &types.AttributeValueMemberS{Value: email},
	})
}

// FindByPhone queries the phone index. A miss returns nil, nil.
func (r *leadRepository) FindByPhone(ctx context.Context, phone string) (*models.Lead, error) {
	return r.findByIndex(ctx, PhoneIndex, "phone = :phone", database.Item{
		":phone": &types.AttributeValueMemberS{Value: phone},
	})
}

func (r *leadRepository) findByIndex(ctx context.Context, index, keyCondition string, values database.Item) (*models.Lead, error) {
	items, count, err := r.db.Query(ctx, r.table, index, keyCondition, values)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var lead models.Lead
	if err := attributevalue.UnmarshalMap(items[0], &lead); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lead: %w", err)
	}
	return &lead, nil
}
