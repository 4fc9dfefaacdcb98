package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
)

// interestRepository implements InterestRepository on the DynamoDB accessor
type interestRepository struct {
	db    Store
	table string
}

// NewInterestRepository creates an interest repository over the given table.
func NewInterestRepository(db Store, table string) InterestRepository {
	return &interestRepository{db: db, table: table}
}

// interestKey builds the composite key for an interest.
func interestKey(id, leadID string) database.Item {
	return database.Item{
		"id":     &types.AttributeValueMemberS{Value: id},
		"leadId": &types.AttributeValueMemberS{Value: leadID},
	}
}

// Create inserts an interest row. The owning lead is checked by the caller;
// the store does not enforce the reference.
func (r *interestRepository) Create(ctx context.Context, interest *models.Interest) error {
	item, err := attributevalue.MarshalMap(interest)
	if err != nil {
		return fmt.Errorf("failed to marshal interest: %w", err)
	}
	return r.db.Create(ctx, r.table, item, "", nil)
}

// Get fetches an interest by its (id, leadId) composite key.
func (r *interestRepository) Get(ctx context.Context, id, leadID string) (*models.Interest, error) {
	item, err := r.db.GetItem(ctx, r.table, interestKey(id, leadID))
	if err != nil {
		return nil, err
	}

	var interest models.Interest
	if err := attributevalue.UnmarshalMap(item, &interest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interest %s: %w", id, err)
	}
	return &interest, nil
}

// ListByLead queries the lead index for every interest owned by a lead.
func (r *interestRepository) ListByLead(ctx context.Context, leadID string) ([]models.Interest, error) {
	items, _, err := r.db.Query(ctx, r.table, LeadIndex, "leadId = :leadId", database.Item{
		":leadId": &types.AttributeValueMemberS{Value: leadID},
	})
	if err != nil {
		return nil, err
	}

	interests := make([]models.Interest, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &interests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interests: %w", err)
	}
	return interests, nil
}

// Update rewrites the message and stamps updatedAt, returning the new
// attribute values. Callers check the owning lead first.
func (r *interestRepository) Update(ctx context.Context, id, leadID, message string) (map[string]interface{}, error) {
	values, err := attributevalue.MarshalMap(map[string]interface{}{
		":message":   message,
		":updatedAt": time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal interest update: %w", err)
	}

	expression := "SET message = :message, updatedAt = :updatedAt"
	attrs, err := r.db.Update(ctx, r.table, interestKey(id, leadID), expression, values)
	if err != nil {
		return nil, err
	}

	updated := map[string]interface{}{}
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated attributes: %w", err)
	}
	return updated, nil
}

// Delete removes an interest by its composite key.
func (r *interestRepository) Delete(ctx context.Context, id, leadID string) error {
	return r.db.Delete(ctx, r.table, interestKey(id, leadID))
}
