package repositories

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
)

// fakeStore implements Store with canned results and call recording.
type fakeStore struct {
	getItem   database.Item
	getErr    error
	queryOut  []database.Item
	queryErr  error
	createErr error
	updateOut database.Item
	updateErr error
	deleteErr error
	scanOut   []database.Item
	scanErr   error

	lastTable     string
	lastIndex     string
	lastCondition string
	lastNames     map[string]string
	lastExpr      string
	lastItem      database.Item
	lastKey       database.Item
}

func (f *fakeStore) GetItem(ctx context.Context, table string, key database.Item) (database.Item, error) {
	f.lastTable, f.lastKey = table, key
	return f.getItem, f.getErr
}

func (f *fakeStore) Query(ctx context.Context, table, index, keyCondition string, values database.Item) ([]database.Item, int32, error) {
	f.lastTable, f.lastIndex, f.lastCondition = table, index, keyCondition
	return f.queryOut, int32(len(f.queryOut)), f.queryErr
}

func (f *fakeStore) Create(ctx context.Context, table string, item database.Item, condition string, names map[string]string) error {
	f.lastTable, f.lastItem, f.lastCondition, f.lastNames = table, item, condition, names
	return f.createErr
}

func (f *fakeStore) Update(ctx context.Context, table string, key database.Item, expression string, values database.Item) (database.Item, error) {
	f.lastTable, f.lastKey, f.lastExpr = table, key, expression
	return f.updateOut, f.updateErr
}

func (f *fakeStore) Delete(ctx context.Context, table string, key database.Item) error {
	f.lastTable, f.lastKey = table, key
	return f.deleteErr
}

func (f *fakeStore) Scan(ctx context.Context, table string) ([]database.Item, error) {
	f.lastTable = table
	return f.scanOut, f.scanErr
}

func stringAttr(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}

// TestLeadCreateCondition tests that inserts carry the uniqueness condition
func TestLeadCreateCondition(t *testing.T) {
	store := &fakeStore{}
	repo := NewLeadRepository(store, "leads")

	lead := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	if err := repo.Create(context.Background(), lead); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if store.lastTable != "leads" {
		t.Errorf("Expected table 'leads', got '%s'", store.lastTable)
	}
	want := "attribute_not_exists(#email) AND attribute_not_exists(#phone)"
	if store.lastCondition != want {
		t.Errorf("Expected condition '%s', got '%s'", want, store.lastCondition)
	}
	if store.lastNames["#email"] != "email" || store.lastNames["#phone"] != "phone" {
		t.Errorf("Expected attribute name substitutions for email and phone, got %v", store.lastNames)
	}
	if store.lastItem["id"].(*types.AttributeValueMemberS).Value != lead.ID {
		t.Error("Expected the marshaled lead to carry its id")
	}
}

// TestLeadFindByIndexMiss tests that an empty index query returns nil, nil
func TestLeadFindByIndexMiss(t *testing.T) {
	store := &fakeStore{}
	repo := NewLeadRepository(store, "leads")

	lead, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lead != nil {
		t.Errorf("Expected nil lead on an index miss, got %+v", lead)
	}
	if store.lastIndex != EmailIndex {
		t.Errorf("Expected query on '%s', got '%s'", EmailIndex, store.lastIndex)
	}
}

// TestLeadFindByIndexHit tests unmarshaling the first index match
func TestLeadFindByIndexHit(t *testing.T) {
	store := &fakeStore{queryOut: []database.Item{{
		"id":    stringAttr("lead-1"),
		"phone": stringAttr("+14155550123"),
	}}}
	repo := NewLeadRepository(store, "leads")

	lead, err := repo.FindByPhone(context.Background(), "+14155550123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if lead == nil || lead.ID != "lead-1" {
		t.Errorf("Expected lead-1 from the phone index, got %+v", lead)
	}
	if store.lastIndex != PhoneIndex {
		t.Errorf("Expected query on '%s', got '%s'", PhoneIndex, store.lastIndex)
	}
}

// TestLeadUpdateExpression tests the update expression and timestamp stamping
func TestLeadUpdateExpression(t *testing.T) {
	store := &fakeStore{updateOut: database.Item{
		"email": stringAttr("new@example.com"),
	}}
	repo := NewLeadRepository(store, "leads")

	lead := &models.Lead{ID: "lead-1", Email: "new@example.com", Phone: "+1", FirstName: "Jane", LastName: "Smith"}
	attrs, err := repo.Update(context.Background(), lead)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "SET email = :email, phone = :phone, firstName = :firstName, lastName = :lastName, updatedAt = :updatedAt"
	if store.lastExpr != want {
		t.Errorf("Expected expression '%s', got '%s'", want, store.lastExpr)
	}
	if lead.UpdatedAt == 0 {
		t.Error("Expected the update to stamp updatedAt")
	}
	if attrs["email"] != "new@example.com" {
		t.Errorf("Expected updated attributes to round-trip, got %v", attrs)
	}
}

// TestInterestCompositeKey tests the (id, leadId) key shape
func TestInterestCompositeKey(t *testing.T) {
	store := &fakeStore{getItem: database.Item{
		"id":     stringAttr("int-1"),
		"leadId": stringAttr("lead-1"),
	}}
	repo := NewInterestRepository(store, "interests")

	interest, err := repo.Get(context.Background(), "int-1", "lead-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if interest.ID != "int-1" || interest.LeadID != "lead-1" {
		t.Errorf("Expected interest int-1 for lead-1, got %+v", interest)
	}
	if store.lastKey["id"].(*types.AttributeValueMemberS).Value != "int-1" {
		t.Error("Expected the id half of the composite key")
	}
	if store.lastKey["leadId"].(*types.AttributeValueMemberS).Value != "lead-1" {
		t.Error("Expected the leadId half of the composite key")
	}
}

// TestInterestCreateUnconditional tests that interest inserts carry no condition
func TestInterestCreateUnconditional(t *testing.T) {
	store := &fakeStore{}
	repo := NewInterestRepository(store, "interests")

	interest := models.NewInterest("", "lead-1", "hello")
	if err := repo.Create(context.Background(), interest); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.lastCondition != "" {
		t.Errorf("Expected no condition on interest insert, got '%s'", store.lastCondition)
	}
}

// TestInterestListByLead tests the lead-index query
func TestInterestListByLead(t *testing.T) {
	store := &fakeStore{queryOut: []database.Item{
		{"id": stringAttr("int-1"), "leadId": stringAttr("lead-1")},
		{"id": stringAttr("int-2"), "leadId": stringAttr("lead-1")},
	}}
	repo := NewInterestRepository(store, "interests")

	interests, err := repo.ListByLead(context.Background(), "lead-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(interests) != 2 {
		t.Errorf("Expected 2 interests, got %d", len(interests))
	}
	if store.lastIndex != LeadIndex {
		t.Errorf("Expected query on '%s', got '%s'", LeadIndex, store.lastIndex)
	}
	if store.lastCondition != "leadId = :leadId" {
		t.Errorf("Unexpected key condition: '%s'", store.lastCondition)
	}
}

// TestInterestUpdateExpression tests the message rewrite expression
func TestInterestUpdateExpression(t *testing.T) {
	store := &fakeStore{updateOut: database.Item{"message": stringAttr("updated")}}
	repo := NewInterestRepository(store, "interests")

	attrs, err := repo.Update(context.Background(), "int-1", "lead-1", "updated")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.lastExpr != "SET message = :message, updatedAt = :updatedAt" {
		t.Errorf("Unexpected expression: '%s'", store.lastExpr)
	}
	if attrs["message"] != "updated" {
		t.Errorf("Expected updated attributes to round-trip, got %v", attrs)
	}
}
