package services

import (
	"context"
	"errors"
	"testing"

	"lead-management-api/internal/database"
	"lead-management-api/internal/models"
)

// fakeLeadRepo implements repositories.LeadRepository in memory.
type fakeLeadRepo struct {
	leads       map[string]*models.Lead
	byEmail     map[string]*models.Lead
	byPhone     map[string]*models.Lead
	createErr   error
	createCalls int
	updateCalls int
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{
		leads:   map[string]*models.Lead{},
		byEmail: map[string]*models.Lead{},
		byPhone: map[string]*models.Lead{},
	}
}

func (f *fakeLeadRepo) add(lead *models.Lead) {
	f.leads[lead.ID] = lead
	f.byEmail[lead.Email] = lead
	f.byPhone[lead.Phone] = lead
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.add(lead)
	return nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return lead, nil
}

func (f *fakeLeadRepo) List(ctx context.Context) ([]models.Lead, error) {
	out := make([]models.Lead, 0, len(f.leads))
	for _, l := range f.leads {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeadRepo) Update(ctx context.Context, lead *models.Lead) (map[string]interface{}, error) {
	f.updateCalls++
	return map[string]interface{}{"email": lead.Email}, nil
}

func (f *fakeLeadRepo) FindByEmail(ctx context.Context, email string) (*models.Lead, error) {
	return f.byEmail[email], nil
}

func (f *fakeLeadRepo) FindByPhone(ctx context.Context, phone string) (*models.Lead, error) {
	return f.byPhone[phone], nil
}

// fakeInterestRepo implements repositories.InterestRepository in memory.
type fakeInterestRepo struct {
	interests   map[string]*models.Interest
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeInterestRepo() *fakeInterestRepo {
	return &fakeInterestRepo{interests: map[string]*models.Interest{}}
}

func (f *fakeInterestRepo) Create(ctx context.Context, interest *models.Interest) error {
	f.createCalls++
	f.interests[interest.ID] = interest
	return nil
}

func (f *fakeInterestRepo) Get(ctx context.Context, id, leadID string) (*models.Interest, error) {
	interest, ok := f.interests[id]
	if !ok || interest.LeadID != leadID {
		return nil, database.ErrNotFound
	}
	return interest, nil
}

func (f *fakeInterestRepo) ListByLead(ctx context.Context, leadID string) ([]models.Interest, error) {
	out := []models.Interest{}
	for _, i := range f.interests {
		if i.LeadID == leadID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeInterestRepo) Update(ctx context.Context, id, leadID, message string) (map[string]interface{}, error) {
	f.updateCalls++
	return map[string]interface{}{"message": message}, nil
}

func (f *fakeInterestRepo) Delete(ctx context.Context, id, leadID string) error {
	f.deleteCalls++
	delete(f.interests, id)
	return nil
}

// TestCreateLeadCollectsAllViolations tests that every constraint failure is
// reported at once, keyed by json field name
func TestCreateLeadCollectsAllViolations(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), newFakeInterestRepo())

	_, err := svc.Create(context.Background(), &CreateLeadRequest{
		Email: "not-an-email",
		Phone: "+14155550123",
	})
	if err == nil {
		t.Fatal("Expected a validation error, got nil")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %T", err)
	}
	if len(ve.Violations) != 3 {
		t.Errorf("Expected violations on 3 fields, got %d: %v", len(ve.Violations), ve.Violations)
	}
	if got := ve.Violations["email"]; len(got) != 1 || got[0] != "email is not a valid email" {
		t.Errorf("Unexpected email violation: %v", got)
	}
	if got := ve.Violations["firstName"]; len(got) != 1 || got[0] != "firstName can't be blank" {
		t.Errorf("Unexpected firstName violation: %v", got)
	}
	if got := ve.Violations["lastName"]; len(got) != 1 || got[0] != "lastName can't be blank" {
		t.Errorf("Unexpected lastName violation: %v", got)
	}
}

// TestCreateLeadDuplicateEmail tests that a known email is rejected before
// anything is written
func TestCreateLeadDuplicateEmail(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.add(models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith"))
	svc := NewLeadService(leads, newFakeInterestRepo())

	_, err := svc.Create(context.Background(), &CreateLeadRequest{
		Email:     "jane@example.com",
		Phone:     "+15105550987",
		FirstName: "Janet",
		LastName:  "Smithe",
	})

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
	if ce.Message != models.MsgCreateLeadDuplicate {
		t.Errorf("Expected message '%s', got '%s'", models.MsgCreateLeadDuplicate, ce.Message)
	}
	if leads.createCalls != 0 {
		t.Errorf("Expected no write on a duplicate, got %d create calls", leads.createCalls)
	}
}

// TestCreateLeadDuplicatePhone tests the phone-index pre-check
func TestCreateLeadDuplicatePhone(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.add(models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith"))
	svc := NewLeadService(leads, newFakeInterestRepo())

	_, err := svc.Create(context.Background(), &CreateLeadRequest{
		Email:     "other@example.com",
		Phone:     "+14155550123",
		FirstName: "Other",
		LastName:  "Person",
	})

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
	if leads.createCalls != 0 {
		t.Errorf("Expected no write on a duplicate, got %d create calls", leads.createCalls)
	}
}

// TestCreateLeadStoreConflict tests that a rejected conditional write is
// normalized to the duplicate conflict
func TestCreateLeadStoreConflict(t *testing.T) {
	leads := newFakeLeadRepo()
	leads.createErr = database.ErrConflict
	svc := NewLeadService(leads, newFakeInterestRepo())

	_, err := svc.Create(context.Background(), &CreateLeadRequest{
		Email:     "jane@example.com",
		Phone:     "+14155550123",
		FirstName: "Jane",
		LastName:  "Smith",
	})

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
	if ce.Message != models.MsgCreateLeadDuplicate {
		t.Errorf("Expected message '%s', got '%s'", models.MsgCreateLeadDuplicate, ce.Message)
	}
}

// TestCreateLeadSuccess tests the happy path and id generation
func TestCreateLeadSuccess(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewLeadService(leads, newFakeInterestRepo())

	id, err := svc.Create(context.Background(), &CreateLeadRequest{
		Email:     "jane@example.com",
		Phone:     "+14155550123",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a generated lead id")
	}
	if _, ok := leads.leads[id]; !ok {
		t.Error("Expected the lead to be persisted under the returned id")
	}
}

// TestGetLeadAttachesInterests tests the get-lead join
func TestGetLeadAttachesInterests(t *testing.T) {
	leads := newFakeLeadRepo()
	interests := newFakeInterestRepo()
	lead := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	leads.add(lead)
	interests.Create(context.Background(), models.NewInterest("", lead.ID, "first"))
	interests.Create(context.Background(), models.NewInterest("", lead.ID, "second"))
	interests.Create(context.Background(), models.NewInterest("", "other-lead", "not ours"))

	svc := NewLeadService(leads, interests)
	got, err := svc.Get(context.Background(), &GetLeadRequest{LeadID: lead.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.InterestCount != 2 || len(got.Interests) != 2 {
		t.Errorf("Expected 2 interests attached, got count %d with %d items", got.InterestCount, len(got.Interests))
	}
	if got.Email != "jane@example.com" {
		t.Errorf("Expected the lead record on the payload, got email '%s'", got.Email)
	}
}

// TestGetLeadNotFound tests the not-found classification
func TestGetLeadNotFound(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), newFakeInterestRepo())

	_, err := svc.Get(context.Background(), &GetLeadRequest{LeadID: "missing"})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Entity != "lead" || nf.ID != "missing" {
		t.Errorf("Expected lead/missing, got %s/%s", nf.Entity, nf.ID)
	}
}

// TestUpdateLeadMissing tests that updating an absent lead writes nothing
func TestUpdateLeadMissing(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewLeadService(leads, newFakeInterestRepo())

	_, err := svc.Update(context.Background(), &UpdateLeadRequest{
		LeadID:    "missing",
		Email:     "jane@example.com",
		Phone:     "+14155550123",
		FirstName: "Jane",
		LastName:  "Smith",
	})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if leads.updateCalls != 0 {
		t.Errorf("Expected no update on a missing lead, got %d calls", leads.updateCalls)
	}
}

// TestCreateInterestMissingLead tests the owning-lead reference check
func TestCreateInterestMissingLead(t *testing.T) {
	interests := newFakeInterestRepo()
	svc := NewInterestService(newFakeLeadRepo(), interests)

	_, err := svc.Create(context.Background(), &CreateInterestRequest{
		LeadID:  "missing",
		Message: "hello",
	})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if interests.createCalls != 0 {
		t.Errorf("Expected no interest write for a missing lead, got %d calls", interests.createCalls)
	}
}

// TestCreateInterestSuccess tests the happy path
func TestCreateInterestSuccess(t *testing.T) {
	leads := newFakeLeadRepo()
	lead := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	leads.add(lead)
	interests := newFakeInterestRepo()
	svc := NewInterestService(leads, interests)

	id, err := svc.Create(context.Background(), &CreateInterestRequest{
		LeadID:  lead.ID,
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a generated interest id")
	}
	if interests.interests[id].LeadID != lead.ID {
		t.Error("Expected the interest to reference its owning lead")
	}
}

// TestUpdateInterestMissingInterest tests that a missing interest blocks the
// write instead of upserting
func TestUpdateInterestMissingInterest(t *testing.T) {
	leads := newFakeLeadRepo()
	lead := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	leads.add(lead)
	interests := newFakeInterestRepo()
	svc := NewInterestService(leads, interests)

	_, err := svc.Update(context.Background(), &UpdateInterestRequest{
		LeadID:     lead.ID,
		InterestID: "missing",
		Message:    "updated",
	})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if interests.updateCalls != 0 {
		t.Errorf("Expected no upsert on a missing interest, got %d update calls", interests.updateCalls)
	}
}

// TestDeleteInterest tests delete with its existence check
func TestDeleteInterest(t *testing.T) {
	leads := newFakeLeadRepo()
	lead := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	leads.add(lead)
	interests := newFakeInterestRepo()
	interest := models.NewInterest("", lead.ID, "hello")
	interests.Create(context.Background(), interest)
	svc := NewInterestService(leads, interests)

	err := svc.Delete(context.Background(), &DeleteInterestRequest{
		LeadID:     lead.ID,
		InterestID: interest.ID,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if interests.deleteCalls != 1 {
		t.Errorf("Expected 1 delete call, got %d", interests.deleteCalls)
	}

	// Deleting again must fail with not-found
	err = svc.Delete(context.Background(), &DeleteInterestRequest{
		LeadID:     lead.ID,
		InterestID: interest.ID,
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError on repeat delete, got %v", err)
	}
}

// TestFormSubmitReusesExistingLead tests that a matching email reuses the
// lead and only writes the interest
func TestFormSubmitReusesExistingLead(t *testing.T) {
	leads := newFakeLeadRepo()
	existing := models.NewLead("", "jane@example.com", "+14155550123", "Jane", "Smith")
	leads.add(existing)
	interests := newFakeInterestRepo()
	svc := NewFormService(leads, interests)

	err := svc.Submit(context.Background(), &SubmitLeadFormRequest{
		Email:     "jane@example.com",
		Phone:     "+19995550000",
		FirstName: "Jane",
		LastName:  "Smith",
		Message:   "Please call me",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if leads.createCalls != 0 {
		t.Errorf("Expected no new lead for a known email, got %d create calls", leads.createCalls)
	}
	if interests.createCalls != 1 {
		t.Fatalf("Expected exactly 1 interest write, got %d", interests.createCalls)
	}
	for _, i := range interests.interests {
		if i.LeadID != existing.ID {
			t.Errorf("Expected the interest to reference the existing lead %s, got %s", existing.ID, i.LeadID)
		}
	}
}

// TestFormSubmitCreatesNewLead tests the first-contact path
func TestFormSubmitCreatesNewLead(t *testing.T) {
	leads := newFakeLeadRepo()
	interests := newFakeInterestRepo()
	svc := NewFormService(leads, interests)

	err := svc.Submit(context.Background(), &SubmitLeadFormRequest{
		Email:     "new@example.com",
		Phone:     "+14155550123",
		FirstName: "New",
		LastName:  "Contact",
		Message:   "First contact",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if leads.createCalls != 1 {
		t.Errorf("Expected 1 lead write, got %d", leads.createCalls)
	}
	if interests.createCalls != 1 {
		t.Fatalf("Expected 1 interest write, got %d", interests.createCalls)
	}
	lead := leads.byEmail["new@example.com"]
	if lead == nil {
		t.Fatal("Expected the new lead to be persisted")
	}
	for _, i := range interests.interests {
		if i.LeadID != lead.ID {
			t.Errorf("Expected the interest to reference the new lead %s, got %s", lead.ID, i.LeadID)
		}
	}
}

// TestFormSubmitValidation tests that an incomplete submission writes nothing
func TestFormSubmitValidation(t *testing.T) {
	leads := newFakeLeadRepo()
	interests := newFakeInterestRepo()
	svc := NewFormService(leads, interests)

	err := svc.Submit(context.Background(), &SubmitLeadFormRequest{
		Email: "new@example.com",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if leads.createCalls != 0 || interests.createCalls != 0 {
		t.Error("Expected no writes on a validation failure")
	}
}
