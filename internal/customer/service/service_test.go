package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/customer/domain"
	"github.com/armadalink/backoffice/internal/customer/repository"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/region"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.Customer{},
		&party.Address{},
		&party.Contact{},
		&party.Banking{},
		&regiondomain.Country{},
		&regiondomain.Province{},
		&regiondomain.Regency{},
		&regiondomain.District{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := dbConn.Exec(`CREATE TABLE code_sequences (kind TEXT PRIMARY KEY, last_seq BIGINT NOT NULL DEFAULT 0)`).Error; err != nil {
		t.Fatalf("failed to create sequence table: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{
		DB:         dbConn,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      clock.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		Settings:   config.NewStaticHolder(config.DefaultSettings()),
		Repo:       repository.Provide(),
		RegionRepo: region.NewRepository(dbConn),
	})
	return svc, dbConn, node
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func validCreateRequest() domain.CreateCustomerRequest {
	return domain.CreateCustomerRequest{
		Name: "PT Sinar Jaya",
		Addresses: []party.AddressInput{{
			AddressType:      strPtr("HeadOffice"),
			AddressLine1:     strPtr("Jl. Sudirman 1"),
			CountryCode:      strPtr("ID"),
			ProvinceCode:     strPtr("31"),
			IsPrimaryAddress: boolPtr(true),
		}},
		Contacts: []party.ContactInput{{
			ContactType:      strPtr("Primary"),
			Name:             strPtr("Budi"),
			PhoneNumber:      strPtr("+62811000111"),
			IsPrimaryContact: boolPtr(true),
		}},
	}
}

func TestCreateAllAssignsCodeAndChildren(t *testing.T) {
	svc, _, node := newTestService(t)

	detail, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.Code != "CUST-000001" {
		t.Fatalf("expected CUST-000001, got %s", detail.Code)
	}
	if detail.Status != party.StatusActive {
		t.Fatalf("expected Active default, got %s", detail.Status)
	}
	if len(detail.Addresses) != 1 || len(detail.Contacts) != 1 {
		t.Fatalf("expected 1 address and 1 contact, got %d/%d", len(detail.Addresses), len(detail.Contacts))
	}

	second, err := svc.CreateAll(actorCtx(node), domain.CreateCustomerRequest{Name: "PT Kedua"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Code != "CUST-000002" {
		t.Fatalf("expected CUST-000002, got %s", second.Code)
	}
}

func TestCreateAllRequiresActor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateAll(context.Background(), validCreateRequest())
	if err != domain.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
}

func TestCreateAllInvalidChildRollsBackRoot(t *testing.T) {
	svc, dbConn, node := newTestService(t)

	req := validCreateRequest()
	req.Contacts = []party.ContactInput{{Name: strPtr("No Type")}}

	_, err := svc.CreateAll(actorCtx(node), req)
	if party.AsValidationError(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}

	var count int64
	if err := dbConn.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to leave no customers, got %d", count)
	}
}

func TestCreateAllRejectsInvalidStatus(t *testing.T) {
	svc, _, node := newTestService(t)

	req := validCreateRequest()
	req.Status = strPtr("Dormant")

	_, err := svc.CreateAll(actorCtx(node), req)
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateAllSparsePatchKeepsCode(t *testing.T) {
	svc, _, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateAll(context.Background(), domain.UpdateCustomerRequest{
		ID:   created.ID.String(),
		Code: strPtr("CUST-999999"),
		Name: strPtr("PT Sinar Jaya Abadi"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Code != created.Code {
		t.Fatalf("code must be immutable: got %s, want %s", updated.Code, created.Code)
	}
	if updated.Name != "PT Sinar Jaya Abadi" {
		t.Fatalf("expected patched name, got %s", updated.Name)
	}
	if updated.Status != created.Status {
		t.Fatalf("untouched status changed: %s", updated.Status)
	}
}

func TestUpdateAllPatchesChildByID(t *testing.T) {
	svc, _, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	contactID := created.Contacts[0].ID.String()
	updated, err := svc.UpdateAll(context.Background(), domain.UpdateCustomerRequest{
		ID:       created.ID.String(),
		Contacts: []party.ContactInput{{ID: &contactID, Name: strPtr("Budi Santoso")}},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Contacts[0].Name != "Budi Santoso" {
		t.Fatalf("expected patched contact, got %s", updated.Contacts[0].Name)
	}
	if updated.Contacts[0].PhoneNumber != "+62811000111" {
		t.Fatalf("expected phone untouched, got %s", updated.Contacts[0].PhoneNumber)
	}
}

func TestUpdateAllUnknownChildFails(t *testing.T) {
	svc, _, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	unknown := node.Generate().String()
	_, err = svc.UpdateAll(context.Background(), domain.UpdateCustomerRequest{
		ID:       created.ID.String(),
		Contacts: []party.ContactInput{{ID: &unknown, Name: strPtr("Ghost")}},
	})
	if err != party.ErrChildNotFound {
		t.Fatalf("expected ErrChildNotFound, got %v", err)
	}
}

func TestUpdateAllUnknownRoot(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.UpdateAll(context.Background(), domain.UpdateCustomerRequest{
		ID:   node.Generate().String(),
		Name: strPtr("Nobody"),
	})
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCascadesChildren(t *testing.T) {
	svc, dbConn, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID.String()); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), created.ID.String()); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	var contacts int64
	if err := dbConn.Model(&party.Contact{}).Count(&contacts).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if contacts != 0 {
		t.Fatalf("expected children deleted, found %d contacts", contacts)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, _, node := newTestService(t)

	for _, name := range []string{"PT Alpha", "PT Beta", "CV Alpha Niaga"} {
		if _, err := svc.CreateAll(actorCtx(node), domain.CreateCustomerRequest{Name: name}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	resp, err := svc.List(context.Background(), domain.ListCustomerRequest{Name: "Alpha"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Customers) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(resp.Customers))
	}

	page, err := svc.List(context.Background(), domain.ListCustomerRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if len(page.Customers) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page.Customers))
	}
	if !page.HasMore || page.NextPageToken == "" {
		t.Fatalf("expected a next page, got HasMore=%v token=%q", page.HasMore, page.NextPageToken)
	}

	rest, err := svc.List(context.Background(), domain.ListCustomerRequest{PageSize: 2, PageToken: page.NextPageToken})
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}
	if len(rest.Customers) != 1 {
		t.Fatalf("expected 1 remaining, got %d", len(rest.Customers))
	}
	if rest.HasMore {
		t.Fatal("expected final page")
	}
}

func TestContactFaxIsDropped(t *testing.T) {
	svc, _, node := newTestService(t)

	req := validCreateRequest()
	req.Contacts[0].FaxNumber = strPtr("021-555-0101")

	detail, err := svc.CreateAll(actorCtx(node), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.Contacts[0].FaxNumber != nil {
		t.Fatalf("expected fax dropped for customer contact, got %v", *detail.Contacts[0].FaxNumber)
	}
}

func TestCreateAllConflictsWhenNextCodeTaken(t *testing.T) {
	svc, dbConn, node := newTestService(t)

	// A row already holding the code the counter will hand out next,
	// without the counter ever having moved.
	squatter := domain.Customer{
		ID:        node.Generate(),
		Code:      "CUST-000001",
		Name:      "PT Duluan",
		Status:    party.StatusActive,
		CreatedBy: node.Generate(),
		Metadata:  datatypes.JSONMap{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := dbConn.Create(&squatter).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := svc.CreateAll(actorCtx(node), validCreateRequest())
	if err != domain.ErrCodeConflict {
		t.Fatalf("expected ErrCodeConflict, got %v", err)
	}

	var count int64
	if err := dbConn.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("conflicting create must not persist a row, got %d", count)
	}
}
