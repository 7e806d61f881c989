package service

import (
	"context"
	"testing"
	"time"

	"github.com/armadalink/backoffice/internal/actorcontext"
	"github.com/armadalink/backoffice/internal/clock"
	"github.com/armadalink/backoffice/internal/config"
	"github.com/armadalink/backoffice/internal/party"
	"github.com/armadalink/backoffice/internal/region"
	regiondomain "github.com/armadalink/backoffice/internal/region/domain"
	"github.com/armadalink/backoffice/internal/vendors/domain"
	"github.com/armadalink/backoffice/internal/vendors/repository"
	"github.com/armadalink/backoffice/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestService(t *testing.T) (domain.Service, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.Vendor{},
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
	return svc, node
}

func actorCtx(node *snowflake.Node) context.Context {
	return actorcontext.WithActorID(context.Background(), node.Generate())
}

func TestCreateAllWithBankings(t *testing.T) {
	svc, node := newTestService(t)

	detail, err := svc.CreateAll(actorCtx(node), domain.CreateVendorRequest{
		Name:         "PT Angkutan Nusantara",
		PaymentTerms: strPtr("NET30"),
		Bankings: []party.BankingInput{{
			BankingNumber:          strPtr("1234567890"),
			BankingName:            strPtr("PT Angkutan Nusantara"),
			BankingBank:            strPtr("BCA"),
			BankingBranch:          strPtr("KCP Sudirman"),
			IsPrimaryBankingNumber: boolPtr(true),
		}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.Code != "VEND-000001" {
		t.Fatalf("expected VEND-000001, got %s", detail.Code)
	}
	if len(detail.Bankings) != 1 {
		t.Fatalf("expected 1 banking, got %d", len(detail.Bankings))
	}
	if detail.Bankings[0].BankingBank != party.BankBCA {
		t.Fatalf("expected BCA, got %s", detail.Bankings[0].BankingBank)
	}
}

func TestCreateAllKeepsContactFax(t *testing.T) {
	svc, node := newTestService(t)

	detail, err := svc.CreateAll(actorCtx(node), domain.CreateVendorRequest{
		Name: "PT Armada Laju",
		Contacts: []party.ContactInput{{
			ContactType:      strPtr("Primary"),
			Name:             strPtr("Dewi"),
			PhoneNumber:      strPtr("+62811000333"),
			FaxNumber:        strPtr("021-555-0101"),
			IsPrimaryContact: boolPtr(true),
		}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.Contacts[0].FaxNumber == nil || *detail.Contacts[0].FaxNumber != "021-555-0101" {
		t.Fatalf("expected fax preserved, got %v", detail.Contacts[0].FaxNumber)
	}
}

func TestUpdateAllPatchesBanking(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), domain.CreateVendorRequest{
		Name: "PT Trans Jaya",
		Bankings: []party.BankingInput{{
			BankingNumber:          strPtr("1234567890"),
			BankingName:            strPtr("PT Trans Jaya"),
			BankingBank:            strPtr("Mandiri"),
			IsPrimaryBankingNumber: boolPtr(true),
		}},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bankingID := created.Bankings[0].ID.String()
	updated, err := svc.UpdateAll(context.Background(), domain.UpdateVendorRequest{
		ID: created.ID.String(),
		Bankings: []party.BankingInput{
			{ID: &bankingID, BankingNumber: strPtr("0987654321")},
			{
				BankingNumber:          strPtr("5555555555"),
				BankingName:            strPtr("PT Trans Jaya"),
				BankingBank:            strPtr("BNI"),
				IsPrimaryBankingNumber: boolPtr(false),
			},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Bankings) != 2 {
		t.Fatalf("expected 2 bankings, got %d", len(updated.Bankings))
	}
	if updated.Bankings[0].BankingNumber != "0987654321" {
		t.Fatalf("expected patched number, got %s", updated.Bankings[0].BankingNumber)
	}
	if updated.Bankings[0].BankingBank != party.BankMandiri {
		t.Fatalf("expected bank untouched, got %s", updated.Bankings[0].BankingBank)
	}
}

func TestUpdateAllInvalidBankingRollsBack(t *testing.T) {
	svc, node := newTestService(t)

	created, err := svc.CreateAll(actorCtx(node), domain.CreateVendorRequest{Name: "PT Gagal Patch"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.UpdateAll(context.Background(), domain.UpdateVendorRequest{
		ID:   created.ID.String(),
		Name: strPtr("PT Sudah Ganti"),
		Bankings: []party.BankingInput{{
			BankingNumber: strPtr("1234567890"),
		}},
	})
	if party.AsValidationError(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}

	reread, err := svc.GetByID(context.Background(), created.ID.String())
	if err != nil {
		t.Fatalf("reread failed: %v", err)
	}
	if reread.Name != "PT Gagal Patch" {
		t.Fatalf("expected root patch rolled back, got %s", reread.Name)
	}
}

func TestCreateAllUnknownBankRollsBack(t *testing.T) {
	svc, node := newTestService(t)

	_, err := svc.CreateAll(actorCtx(node), domain.CreateVendorRequest{
		Name: "PT Angkutan Nusantara",
		Bankings: []party.BankingInput{{
			BankingNumber:          strPtr("1234567890"),
			BankingName:            strPtr("PT Angkutan Nusantara"),
			BankingBank:            strPtr("BankOfNowhere"),
			IsPrimaryBankingNumber: boolPtr(true),
		}},
	})
	vErr := party.AsValidationError(err)
	if vErr == nil || vErr.Field != "banking_bank" || !vErr.Invalid {
		t.Fatalf("expected invalid banking_bank, got %v", err)
	}

	list, err := svc.List(actorCtx(node), domain.ListVendorRequest{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list.Vendors) != 0 {
		t.Fatalf("rejected create must not persist the root, got %d vendors", len(list.Vendors))
	}
}
