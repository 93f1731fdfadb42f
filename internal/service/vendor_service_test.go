package service

import (
	"testing"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
)

func newVendorService(store *memStore) VendorService {
	return NewVendorService(&fakeVendorRepo{store}, &fakeUserRepo{store}, nil, nil)
}

func TestCreateDepoSuperAdminOnly(t *testing.T) {
	store := newMemStore()
	svc := newVendorService(store)
	req := &model.Vendor{Name: "Central Depo"}

	for _, role := range []model.Role{model.RoleCustomer, model.RoleVendor, model.RoleVendorAdmin} {
		if _, err := svc.CreateDepo(identityFor(role, nil), req); !apperr.Is(err, apperr.CodeForbidden) {
			t.Errorf("%s: expected forbidden, got %v", role, err)
		}
	}

	created, err := svc.CreateDepo(identityFor(model.RoleSuperAdmin, nil), req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.VendorSlug != "central-depo" {
		t.Fatalf("expected derived slug central-depo, got %q", created.VendorSlug)
	}
	if created.Status != model.VendorActive {
		t.Fatalf("expected default active status, got %q", created.Status)
	}
	if created.OwnerUserID != nil {
		t.Fatal("platform-provisioned depo should have no owner user")
	}
}

func TestCreateMyStoreOncePerUser(t *testing.T) {
	store := newMemStore()
	svc := newVendorService(store)

	user := &model.User{Role: model.RoleVendor, Email: "v@example.com"}
	user.ID = uuid.New()
	store.users[user.ID] = user

	identity := &model.Identity{UserID: user.ID, Role: model.RoleVendor}
	created, err := svc.CreateMyStore(identity, &model.Vendor{Name: "My Depo"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OwnerUserID == nil || *created.OwnerUserID != user.ID {
		t.Fatal("store not linked back to its owner")
	}
	if store.users[user.ID].VendorID == nil || *store.users[user.ID].VendorID != created.ID {
		t.Fatal("user account not linked to the new store")
	}

	// A second attempt is rejected even with a stale token that carries no
	// vendor id.
	_, err = svc.CreateMyStore(&model.Identity{UserID: user.ID, Role: model.RoleVendor}, &model.Vendor{Name: "Second Depo"})
	if !apperr.Is(err, apperr.CodeValidation) {
		t.Fatalf("expected validation error for second store, got %v", err)
	}
}

func TestCreateMyStoreRoleGate(t *testing.T) {
	store := newMemStore()
	svc := newVendorService(store)

	_, err := svc.CreateMyStore(identityFor(model.RoleCustomer, nil), &model.Vendor{Name: "Nope"})
	if !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestUpdateVendorOwnershipRules(t *testing.T) {
	store := newMemStore()
	svc := newVendorService(store)

	owner := uuid.New()
	vendor := store.addVendor("depo-one")
	vendor.OwnerUserID = &owner

	// A stranger with a vendor role but a different store is rejected.
	otherVendor := store.addVendor("depo-two")
	stranger := identityFor(model.RoleVendor, &otherVendor.ID)
	if _, err := svc.UpdateVendor(stranger, vendor.ID, &model.Vendor{Name: "Taken Over"}); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	// The owner may update.
	ownerIdentity := &model.Identity{UserID: owner, Role: model.RoleVendor}
	updated, err := svc.UpdateVendor(ownerIdentity, vendor.ID, &model.Vendor{Name: "Depo One Renamed"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "Depo One Renamed" {
		t.Fatalf("name not updated: %q", updated.Name)
	}

	// Superadmin always may.
	if _, err := svc.UpdateVendor(identityFor(model.RoleSuperAdmin, nil), vendor.ID, &model.Vendor{Name: "Admin Rename"}); err != nil {
		t.Fatalf("superadmin update failed: %v", err)
	}
}

func TestDeleteVendorCascadesProducts(t *testing.T) {
	store := newMemStore()
	svc := newVendorService(store)

	vendor := store.addVendor("depo-one")
	product := &model.Product{NameKm: "អង្ករ", Slug: "rice", VendorID: vendor.ID}
	product.ID = uuid.New()
	store.products[product.ID] = product
	store.options[product.ID] = []model.ProductPriceOption{{ProductID: product.ID}}

	if err := svc.DeleteVendor(identityFor(model.RoleVendorAdmin, &vendor.ID), vendor.ID); !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("non-superadmin delete: expected forbidden, got %v", err)
	}

	if err := svc.DeleteVendor(identityFor(model.RoleSuperAdmin, nil), vendor.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, okFound := store.vendors[vendor.ID]; okFound {
		t.Fatal("vendor survived delete")
	}
	if _, okFound := store.products[product.ID]; okFound {
		t.Fatal("product survived its vendor's delete")
	}
	if len(store.options[product.ID]) != 0 {
		t.Fatal("price options survived the cascade")
	}
}
