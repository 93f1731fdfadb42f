package service

import (
	"testing"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
)

func identityFor(role model.Role, vendorID *uuid.UUID) *model.Identity {
	return &model.Identity{
		UserID:   uuid.New(),
		Email:    "actor@example.com",
		Name:     "Actor",
		Role:     role,
		VendorID: vendorID,
	}
}

func TestResolveScopeNilIdentity(t *testing.T) {
	_, err := ResolveScope(nil, nil)
	if !apperr.Is(err, apperr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestResolveScopeSuperAdmin(t *testing.T) {
	admin := identityFor(model.RoleSuperAdmin, nil)

	scope, err := ResolveScope(admin, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !scope.AllVendors {
		t.Fatal("superadmin without a requested vendor should see all vendors")
	}

	requested := uuid.New()
	scope, err = ResolveScope(admin, &requested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope.AllVendors || scope.VendorID == nil || *scope.VendorID != requested {
		t.Fatalf("superadmin requested scope not honored: %+v", scope)
	}
}

func TestResolveScopeVendorForcedToOwn(t *testing.T) {
	own := uuid.New()
	for _, role := range []model.Role{model.RoleVendor, model.RoleVendorAdmin} {
		actor := identityFor(role, &own)

		// No requested vendor: forced to own.
		scope, err := ResolveScope(actor, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", role, err)
		}
		if scope.VendorID == nil || *scope.VendorID != own {
			t.Fatalf("%s: scope not forced to own vendor", role)
		}

		// Matching requested vendor is fine.
		if _, err := ResolveScope(actor, &own); err != nil {
			t.Fatalf("%s: own vendor request rejected: %v", role, err)
		}

		// A different vendor is rejected, not silently corrected.
		other := uuid.New()
		_, err = ResolveScope(actor, &other)
		if !apperr.Is(err, apperr.CodeForbidden) {
			t.Fatalf("%s: expected forbidden for foreign vendor, got %v", role, err)
		}
	}
}

func TestResolveScopeVendorWithoutLink(t *testing.T) {
	actor := identityFor(model.RoleVendor, nil)
	_, err := ResolveScope(actor, nil)
	if !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestResolveScopeNonVendorRoles(t *testing.T) {
	for _, role := range []model.Role{model.RoleGuest, model.RoleCustomer} {
		_, err := ResolveScope(identityFor(role, nil), nil)
		if !apperr.Is(err, apperr.CodeUnauthorized) {
			t.Fatalf("%s: expected unauthorized, got %v", role, err)
		}
	}
}

func TestCheckOwnership(t *testing.T) {
	row := uuid.New()

	if err := CheckOwnership(VendorScope{AllVendors: true}, row); err != nil {
		t.Fatalf("all-vendors scope should own everything: %v", err)
	}
	if err := CheckOwnership(VendorScope{VendorID: &row}, row); err != nil {
		t.Fatalf("matching vendor rejected: %v", err)
	}

	other := uuid.New()
	err := CheckOwnership(VendorScope{VendorID: &other}, row)
	if !apperr.Is(err, apperr.CodeForbidden) {
		t.Fatalf("expected forbidden for foreign row, got %v", err)
	}
}
