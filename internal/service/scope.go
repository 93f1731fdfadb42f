package service

import (
	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
)

// VendorScope is the vendor boundary an actor's catalog operations are
// restricted to. AllVendors is only ever true for superadmin reads.
type VendorScope struct {
	VendorID   *uuid.UUID
	AllVendors bool
}

// ResolveScope computes the effective vendor scope for identity, honoring an
// optional requested vendor id. It is authoritative: every mutating catalog
// operation consults it, and ownership is re-checked against the stored row
// on update/delete.
func ResolveScope(identity *model.Identity, requestedVendorID *uuid.UUID) (VendorScope, error) {
	if identity == nil {
		return VendorScope{}, apperr.New(apperr.CodeUnauthorized, "authentication required")
	}

	switch identity.Role {
	case model.RoleSuperAdmin:
		if requestedVendorID != nil {
			return VendorScope{VendorID: requestedVendorID}, nil
		}
		return VendorScope{AllVendors: true}, nil

	case model.RoleVendor, model.RoleVendorAdmin:
		if identity.VendorID == nil {
			return VendorScope{}, apperr.New(apperr.CodeForbidden, "no vendor linked to this account")
		}
		// The actor's own vendor wins; targeting another vendor is rejected,
		// never silently corrected.
		if requestedVendorID != nil && *requestedVendorID != *identity.VendorID {
			return VendorScope{}, apperr.New(apperr.CodeForbidden, "cannot operate on another vendor")
		}
		return VendorScope{VendorID: identity.VendorID}, nil

	default:
		return VendorScope{}, apperr.New(apperr.CodeUnauthorized, "catalog access requires a vendor role")
	}
}

// CheckOwnership verifies that a stored row's vendor falls inside scope.
func CheckOwnership(scope VendorScope, rowVendorID uuid.UUID) error {
	if scope.AllVendors {
		return nil
	}
	if scope.VendorID == nil || *scope.VendorID != rowVendorID {
		return apperr.New(apperr.CodeForbidden, "row belongs to another vendor")
	}
	return nil
}
