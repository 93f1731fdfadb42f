package model

// Role is the closed set of actor roles in the system. Scope decisions are
// made from this value alone, via service.ResolveScope.
type Role string

const (
	RoleGuest       Role = "guest"
	RoleCustomer    Role = "customer"
	RoleVendor      Role = "vendor"
	RoleVendorAdmin Role = "vendor_admin"
	RoleSuperAdmin  Role = "superadmin"
)

// Valid reports whether r is one of the known role codes.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleVendor, RoleVendorAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanManageTaxonomy reports whether the role may create, update or delete
// categories and subcategories (global taxonomy, not vendor-scoped).
func (r Role) CanManageTaxonomy() bool {
	return r == RoleSuperAdmin || r == RoleVendorAdmin
}

// CanSell reports whether the role may own and mutate catalog listings.
func (r Role) CanSell() bool {
	return r == RoleVendor || r == RoleVendorAdmin || r == RoleSuperAdmin
}
