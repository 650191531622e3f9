package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages the catalog and the business configuration.
	RoleAdmin Role = "admin"
	// RoleVendor takes orders at the counter.
	RoleVendor Role = "vendor"
	// RoleCourier delivers orders.
	RoleCourier Role = "courier"
	// RoleCustomer places their own orders.
	RoleCustomer Role = "customer"
	// RoleStaff is any authenticated user without a recognised group.
	RoleStaff Role = "staff"
)

// Backend permission group names.
const (
	GroupAdministrator = "Administrador"
	GroupVendor        = "Vendedor"
	GroupCourier       = "Repartidor"
	GroupCustomer      = "Cliente"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleCourier, RoleCustomer, RoleStaff:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromGroups maps backend group names to roles, skipping unknown groups.
func RolesFromGroups(groups []string) Roles {
	result := make(Roles, 0, len(groups))
	for _, g := range groups {
		switch g {
		case GroupAdministrator:
			result = append(result, RoleAdmin)
		case GroupVendor:
			result = append(result, RoleVendor)
		case GroupCourier:
			result = append(result, RoleCourier)
		case GroupCustomer:
			result = append(result, RoleCustomer)
		}
	}

	return result
}
