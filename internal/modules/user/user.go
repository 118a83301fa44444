package user

import "fmt"

// Role determines both which vehicles a caller may see and which columns
// are projected for them.
type Role string

const (
	RolePublic         Role = "Public"
	RoleInventoryClerk Role = "Inventory clerk"
	RoleSalesperson    Role = "Salesperson"
	RoleManager        Role = "Manager"
	RoleOwner          Role = "Owner"
)

// ParseRole maps a stored or transmitted role string onto a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePublic, RoleInventoryClerk, RoleSalesperson, RoleManager, RoleOwner:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanFilterByVIN reports whether the role may search by exact VIN.
func (r Role) CanFilterByVIN() bool {
	return r == RoleInventoryClerk || r == RoleSalesperson || r == RoleManager || r == RoleOwner
}

// CanFilterByStatus reports whether the role may narrow a search to
// sold or unsold vehicles.
func (r Role) CanFilterByStatus() bool {
	return r == RoleManager || r == RoleOwner
}

// User is a dealership employee account.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         Role   `json:"role"`
}
