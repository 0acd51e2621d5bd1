package entity

// Role names. Role is the sole authorization dimension in the system.
const (
	RoleAdmin  = "ADMIN"
	RoleRescue = "RESCUE"
	RoleVet    = "VET"
	RoleUser   = "USER"
	RoleDonor  = "DONOR"
)

// ValidRole reports whether the given role name is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleRescue, RoleVet, RoleUser, RoleDonor:
		return true
	}
	return false
}
