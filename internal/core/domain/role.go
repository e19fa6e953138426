package domain

import "fmt"

// Role is the ordered role hierarchy. Lower rank means more privilege, so a
// Role value can be compared numerically: Admin(0) < Manager(1) < Employee(2).
type Role int

const (
	RoleAdmin Role = iota
	RoleManager
	RoleEmployee
)

// Rank returns the numeric rank of the role.
func (r Role) Rank() int {
	return int(r)
}

// AtLeast reports whether the role is at least as privileged as threshold.
// Policy checks must go through rank comparison rather than role names so the
// hierarchy stays open to insertion.
func (r Role) AtLeast(threshold Role) bool {
	return r.Rank() <= threshold.Rank()
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleManager:
		return "manager"
	case RoleEmployee:
		return "employee"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole converts the wire form of a role (as carried in JWT claims) into
// the enum. Unknown values are rejected rather than defaulted.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "manager":
		return RoleManager, nil
	case "employee":
		return RoleEmployee, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}
