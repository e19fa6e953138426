package domain

// Actor is the authenticated identity/role pair performing an operation.
// Every core operation takes the actor as an explicit argument; nothing is
// read from ambient request state.
type Actor struct {
	ID   string
	Role Role
}

// Operation identifies the kind of access being decided on.
type Operation int

const (
	OpList Operation = iota
	OpRead
	OpCreate
	OpUpdate
	OpDelete
	OpExport
)

// CanSeeAll reports whether the actor's visible scope covers every user's
// records. Visibility below Admin is strictly self: a Manager does NOT see
// subordinates' records. That is a deliberate choice carried over from the
// original system — the hierarchy gates UI affordances such as setting
// preferred hours, not data scoping.
func (a Actor) CanSeeAll() bool {
	return a.Role == RoleAdmin
}

// VisibleOwner returns the owner id a record query must be scoped to, where
// empty means unrestricted. Only an admin may narrow the scope to an
// arbitrary user via userFilter; for everyone else the filter is ignored and
// the scope is the actor themselves.
func (a Actor) VisibleOwner(userFilter string) string {
	if a.CanSeeAll() {
		return userFilter
	}
	return a.ID
}

// MayAccess reports whether the actor may perform op on a record owned by
// ownerID. Admin may do anything; everyone else only touches their own.
func (a Actor) MayAccess(op Operation, ownerID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	_ = op // every operation shares the ownership rule below Admin
	return ownerID == a.ID
}

// MaySetOwner reports whether the actor may create or retarget a record for
// ownerID. An empty ownerID means "the actor themselves" and is always
// allowed; naming anyone else requires Admin.
func (a Actor) MaySetOwner(ownerID string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return ownerID == "" || ownerID == a.ID
}
