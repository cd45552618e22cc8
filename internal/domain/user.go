package domain

// Role is the caller's role as supplied by the access-control layer.
// The service trusts this pair (user id + role) and never authenticates itself.
type Role string

const (
	RoleUser        Role = "user"
	RoleInterviewer Role = "interviewer"
	RoleAdmin       Role = "admin"
)

// CanPublishSlots returns true for roles allowed to own availability slots
func (r Role) CanPublishSlots() bool {
	return r == RoleInterviewer || r == RoleAdmin
}

// IsAdmin returns true for the admin role
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
