package identity

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Actor is the authenticated session identity resolved by the auth middleware.
// Services receive it explicitly instead of reading ambient state.
type Actor struct {
	ID   string
	Name string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the owner of a record created by ownerID.
func (a Actor) Owns(ownerID string) bool {
	return a.ID != "" && a.ID == ownerID
}
