package auth

type Role string

const (
	RoleBusinessOwner Role = "business_owner"
	RolePartner       Role = "partner"
	RoleAdmin         Role = "admin"
)

// Session identifies the caller of an operation. It is passed explicitly to
// every usecase instead of living in ambient global state, so one process can
// serve many sessions concurrently.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// Anonymous reports whether no user is authenticated.
func (s Session) Anonymous() bool { return s.UserID == "" }
