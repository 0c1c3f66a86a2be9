// Package client is a small SDK for the FinLearn backend. It keeps the
// authenticated session state (token, role, premium flag) in a pluggable
// store and answers route-guard questions without a server round trip.
package client

// Role mirrors the server-side identity role carried in the token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the locally held authentication state. The token is the only
// authority; Role and IsPremium are mirrors used for routing and display and
// are re-derived from the server on Refresh.
type Session struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	IsPremium bool   `json:"isPremium"`
}

// Valid reports whether the session carries a token.
func (s Session) Valid() bool {
	return s.Token != ""
}
