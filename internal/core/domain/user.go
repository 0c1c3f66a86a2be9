package domain

// AuthProvider identifies how an account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an end user of the platform. PasswordHash is empty for
// accounts created through an OAuth provider.
type User struct {
	UserID       string       `json:"userID"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	GoogleID     string       `json:"-"`
	Provider     AuthProvider `json:"provider"`
	IsPremium    bool         `json:"isPremium"`
	AuditFields
}

// Role returns the fixed role for end users.
func (u *User) Role() Role { return RoleUser }

// Admin represents a back-office operator. Admins are a separate identity
// class from users; emails are unique within each class, not across them.
type Admin struct {
	AdminID      string `json:"adminID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}

// Role returns the fixed role for admins.
func (a *Admin) Role() Role { return RoleAdmin }

// GoogleUserInfo mirrors the fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
