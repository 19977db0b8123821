package domain

import "time"

// UserRole controls visibility: superadmins see every site, admins are scoped
// to the single site referenced by their SiteID.
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
)

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is a dashboard account.
type User struct {
	UserID                 string       `json:"-"`
	Email                  string       `json:"email"`
	FullName               string       `json:"fullName"`
	PasswordHash           string       `json:"passwordHash,omitempty"`
	Role                   UserRole     `json:"role"`
	SiteID                 string       `json:"siteId,omitempty"`
	AuthProvider           AuthProvider `json:"authProvider"`
	ProviderUserID         string       `json:"providerUserId,omitempty"`
	RefreshTokenHash       string       `json:"refreshTokenHash,omitempty"`
	RefreshTokenExpiryTime *time.Time   `json:"refreshTokenExpiryTime,omitempty"`
	AuditFields
}

// IsSuperAdmin reports whether the user may see and mutate every site.
func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanAccessSite reports whether the user may read data scoped to siteID.
func (u User) CanAccessSite(siteID string) bool {
	return u.IsSuperAdmin() || u.SiteID == siteID
}
