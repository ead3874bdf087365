package entity

import "time"

// Role tags a principal as an administrator or a regular user.
// Admins and users live in disjoint identity stores with independently
// unique usernames and emails.
type Role string

const (
	// RoleAdmin identifies principals from the admin store.
	RoleAdmin Role = "admin"
	// RoleUser identifies principals from the user store.
	RoleUser Role = "user"
)

// Requirement expresses which roles an operation accepts.
type Requirement int

const (
	// RequireAdmin accepts admin principals only.
	RequireAdmin Requirement = iota
	// RequireUser accepts user principals only.
	RequireUser
	// RequireAny accepts either role; admin lookup wins on ID collision.
	RequireAny
)

// Admin is an administrator identity.
// PasswordHash is never serialized or returned past the account layer.
type Admin struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}

// User is a regular author identity.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string `json:"-"`
	CreatedAt    time.Time
}

// Principal is the tagged union of the two identity types. Exactly one of
// Admin or User is non-nil, matching Role.
type Principal struct {
	Role  Role
	Admin *Admin
	User  *User
}

// ID returns the identifier of the underlying identity.
func (p Principal) ID() string {
	switch p.Role {
	case RoleAdmin:
		if p.Admin != nil {
			return p.Admin.ID
		}
	case RoleUser:
		if p.User != nil {
			return p.User.ID
		}
	}
	return ""
}

// Username returns the username of the underlying identity.
func (p Principal) Username() string {
	switch p.Role {
	case RoleAdmin:
		if p.Admin != nil {
			return p.Admin.Username
		}
	case RoleUser:
		if p.User != nil {
			return p.User.Username
		}
	}
	return ""
}

// AdminPrincipal wraps an admin identity in a Principal.
func AdminPrincipal(a *Admin) Principal {
	return Principal{Role: RoleAdmin, Admin: a}
}

// UserPrincipal wraps a user identity in a Principal.
func UserPrincipal(u *User) Principal {
	return Principal{Role: RoleUser, User: u}
}
