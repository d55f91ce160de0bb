package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role defines what a user is allowed to see and do.
type Role string

const (
	RoleOwner      Role = "owner"
	RoleRenter     Role = "renter"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole normalizes a raw role string from the data store.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleRenter:
		return RoleRenter, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSuperAdmin:
		return RoleSuperAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// User represents a user of the application in the domain.
type User struct {
	UserID string `json:"userID"` // Primary Key (e.g., UUID)
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	// ResponsibleVillageID scopes an admin to a single village. Nil means the
	// admin is unrestricted. Ignored for non-admin roles.
	ResponsibleVillageID *string `json:"responsibleVillageID,omitempty"`
	PasswordHash         string  `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Identity is the already-authenticated caller handed to the aggregation core.
// The core never reads ambient request state; visibility decisions take this
// value as an explicit parameter.
type Identity struct {
	UserID               string
	Role                 Role
	ResponsibleVillageID *string
}
