package models

import (
	"time"
)

// User represents a user row as stored in the database. Role and the optional
// responsible village are kept as raw columns here and normalized into closed
// domain types by the mapping layer.
type User struct {
	UserID               string  `db:"user_id"`
	Name                 string  `db:"name"`
	Email                string  `db:"email"`
	PasswordHash         string  `db:"password_hash"`
	Role                 string  `db:"role"`
	ResponsibleVillageID *string `db:"responsible_village_id"` // Nullable
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
