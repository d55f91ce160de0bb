package domain

import "time"

// AuditFields carries the creation and last-update stamps shared by every
// persisted entity. The *By fields hold user ids (UUID strings).
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
