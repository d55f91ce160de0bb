package models

// Apartment represents an apartment row as stored in the database.
type Apartment struct {
	ApartmentID string `db:"apartment_id"`
	Name        string `db:"name"`
	VillageID   string `db:"village_id"`
	Phase       int    `db:"phase"`
	OwnerID     string `db:"owner_id"`
	AuditFields
}
