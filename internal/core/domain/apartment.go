package domain

// Apartment represents a single unit in a tourist village. Owned by exactly
// one Village and exactly one User.
type Apartment struct {
	ApartmentID string `json:"apartmentID"` // Primary Key (e.g., UUID)
	Name        string `json:"name"`
	VillageID   string `json:"villageID"` // FK -> Village.villageID (Not Null)
	Phase       int    `json:"phase"`
	OwnerID     string `json:"ownerID"` // FK -> User.userID (Not Null)
	AuditFields
}

// ApartmentInfo is an apartment row enriched with the display fields that
// summary rows carry (owner and village names resolved by the store).
type ApartmentInfo struct {
	ApartmentID string `json:"apartmentID"`
	Name        string `json:"name"`
	VillageID   string `json:"villageID"`
	VillageName string `json:"villageName"`
	Phase       int    `json:"phase"`
	OwnerID     string `json:"ownerID"`
	OwnerName   string `json:"ownerName"`
}

// ApartmentScope is the visibility envelope derived from a caller's Identity.
// Every apartment query ANDs these constraints together; an empty scope means
// the caller sees everything.
type ApartmentScope struct {
	// OwnerID restricts to apartments owned by this user (owner role).
	OwnerID *string
	// BookedByUserID restricts to apartments the user holds at least one
	// booking for (renter role).
	BookedByUserID *string
	// VillageID restricts to apartments in this village (village-scoped admin).
	// Applied in addition to, never instead of, the role restriction.
	VillageID *string
}

// Unrestricted reports whether the scope imposes no constraint at all.
func (s ApartmentScope) Unrestricted() bool {
	return s.OwnerID == nil && s.BookedByUserID == nil && s.VillageID == nil
}
