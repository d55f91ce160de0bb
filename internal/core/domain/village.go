package domain

import "github.com/shopspring/decimal"

// Village groups apartments and is the source of utility pricing. Unit prices
// are currency-less rates; derived utility costs are always expressed in EGP.
type Village struct {
	VillageID        string          `json:"villageID"` // Primary Key (e.g., UUID)
	Name             string          `json:"name"`
	ElectricityPrice decimal.Decimal `json:"electricityPrice"` // EGP per unit
	WaterPrice       decimal.Decimal `json:"waterPrice"`       // EGP per unit
	Phases           int             `json:"phases"`
	AuditFields
}
