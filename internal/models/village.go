package models

import "github.com/shopspring/decimal"

// Village represents a village row as stored in the database.
type Village struct {
	VillageID        string          `db:"village_id"`
	Name             string          `db:"name"`
	ElectricityPrice decimal.Decimal `db:"electricity_price"`
	WaterPrice       decimal.Decimal `db:"water_price"`
	Phases           int             `db:"phases"`
	AuditFields
}
