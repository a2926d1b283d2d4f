package models

import (
	"time"

	"gorm.io/gorm"
)

// Valid activity categories.
const (
	CategoryTransport = "transport"
	CategoryFood      = "food"
	CategoryEnergy    = "energy"
	CategoryWaste     = "waste"
)

// ActivityLog groups everything a user logged for one calendar day.
// Date is always a UTC midnight. At most one live log exists per
// (user, date); the append path enforces that by looking up before it
// creates.
type ActivityLog struct {
	gorm.Model
	UserID  uint            `gorm:"index:idx_user_date;not null" json:"userId"`
	Date    time.Time       `gorm:"index:idx_user_date;not null" json:"date"`
	Entries []ActivityEntry `gorm:"foreignKey:LogID;constraint:OnDelete:CASCADE" json:"activities"`
}

// ActivityEntry is a single logged activity. TotalCO2 is fixed to
// Quantity * CO2Factor when the entry is created and never recomputed.
type ActivityEntry struct {
	gorm.Model
	LogID          uint    `gorm:"index;not null" json:"logId"`
	Name           string  `gorm:"not null" json:"name"`
	SourceActivity string  `json:"activity"`
	Category       string  `gorm:"size:16;not null" json:"category"` // transport | food | energy | waste
	Unit           string  `gorm:"size:16" json:"unit"`
	Quantity       float64 `json:"quantity"`
	CO2Factor      float64 `json:"co2Value"` // kg CO2 per unit
	TotalCO2       float64 `json:"totalCO2"`
}
