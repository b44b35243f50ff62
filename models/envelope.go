package models

import (
	"time"
)

// Envelope represents a single posted memory: a photo with caption, location
// and an effective timestamp. The timestamp is either the submission instant
// or, for legacy envelopes, a user-supplied historical instant.
type Envelope struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"column:userid;index" json:"userid"`
	PhotoURL string    `gorm:"column:photourl;type:varchar(512);not null" json:"photourl"`
	Caption  string    `gorm:"type:varchar(500)" json:"caption"`
	Location string    `gorm:"type:varchar(255)" json:"location"`
	Date     time.Time `gorm:"column:date;index" json:"date"` // effective timestamp, UTC
	IsLegacy bool      `gorm:"column:is_legacy" json:"is_legacy"`

	// Weather enrichment. The three fields are populated together or not at
	// all; a failed or skipped lookup leaves all of them NULL.
	Weather     *string `gorm:"type:varchar(50)" json:"weather"`
	WeatherCode *int    `gorm:"column:weather_code" json:"weather_code"`
	TempF       *int    `gorm:"column:temp_f" json:"temp_f"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name used by the frontend
func (Envelope) TableName() string {
	return "memories"
}
