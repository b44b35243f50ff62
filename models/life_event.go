package models

import (
	"time"
)

// LifeEvent represents a milestone on a user's life timeline
type LifeEvent struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"column:userid;index" json:"userid"`
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Category        string     `gorm:"type:varchar(50)" json:"category"`
	EventDate       *time.Time `gorm:"column:event_date" json:"event_date"`
	Location        *string    `gorm:"type:varchar(255)" json:"location"`
	Story           *string    `gorm:"type:text" json:"story"`
	CoverURL        *string    `gorm:"column:cover_url;type:varchar(512)" json:"cover_url"`
	AudienceGroupID *uint      `gorm:"column:audience_group_id" json:"audience_group_id"`
	CreatedAt       time.Time  `json:"created_at"`

	// Relations
	AudienceGroup *Group `gorm:"foreignKey:AudienceGroupID" json:"audience_group,omitempty"`
}
