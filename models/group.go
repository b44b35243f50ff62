package models

import (
	"time"
)

// Group represents a contact group an envelope audience can be limited to
type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:userid;uniqueIndex:idx_groups_user_name" json:"userid"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex:idx_groups_user_name" json:"name"`
	IsDefault bool      `gorm:"column:is_default" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`

	// Filled by the group service on read, not a gorm relation
	Members []Person `gorm:"-" json:"members,omitempty"`
}

// Person represents a contact a user can place into groups
type Person struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:userid;index" json:"userid"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Contact   *string   `gorm:"type:varchar(255)" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName maps Person onto the historical people table
func (Person) TableName() string {
	return "people"
}

// GroupMember links a person into a group
type GroupMember struct {
	GroupID  uint `gorm:"primaryKey;column:group_id" json:"group_id"`
	PersonID uint `gorm:"primaryKey;column:person_id" json:"person_id"`
}
