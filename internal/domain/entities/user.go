package entities

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	Deleted      bool      `gorm:"not null;default:false" json:"deleted"`
	Created      time.Time `gorm:"autoCreateTime" json:"created"`
	Modified     time.Time `gorm:"autoUpdateTime" json:"modified"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName string    `gorm:"size:255" json:"first_name"`
	LastName  string    `gorm:"size:255" json:"last_name"`
	Created   time.Time `gorm:"autoCreateTime" json:"created"`
	Modified  time.Time `gorm:"autoUpdateTime" json:"modified"`

	Avatar *Avatar `gorm:"foreignKey:ProfileID" json:"avatar,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

type Avatar struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID string         `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	Data      datatypes.JSON `json:"data"`
	Created   time.Time      `gorm:"autoCreateTime" json:"created"`
	Modified  time.Time      `gorm:"autoUpdateTime" json:"modified"`
}

func (Avatar) TableName() string {
	return "avatars"
}
