package entities

import (
	"time"
)

// Favorite marks a resource as favorited by one user.
type Favorite struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_foreign,priority:1" json:"user_id"`
	ForeignKey   string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_foreign,priority:2" json:"foreign_key"`
	ForeignModel string    `gorm:"size:36;not null" json:"foreign_model"`
	Created      time.Time `gorm:"autoCreateTime" json:"created"`
}

func (Favorite) TableName() string {
	return "favorites"
}
