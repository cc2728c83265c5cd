package entities

import (
	"time"
)

// Secret is the per-user encrypted payload of a resource.
type Secret struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_secrets_user_resource,priority:1" json:"user_id"`
	ResourceID string    `gorm:"type:uuid;not null;uniqueIndex:idx_secrets_user_resource,priority:2" json:"resource_id"`
	Data       string    `gorm:"type:text;not null" json:"data"`
	Created    time.Time `gorm:"autoCreateTime" json:"created"`
	Modified   time.Time `gorm:"autoUpdateTime" json:"modified"`
}

func (Secret) TableName() string {
	return "secrets"
}
