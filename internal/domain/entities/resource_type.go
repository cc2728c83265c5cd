package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ResourceType describes the shape of a resource's secret and metadata,
// e.g. password-with-description. The definition is a JSON schema blob.
type ResourceType struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	Slug       string         `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Definition datatypes.JSON `json:"definition"`
	Created    time.Time      `gorm:"autoCreateTime" json:"created"`
	Modified   time.Time      `gorm:"autoUpdateTime" json:"modified"`
}

func (ResourceType) TableName() string {
	return "resource_types"
}
