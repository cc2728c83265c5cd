package entities

import (
	"time"
)

// Metadata key types a resource's encrypted metadata may be bound to.
const (
	MetadataKeyTypeUserKey   = "user_key"
	MetadataKeyTypeSharedKey = "shared_key"
)

// Resource is an access-controlled secret entry. A nil Metadata blob marks
// the legacy (v4) cleartext-metadata format.
type Resource struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Username        *string    `gorm:"size:255" json:"username,omitempty"`
	URI             *string    `gorm:"size:1024" json:"uri,omitempty"`
	Deleted         bool       `gorm:"not null;default:false" json:"deleted"`
	Expired         *time.Time `json:"expired,omitempty"`
	Metadata        *string    `json:"metadata,omitempty"`
	MetadataKeyID   *string    `gorm:"type:uuid" json:"metadata_key_id,omitempty"`
	MetadataKeyType *string    `gorm:"size:32" json:"metadata_key_type,omitempty"`
	ResourceTypeID  *string    `gorm:"type:uuid" json:"resource_type_id,omitempty"`
	CreatedBy       string     `gorm:"type:uuid;not null" json:"created_by"`
	ModifiedBy      string     `gorm:"type:uuid;not null" json:"modified_by"`
	Created         time.Time  `gorm:"autoCreateTime" json:"created"`
	Modified        time.Time  `gorm:"autoUpdateTime" json:"modified"`

	Creator      *User         `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Modifier     *User         `gorm:"foreignKey:ModifiedBy" json:"modifier,omitempty"`
	ResourceType *ResourceType `gorm:"foreignKey:ResourceTypeID" json:"resource_type,omitempty"`
	Secrets      []Secret      `gorm:"foreignKey:ResourceID" json:"secrets,omitempty"`
	Permissions  []Permission  `gorm:"foreignKey:ACOForeignKey" json:"permissions,omitempty"`
	Favorite     *Favorite     `gorm:"foreignKey:ForeignKey" json:"favorite,omitempty"`

	// Permission is the caller's resolved highest permission on this
	// resource. It is attached by the finder execution path, never stored.
	Permission *Permission `gorm:"-" json:"permission,omitempty"`
}

func (Resource) TableName() string {
	return "resources"
}
