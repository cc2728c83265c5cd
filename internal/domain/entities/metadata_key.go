package entities

import (
	"time"
)

// MetadataKey is a shared key used to encrypt resource metadata. A
// non-nil Expired timestamp marks the key as rotation-eligible.
type MetadataKey struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	Fingerprint string     `gorm:"size:51;not null" json:"fingerprint"`
	ArmoredKey  string     `gorm:"type:text;not null" json:"armored_key"`
	Expired     *time.Time `json:"expired,omitempty"`
	Deleted     *time.Time `json:"deleted,omitempty"`
	Created     time.Time  `gorm:"autoCreateTime" json:"created"`
	Modified    time.Time  `gorm:"autoUpdateTime" json:"modified"`
}

func (MetadataKey) TableName() string {
	return "metadata_keys"
}
