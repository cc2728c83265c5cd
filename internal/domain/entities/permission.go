package entities

import (
	"time"
)

// Access-controlled object and access-requesting object type markers.
const (
	ACOResource = "Resource"
	AROUser     = "User"
	AROGroup    = "Group"
)

// PermissionType is an access level. Values are ordered so the highest
// applicable level can be resolved with a plain MAX.
type PermissionType int

const (
	PermissionRead   PermissionType = 1
	PermissionUpdate PermissionType = 7
	PermissionOwner  PermissionType = 15
)

// Permission is one edge of the permission graph: it binds an
// access-controlled object (ACO) to an access-requesting identity (ARO)
// with an access level. At most one edge exists per (aco, aco id, aro,
// aro id) tuple.
type Permission struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	ACO           string         `gorm:"column:aco;size:30;not null;uniqueIndex:idx_permissions_edge,priority:1" json:"aco"`
	ACOForeignKey string         `gorm:"column:aco_foreign_key;type:uuid;not null;uniqueIndex:idx_permissions_edge,priority:2" json:"aco_foreign_key"`
	ARO           string         `gorm:"column:aro;size:30;not null;uniqueIndex:idx_permissions_edge,priority:3" json:"aro"`
	AROForeignKey string         `gorm:"column:aro_foreign_key;type:uuid;not null;uniqueIndex:idx_permissions_edge,priority:4" json:"aro_foreign_key"`
	Type          PermissionType `gorm:"not null" json:"type"`
	Created       time.Time      `gorm:"autoCreateTime" json:"created"`
	Modified      time.Time      `gorm:"autoUpdateTime" json:"modified"`

	// User and Group resolve the identity side of the edge; only the one
	// matching the ARO type yields a row when preloaded.
	User  *User  `gorm:"foreignKey:AROForeignKey" json:"user,omitempty"`
	Group *Group `gorm:"foreignKey:AROForeignKey" json:"group,omitempty"`
}

func (Permission) TableName() string {
	return "permissions"
}
