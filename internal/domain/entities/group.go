package entities

import (
	"time"
)

type Group struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Deleted  bool      `gorm:"not null;default:false" json:"deleted"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
	Modified time.Time `gorm:"autoUpdateTime" json:"modified"`

	Users []GroupUser `gorm:"foreignKey:GroupID" json:"groups_users,omitempty"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupUser is one membership row of the groups/users many-to-many relation.
type GroupUser struct {
	ID      string    `gorm:"type:uuid;primaryKey" json:"id"`
	GroupID string    `gorm:"type:uuid;not null;uniqueIndex:idx_groups_users_membership,priority:1" json:"group_id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_groups_users_membership,priority:2" json:"user_id"`
	IsAdmin bool      `gorm:"not null;default:false" json:"is_admin"`
	Created time.Time `gorm:"autoCreateTime" json:"created"`
}

func (GroupUser) TableName() string {
	return "groups_users"
}
