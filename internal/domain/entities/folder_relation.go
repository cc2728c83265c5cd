package entities

import (
	"time"
)

// RootFolderID is the sentinel parent id meaning "top level, no parent".
// A relation at the root carries a NULL folder_parent_id rather than this
// value; the sentinel only ever appears in filter input.
const RootFolderID = "00000000-0000-0000-0000-000000000000"

// FolderRelation places an item under a parent folder from one user's
// point of view. The same item may have different parents for different
// users.
type FolderRelation struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	ForeignKey     string    `gorm:"type:uuid;not null;uniqueIndex:idx_folders_relations_user_item,priority:2" json:"foreign_key"`
	ForeignModel   string    `gorm:"size:36;not null" json:"foreign_model"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_folders_relations_user_item,priority:1" json:"user_id"`
	FolderParentID *string   `gorm:"type:uuid" json:"folder_parent_id"`
	Created        time.Time `gorm:"autoCreateTime" json:"created"`
	Modified       time.Time `gorm:"autoUpdateTime" json:"modified"`
}

func (FolderRelation) TableName() string {
	return "folders_relations"
}
