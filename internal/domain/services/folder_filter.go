package services

import (
	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
)

// FolderFilter restricts a resource query to items placed under a set of
// parent folders, from the requesting user's point of view.
type FolderFilter struct {
	db *gorm.DB
}

func NewFolderFilter(db *gorm.DB) *FolderFilter {
	return &FolderFilter{db: db}
}

// ByParents joins the user-scoped folder relations and keeps rows whose
// parent is one of parentIDs. The root sentinel id translates to "parent
// is null" and combines with the concrete ids as an OR, so a request for
// [root, F1] means "at the root or under F1".
func (f *FolderFilter) ByParents(q *gorm.DB, userID string, parentIDs []string) *gorm.DB {
	if len(parentIDs) == 0 {
		return q
	}

	rootRequested := false
	concrete := make([]string, 0, len(parentIDs))
	for _, id := range parentIDs {
		if id == entities.RootFolderID {
			rootRequested = true
			continue
		}
		concrete = append(concrete, id)
	}

	q = q.Joins(
		"INNER JOIN folders_relations ON folders_relations.foreign_key = resources.id AND folders_relations.user_id = ?",
		userID,
	)

	switch {
	case rootRequested && len(concrete) > 0:
		return q.Where(
			f.db.Where("folders_relations.folder_parent_id IN ?", concrete).
				Or("folders_relations.folder_parent_id IS NULL"),
		)
	case rootRequested:
		return q.Where("folders_relations.folder_parent_id IS NULL")
	default:
		return q.Where("folders_relations.folder_parent_id IN ?", concrete)
	}
}
