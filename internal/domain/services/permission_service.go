package services

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
)

// PermissionService resolves permission edges for users and groups. The
// subquery-returning methods build unexecuted id sets so the finder can
// conjoin them into a larger query; the context-taking methods execute
// immediately.
type PermissionService struct {
	db     *gorm.DB
	groups *GroupService
}

func NewPermissionService(db *gorm.DB, groups *GroupService) *PermissionService {
	return &PermissionService{db: db, groups: groups}
}

// identityCondition restricts a permissions query to edges held by the
// identity. With expandGroups set, edges granted to any group the user
// belongs to count as well; a group's edge never removes access, so the
// union is always safe.
func (s *PermissionService) identityCondition(q *gorm.DB, identityID string, expandGroups bool) *gorm.DB {
	if expandGroups {
		return q.Where(
			"(permissions.aro_foreign_key = ? OR permissions.aro_foreign_key IN (?))",
			identityID, s.groups.GroupIDsOf(identityID),
		)
	}
	return q.Where("permissions.aro_foreign_key = ?", identityID)
}

// FindAllByIdentity returns the unexecuted set of object ids carrying any
// permission edge for the identity, regardless of level.
func (s *PermissionService) FindAllByIdentity(acoType, identityID string, expandGroups bool) *gorm.DB {
	q := s.db.Model(&entities.Permission{}).
		Select("permissions.aco_foreign_key").
		Where("permissions.aco = ?", acoType)
	return s.identityCondition(q, identityID, expandGroups)
}

// OwnedBy narrows FindAllByIdentity to owner-level edges.
func (s *PermissionService) OwnedBy(acoType, userID string, expandGroups bool) *gorm.DB {
	return s.FindAllByIdentity(acoType, userID, expandGroups).
		Where("permissions.type = ?", entities.PermissionOwner)
}

// HighestFor returns a one-row subquery selecting the id of the strongest
// edge the user holds, directly or via groups, on the object referenced by
// objectColumn of the enclosing query.
func (s *PermissionService) HighestFor(acoType, userID, objectColumn string) *gorm.DB {
	q := s.db.Model(&entities.Permission{}).
		Select("permissions.id").
		Where("permissions.aco = ?", acoType).
		Where(fmt.Sprintf("permissions.aco_foreign_key = %s", objectColumn))
	return s.identityCondition(q, userID, true).
		Order("permissions.type DESC").
		Limit(1)
}

// HighestPermission resolves the maximum level among all edges applicable
// to the user on one object. The second return value reports whether any
// edge matched at all.
func (s *PermissionService) HighestPermission(ctx context.Context, acoType, acoID, userID string) (entities.PermissionType, bool, error) {
	q := s.db.WithContext(ctx).
		Model(&entities.Permission{}).
		Select("MAX(permissions.type)").
		Where("permissions.aco = ?", acoType).
		Where("permissions.aco_foreign_key = ?", acoID)

	var level sql.NullInt64
	if err := s.identityCondition(q, userID, true).Row().Scan(&level); err != nil {
		return 0, false, err
	}
	if !level.Valid {
		return 0, false, nil
	}
	return entities.PermissionType(level.Int64), true, nil
}

// HasAnyAccess reports whether any edge, direct or via groups, grants the
// user access to the object.
func (s *PermissionService) HasAnyAccess(ctx context.Context, acoType, acoID, userID string) (bool, error) {
	q := s.db.WithContext(ctx).
		Model(&entities.Permission{}).
		Where("permissions.aco = ?", acoType).
		Where("permissions.aco_foreign_key = ?", acoID)

	var count int64
	if err := s.identityCondition(q, userID, true).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
