package services

import (
	"context"

	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
)

// GroupService resolves group memberships for a user.
type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

// GroupIDsOf returns the unexecuted set of group ids the user belongs to,
// usable as a subquery inside a larger composed query.
func (s *GroupService) GroupIDsOf(userID string) *gorm.DB {
	return s.db.Model(&entities.GroupUser{}).
		Select("groups_users.group_id").
		Where("groups_users.user_id = ?", userID)
}

// GroupsOf resolves the membership set immediately.
func (s *GroupService) GroupsOf(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&entities.GroupUser{}).
		Where("user_id = ?", userID).
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
