package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
	"secret-server/pkg/errors"
	"secret-server/pkg/logger"
)

// ResourceService executes the queries composed by the finder and applies
// result post-processing.
type ResourceService struct {
	finder   *ResourceFinder
	features FeatureToggles
}

func NewResourceService(finder *ResourceFinder, features FeatureToggles) *ResourceService {
	return &ResourceService{finder: finder, features: features}
}

// resourceRow carries a resource plus the columns of the joined resolved
// permission when the finder attaches one.
type resourceRow struct {
	entities.Resource
	ResolvedPermissionID            *string                  `gorm:"column:resolved_permission_id"`
	ResolvedPermissionARO           *string                  `gorm:"column:resolved_permission_aro"`
	ResolvedPermissionAROForeignKey *string                  `gorm:"column:resolved_permission_aro_foreign_key"`
	ResolvedPermissionType          *entities.PermissionType `gorm:"column:resolved_permission_type"`
}

func (r *resourceRow) toResource() *entities.Resource {
	res := r.Resource
	if r.ResolvedPermissionID != nil {
		res.Permission = &entities.Permission{
			ID:            *r.ResolvedPermissionID,
			ACO:           entities.ACOResource,
			ACOForeignKey: res.ID,
			Type:          *r.ResolvedPermissionType,
		}
		if r.ResolvedPermissionARO != nil {
			res.Permission.ARO = *r.ResolvedPermissionARO
		}
		if r.ResolvedPermissionAROForeignKey != nil {
			res.Permission.AROForeignKey = *r.ResolvedPermissionAROForeignKey
		}
	}
	return &res
}

// FindIndex builds and runs the index query for one user.
func (s *ResourceService) FindIndex(ctx context.Context, userID string, opts FinderOptions) ([]*entities.Resource, error) {
	q, err := s.finder.BuildIndex(userID, opts)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, q, opts)
}

// FindView builds and runs the single-resource query. A resource the user
// cannot see is indistinguishable from one that does not exist.
func (s *ResourceService) FindView(ctx context.Context, userID, resourceID string, opts FinderOptions) (*entities.Resource, error) {
	q, err := s.finder.BuildView(userID, resourceID, opts)
	if err != nil {
		return nil, err
	}
	results, err := s.execute(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NewNotFoundError("resource not found")
	}
	return results[0], nil
}

// FindByIDs builds and runs the query for an explicit, non-empty id set.
func (s *ResourceService) FindByIDs(ctx context.Context, userID string, resourceIDs []string, opts FinderOptions) ([]*entities.Resource, error) {
	q, err := s.finder.BuildByIDs(userID, resourceIDs, opts)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, q, opts)
}

// FindByGroupAccess builds and runs the group-shared query.
func (s *ResourceService) FindByGroupAccess(ctx context.Context, groupID string) ([]*entities.Resource, error) {
	q, err := s.finder.BuildByGroupAccess(groupID)
	if err != nil {
		return nil, err
	}
	var results []*entities.Resource
	if err := q.WithContext(ctx).Find(&results).Error; err != nil {
		logger.Error("group access query failed", zap.Error(err), zap.String("group_id", groupID))
		return nil, errors.NewInternalError("failed to find resources shared with group")
	}
	return results, nil
}

func (s *ResourceService) execute(ctx context.Context, q *gorm.DB, opts FinderOptions) ([]*entities.Resource, error) {
	var results []*entities.Resource

	if opts.ContainPermission {
		var rows []*resourceRow
		if err := q.WithContext(ctx).Find(&rows).Error; err != nil {
			logger.Error("resource query failed", zap.Error(err))
			return nil, errors.NewInternalError("failed to find resources")
		}
		results = make([]*entities.Resource, 0, len(rows))
		for _, row := range rows {
			results = append(results, row.toResource())
		}
	} else {
		if err := q.WithContext(ctx).Find(&results).Error; err != nil {
			logger.Error("resource query failed", zap.Error(err))
			return nil, errors.NewInternalError("failed to find resources")
		}
	}

	s.postProcess(results)
	return results, nil
}

// postProcess strips the resource type association from every row when
// the feature is disabled, whatever was requested.
func (s *ResourceService) postProcess(results []*entities.Resource) {
	if s.features.ResourceTypesEnabled {
		return
	}
	for _, r := range results {
		r.ResourceTypeID = nil
		r.ResourceType = nil
	}
}
