package services

import (
	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
	"secret-server/internal/utils"
	"secret-server/pkg/errors"
)

// FinderOptions is the typed configuration of the resource finder. Every
// field is independently optional; a zero field applies no filtering or
// inclusion.
type FinderOptions struct {
	// Filters. All combine as conjunctions.
	ResourceIDs       []string
	IsFavorite        *bool
	IsOwnedByMe       bool
	IsSharedWithMe    bool
	IsSharedWithGroup *string
	HasParent         []string

	// Inclusions.
	ContainPermission             bool
	ContainSecret                 bool
	ContainCreator                bool
	ContainModifier               bool
	ContainFavorite               bool
	ContainPermissions            bool
	ContainPermissionsUserProfile bool
	ContainPermissionsGroup       bool
	ContainResourceType           bool

	// Legacy fixed ordering by modification time, newest first.
	OrderByModified bool
}

// FeatureToggles carries the feature flags the finder honors. Passing them
// in explicitly keeps query composition reproducible in tests.
type FeatureToggles struct {
	FoldersEnabled       bool
	ResourceTypesEnabled bool
}

// QueryExtension lets collaborators append predicates to a query in
// progress before the finder applies its own filters. Implementations
// extend the received query and return it; they must not replace it with
// an unrelated one.
type QueryExtension interface {
	Extend(query *gorm.DB, opts FinderOptions, userID string) *gorm.DB
}

// ResourceFinder composes access-filtered, side-effect-free resource
// queries. It never executes them; callers do.
type ResourceFinder struct {
	db          *gorm.DB
	permissions *PermissionService
	folders     *FolderFilter
	features    FeatureToggles
	extensions  []QueryExtension
}

func NewResourceFinder(
	db *gorm.DB,
	permissions *PermissionService,
	folders *FolderFilter,
	features FeatureToggles,
	extensions ...QueryExtension,
) *ResourceFinder {
	return &ResourceFinder{
		db:          db,
		permissions: permissions,
		folders:     folders,
		features:    features,
		extensions:  extensions,
	}
}

// BuildIndex composes the index query for one user. Deleted resources are
// always excluded; unless the single resolved permission is joined in, the
// result set is restricted to resources the user can access directly or
// through a group.
func (f *ResourceFinder) BuildIndex(userID string, opts FinderOptions) (*gorm.DB, error) {
	if err := f.validate(userID, opts); err != nil {
		return nil, err
	}

	q := f.db.Model(&entities.Resource{})

	// Collaborators get the query before any predicate is attached.
	for _, ext := range f.extensions {
		q = ext.Extend(q, opts, userID)
	}

	q = q.Where("resources.deleted = ?", false)

	if len(opts.ResourceIDs) > 0 {
		q = q.Where("resources.id IN ?", opts.ResourceIDs)
	}

	if opts.IsFavorite != nil {
		favorites := f.db.Model(&entities.Favorite{}).
			Select("favorites.foreign_key").
			Where("favorites.user_id = ?", userID).
			Where("favorites.foreign_model = ?", entities.ACOResource)
		if *opts.IsFavorite {
			q = q.Where("resources.id IN (?)", favorites)
		} else {
			q = q.Where("resources.id NOT IN (?)", favorites)
		}
	}

	if opts.IsOwnedByMe {
		q = q.Where("resources.id IN (?)",
			f.permissions.OwnedBy(entities.ACOResource, userID, true))
	}

	if opts.IsSharedWithMe {
		// Accessible but not owned. Accessibility itself comes from the
		// visibility filter or the permission join below.
		q = q.Where("resources.id NOT IN (?)",
			f.permissions.OwnedBy(entities.ACOResource, userID, true))
	}

	if opts.IsSharedWithGroup != nil {
		q = q.Where("resources.id IN (?)",
			f.permissions.FindAllByIdentity(entities.ACOResource, *opts.IsSharedWithGroup, false))
	}

	if f.features.FoldersEnabled && len(opts.HasParent) > 0 {
		q = f.folders.ByParents(q, userID, opts.HasParent)
	}

	if opts.ContainPermission {
		// Joining the single strongest edge both restricts the result to
		// accessible resources and carries the resolved level, so the
		// generic visibility filter is skipped.
		q = q.Joins(
			"INNER JOIN permissions resolved_permission ON resolved_permission.id = (?)",
			f.permissions.HighestFor(entities.ACOResource, userID, "resources.id"),
		).Select(
			"resources.*" +
				", resolved_permission.id AS resolved_permission_id" +
				", resolved_permission.aro AS resolved_permission_aro" +
				", resolved_permission.aro_foreign_key AS resolved_permission_aro_foreign_key" +
				", resolved_permission.type AS resolved_permission_type",
		)
	} else {
		q = q.Where("resources.id IN (?)",
			f.permissions.FindAllByIdentity(entities.ACOResource, userID, true))
	}

	q = f.contain(q, userID, opts)

	if opts.OrderByModified {
		q = q.Order("resources.modified DESC")
	}

	return q, nil
}

// BuildView is BuildIndex narrowed to a single resource.
func (f *ResourceFinder) BuildView(userID, resourceID string, opts FinderOptions) (*gorm.DB, error) {
	if err := utils.ValidateUUID(resourceID); err != nil {
		return nil, errors.NewValidationError("resource id must be a valid UUID")
	}
	q, err := f.BuildIndex(userID, opts)
	if err != nil {
		return nil, err
	}
	return q.Where("resources.id = ?", resourceID), nil
}

// BuildByIDs is BuildIndex restricted to a non-empty id set.
func (f *ResourceFinder) BuildByIDs(userID string, resourceIDs []string, opts FinderOptions) (*gorm.DB, error) {
	if len(resourceIDs) == 0 {
		return nil, errors.NewValidationError("resource ids must not be empty")
	}
	if err := utils.ValidateUUIDs(resourceIDs); err != nil {
		return nil, errors.NewValidationError("resource ids must be valid UUIDs")
	}
	opts.ResourceIDs = resourceIDs
	return f.BuildIndex(userID, opts)
}

// BuildByGroupAccess composes the query for every non-deleted resource
// carrying a permission edge for the group, without user scoping.
func (f *ResourceFinder) BuildByGroupAccess(groupID string) (*gorm.DB, error) {
	if err := utils.ValidateUUID(groupID); err != nil {
		return nil, errors.NewValidationError("group id must be a valid UUID")
	}
	return f.db.Model(&entities.Resource{}).
		Where("resources.deleted = ?", false).
		Where("resources.id IN (?)",
			f.permissions.FindAllByIdentity(entities.ACOResource, groupID, false)), nil
}

func (f *ResourceFinder) validate(userID string, opts FinderOptions) error {
	if err := utils.ValidateUUID(userID); err != nil {
		return errors.NewValidationError("user id must be a valid UUID")
	}
	if err := utils.ValidateUUIDs(opts.ResourceIDs); err != nil {
		return errors.NewValidationError("resource ids must be valid UUIDs")
	}
	if opts.IsSharedWithGroup != nil {
		if err := utils.ValidateUUID(*opts.IsSharedWithGroup); err != nil {
			return errors.NewValidationError("group id must be a valid UUID")
		}
	}
	if err := utils.ValidateUUIDs(opts.HasParent); err != nil {
		return errors.NewValidationError("parent folder ids must be valid UUIDs")
	}
	return nil
}

func (f *ResourceFinder) contain(q *gorm.DB, userID string, opts FinderOptions) *gorm.DB {
	if opts.ContainSecret {
		q = q.Preload("Secrets", "user_id = ?", userID)
	}
	if opts.ContainCreator {
		q = q.Preload("Creator")
	}
	if opts.ContainModifier {
		q = q.Preload("Modifier")
	}
	if opts.ContainFavorite {
		q = q.Preload("Favorite", "user_id = ?", userID)
	}
	if opts.ContainPermissions || opts.ContainPermissionsUserProfile || opts.ContainPermissionsGroup {
		q = q.Preload("Permissions")
	}
	if opts.ContainPermissionsUserProfile {
		q = q.Preload("Permissions.User").
			Preload("Permissions.User.Profile").
			Preload("Permissions.User.Profile.Avatar")
	}
	if opts.ContainPermissionsGroup {
		q = q.Preload("Permissions.Group")
	}
	if opts.ContainResourceType && f.features.ResourceTypesEnabled {
		q = q.Preload("ResourceType")
	}
	return q
}
