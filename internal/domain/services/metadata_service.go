package services

import (
	"time"

	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
)

// MetadataService builds maintenance queries over resource encryption
// metadata: key-rotation candidates and v4-to-v5 upgrade candidates.
type MetadataService struct {
	db *gorm.DB
}

func NewMetadataService(db *gorm.DB) *MetadataService {
	return &MetadataService{db: db}
}

// UpgradeOptions configures UpgradeIndex. IsShared selects resources that
// are (or are not) shared with anyone beyond a single user.
type UpgradeOptions struct {
	IsShared           *bool
	ContainPermissions bool
}

// RotateKeyIndex returns the query for resources whose metadata rides on a
// shared key that has an expiry set. Eligibility is "expiry present", not
// "expiry in the past"; live lapse checks use NotExpired instead.
func (s *MetadataService) RotateKeyIndex() *gorm.DB {
	return s.db.Model(&entities.Resource{}).
		Joins("INNER JOIN metadata_keys ON metadata_keys.id = resources.metadata_key_id").
		Where("resources.deleted = ?", false).
		Where("resources.metadata_key_type = ?", entities.MetadataKeyTypeSharedKey).
		Where("resources.metadata IS NOT NULL").
		Where("resources.metadata_key_id IS NOT NULL").
		Where("metadata_keys.expired IS NOT NULL")
}

// UpgradeIndex returns the query for legacy-format resources, optionally
// narrowed by sharing status. A resource counts as shared with at least
// one group edge or at least two user edges; as not shared with no group
// edge and exactly one user edge. A resource with no edges at all matches
// neither predicate.
func (s *MetadataService) UpgradeIndex(opts UpgradeOptions) *gorm.DB {
	q := s.V4Format(s.db.Model(&entities.Resource{}))

	if opts.ContainPermissions {
		q = q.Preload("Permissions")
	}

	if opts.IsShared != nil {
		groupEdges := s.edgeCount(entities.AROGroup)
		userEdges := s.edgeCount(entities.AROUser)
		if *opts.IsShared {
			q = q.Where("((?) >= 1 OR (?) >= 2)", groupEdges, userEdges)
		} else {
			q = q.Where("((?) = 0 AND (?) = 1)", groupEdges, userEdges)
		}
	}

	return q
}

// NotExpired keeps resources that never expire or whose expiry is still in
// the future.
func (s *MetadataService) NotExpired(q *gorm.DB) *gorm.DB {
	return q.Where("(resources.expired IS NULL OR resources.expired > ?)", time.Now().UTC())
}

// V4Format keeps non-deleted resources in the legacy metadata format,
// marked by an absent metadata blob.
func (s *MetadataService) V4Format(q *gorm.DB) *gorm.DB {
	return q.Where("resources.deleted = ?", false).
		Where("resources.metadata IS NULL")
}

// edgeCount builds a correlated count of permission edges of one ARO type
// on the resource row of the enclosing query.
func (s *MetadataService) edgeCount(aroType string) *gorm.DB {
	return s.db.Model(&entities.Permission{}).
		Select("COUNT(*)").
		Where("permissions.aco = ?", entities.ACOResource).
		Where("permissions.aco_foreign_key = resources.id").
		Where("permissions.aro = ?", aroType)
}
