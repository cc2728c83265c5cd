package dto

import (
	"secret-server/internal/domain/entities"
)

// ResourceIndexRequest maps the recognized filter and contain query
// parameters. Anything else on the query string is ignored.
type ResourceIndexRequest struct {
	IDs               []string `form:"id"`
	IsFavorite        *bool    `form:"is_favorite"`
	IsOwnedByMe       bool     `form:"is_owned_by_me"`
	IsSharedWithMe    bool     `form:"is_shared_with_me"`
	IsSharedWithGroup string   `form:"is_shared_with_group"`
	HasParent         []string `form:"has_parent"`

	ContainPermission             bool `form:"contain_permission"`
	ContainSecret                 bool `form:"contain_secret"`
	ContainCreator                bool `form:"contain_creator"`
	ContainModifier               bool `form:"contain_modifier"`
	ContainFavorite               bool `form:"contain_favorite"`
	ContainPermissions            bool `form:"contain_permissions"`
	ContainPermissionsUserProfile bool `form:"contain_permissions_user_profile"`
	ContainPermissionsGroup       bool `form:"contain_permissions_group"`
	ContainResourceType           bool `form:"contain_resource_type"`

	OrderByModified bool `form:"order_by_modified"`
}

type ResourceListResponse struct {
	Resources []*entities.Resource `json:"resources"`
}

type ResourceResponse struct {
	Resource *entities.Resource `json:"resource"`
}
