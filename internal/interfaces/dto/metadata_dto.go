package dto

type MetadataUpgradeRequest struct {
	IsShared           *bool `form:"is_shared"`
	ContainPermissions bool  `form:"contain_permissions"`
}
