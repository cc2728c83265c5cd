package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"secret-server/internal/domain/services"
	"secret-server/internal/interfaces/dto"
)

type ResourceHandler struct {
	resourceSvc *services.ResourceService
}

func NewResourceHandler(resourceSvc *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceSvc: resourceSvc}
}

func (h *ResourceHandler) Index(c *gin.Context) {
	var req dto.ResourceIndexRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	user, ok := currentUser(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, 401, "authentication required")
		return
	}

	resources, err := h.resourceSvc.FindIndex(c.Request.Context(), user.ID, toFinderOptions(req))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, nil, dto.ResourceListResponse{Resources: resources})
}

func (h *ResourceHandler) View(c *gin.Context) {
	var req dto.ResourceIndexRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	user, ok := currentUser(c)
	if !ok {
		respondWithError(c, http.StatusUnauthorized, 401, "authentication required")
		return
	}

	resource, err := h.resourceSvc.FindView(c.Request.Context(), user.ID, c.Param("id"), toFinderOptions(req))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, nil, dto.ResourceResponse{Resource: resource})
}

// SharedWithGroup lists every non-deleted resource carrying a permission
// edge for the group, without user scoping.
func (h *ResourceHandler) SharedWithGroup(c *gin.Context) {
	resources, err := h.resourceSvc.FindByGroupAccess(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondWithSuccess(c, nil, dto.ResourceListResponse{Resources: resources})
}

func toFinderOptions(req dto.ResourceIndexRequest) services.FinderOptions {
	opts := services.FinderOptions{
		ResourceIDs:                   req.IDs,
		IsFavorite:                    req.IsFavorite,
		IsOwnedByMe:                   req.IsOwnedByMe,
		IsSharedWithMe:                req.IsSharedWithMe,
		HasParent:                     req.HasParent,
		ContainPermission:             req.ContainPermission,
		ContainSecret:                 req.ContainSecret,
		ContainCreator:                req.ContainCreator,
		ContainModifier:               req.ContainModifier,
		ContainFavorite:               req.ContainFavorite,
		ContainPermissions:            req.ContainPermissions,
		ContainPermissionsUserProfile: req.ContainPermissionsUserProfile,
		ContainPermissionsGroup:       req.ContainPermissionsGroup,
		ContainResourceType:           req.ContainResourceType,
		OrderByModified:               req.OrderByModified,
	}
	if req.IsSharedWithGroup != "" {
		group := req.IsSharedWithGroup
		opts.IsSharedWithGroup = &group
	}
	return opts
}
