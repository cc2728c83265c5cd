package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"secret-server/internal/domain/entities"
	"secret-server/internal/domain/services"
	"secret-server/internal/interfaces/dto"
	"secret-server/pkg/logger"
)

// MetadataHandler exposes the maintenance views over resource encryption
// metadata: rotation candidates and format-upgrade candidates.
type MetadataHandler struct {
	metadataSvc *services.MetadataService
}

func NewMetadataHandler(metadataSvc *services.MetadataService) *MetadataHandler {
	return &MetadataHandler{metadataSvc: metadataSvc}
}

func (h *MetadataHandler) RotateKeyIndex(c *gin.Context) {
	var resources []*entities.Resource
	q := h.metadataSvc.RotateKeyIndex()
	if err := q.WithContext(c.Request.Context()).Find(&resources).Error; err != nil {
		logger.Error("rotate key query failed", zap.Error(err))
		respondWithError(c, http.StatusInternalServerError, 500, "failed to find rotation candidates")
		return
	}

	respondWithSuccess(c, nil, dto.ResourceListResponse{Resources: resources})
}

func (h *MetadataHandler) UpgradeIndex(c *gin.Context) {
	var req dto.MetadataUpgradeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	opts := services.UpgradeOptions{
		IsShared:           req.IsShared,
		ContainPermissions: req.ContainPermissions,
	}

	var resources []*entities.Resource
	q := h.metadataSvc.UpgradeIndex(opts)
	if err := q.WithContext(c.Request.Context()).Find(&resources).Error; err != nil {
		logger.Error("upgrade query failed", zap.Error(err))
		respondWithError(c, http.StatusInternalServerError, 500, "failed to find upgrade candidates")
		return
	}

	respondWithSuccess(c, nil, dto.ResourceListResponse{Resources: resources})
}
