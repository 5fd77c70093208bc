package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"traini8/internal/dto"
	"traini8/internal/service"
	"traini8/pkg/response"
)

// 培训中心模块错误码
const (
	codeInvalidParams = 10001
	codeBodyTooLarge  = 10005
	codeDuplicateCode = 20001
	codeExportFailed  = 20002
)

// TrainingCenterHandler 培训中心模块 HTTP 处理器
type TrainingCenterHandler struct {
	centerSvc service.TrainingCenterService
	exportSvc service.ExportService
}

// NewTrainingCenterHandler 创建 TrainingCenterHandler
func NewTrainingCenterHandler(centerSvc service.TrainingCenterService, exportSvc service.ExportService) *TrainingCenterHandler {
	return &TrainingCenterHandler{centerSvc: centerSvc, exportSvc: exportSvc}
}

// CreateTrainingCenter 创建培训中心
// POST /api/training-centers
func (h *TrainingCenterHandler) CreateTrainingCenter(c *gin.Context) {
	var req dto.TrainingCenterDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, codeBodyTooLarge, "Request body too large")
			return
		}
		response.BadRequest(c, codeInvalidParams, "Malformed request body")
		return
	}

	center, err := h.centerSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTrainingCenterError(c, err)
		return
	}

	response.Created(c, center)
}

// ListTrainingCenters 获取培训中心列表
// GET /api/training-centers?city=&state=&minCapacity=&course=
func (h *TrainingCenterHandler) ListTrainingCenters(c *gin.Context) {
	var req dto.TrainingCenterListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "Invalid filter parameters")
		return
	}

	centers, err := h.centerSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleTrainingCenterError(c, err)
		return
	}

	response.OK(c, centers)
}

// ExportTrainingCenters 按列表筛选条件导出 Excel
// GET /api/training-centers/export
func (h *TrainingCenterHandler) ExportTrainingCenters(c *gin.Context) {
	var req dto.TrainingCenterListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "Invalid filter parameters")
		return
	}

	buf, filename, err := h.exportSvc.ExportTrainingCenters(c.Request.Context(), &req)
	if err != nil {
		h.handleTrainingCenterError(c, err)
		return
	}

	const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxType, buf.Bytes())
}

// handleTrainingCenterError 统一处理培训中心模块业务错误
func (h *TrainingCenterHandler) handleTrainingCenterError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ValidationFailed(c, codeInvalidParams, "Validation failed", vErr.Fields)
	case errors.Is(err, service.ErrDuplicateCenterCode):
		response.Conflict(c, codeDuplicateCode, "Training center with this code already exists")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, codeExportFailed, "Failed to generate export")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
