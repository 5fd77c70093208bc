package handler

import "traini8/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	TrainingCenter *TrainingCenterHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		TrainingCenter: NewTrainingCenterHandler(svc.TrainingCenter, svc.Export),
	}
}
