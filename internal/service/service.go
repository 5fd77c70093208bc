package service

import (
	"go.uber.org/zap"

	"traini8/config"
	"traini8/internal/repository"
	"traini8/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	TrainingCenter TrainingCenterService
	Export         ExportService
}

// NewService 创建 Service 聚合
// rdb 为 nil 时列表缓存关闭
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var cache ListCache
	if rdb != nil {
		cache = rdb
	}

	tc := NewTrainingCenterService(repo, cache, cfg.Cache.ListTTL, logger)
	return &Service{
		TrainingCenter: tc,
		Export:         NewExportService(tc, logger),
	}
}
