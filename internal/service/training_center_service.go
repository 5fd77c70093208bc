package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"traini8/internal/dto"
	"traini8/internal/filter"
	"traini8/internal/model"
	"traini8/internal/repository"
	"traini8/internal/validation"
)

// ── 培训中心模块业务错误 ──

var (
	ErrDuplicateCenterCode = errors.New("培训中心编码已存在")
)

// ValidationError 草稿字段校验失败，Fields 覆盖全部违规字段
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "培训中心数据校验失败: " + strings.Join(e.Fields.Fields(), ", ")
}

// ListCache 列表查询结果缓存，键为 (版本, 规范化查询串)。
// InvalidateList 递增版本；读写都必须使用查库前取得的版本。
type ListCache interface {
	ListVersion(ctx context.Context) (int64, error)
	GetList(ctx context.Context, version int64, query string) ([]byte, bool, error)
	SetList(ctx context.Context, version int64, query string, payload []byte, ttl time.Duration) error
	InvalidateList(ctx context.Context) error
}

// TrainingCenterService 培训中心业务接口
type TrainingCenterService interface {
	Create(ctx context.Context, req *dto.TrainingCenterDraft) (*dto.TrainingCenterResponse, error)
	List(ctx context.Context, req *dto.TrainingCenterListRequest) ([]dto.TrainingCenterResponse, error)
}

type trainingCenterService struct {
	repo     *repository.Repository
	cache    ListCache // 可为 nil
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewTrainingCenterService 创建 TrainingCenterService 实例
func NewTrainingCenterService(repo *repository.Repository, cache ListCache, cacheTTL time.Duration, logger *zap.Logger) TrainingCenterService {
	return &trainingCenterService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *trainingCenterService) Create(ctx context.Context, req *dto.TrainingCenterDraft) (*dto.TrainingCenterResponse, error) {
	if errs := validation.Validate(req); !errs.Valid() {
		return nil, &ValidationError{Fields: errs}
	}

	exists, err := s.repo.TrainingCenter.ExistsByCode(ctx, req.CenterCode)
	if err != nil {
		s.logger.Error("查询培训中心编码失败", zap.String("center_code", req.CenterCode), zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCenterCode
	}

	tc := &model.TrainingCenter{
		CenterName: req.CenterName,
		CenterCode: req.CenterCode,
		Address: model.Address{
			DetailedAddress: req.Address.DetailedAddress,
			City:            req.Address.City,
			State:           req.Address.State,
			Pincode:         req.Address.Pincode,
		},
		StudentCapacity: req.StudentCapacity,
		CoursesOffered:  compactCourses(req.CoursesOffered),
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
	}

	if err := s.repo.TrainingCenter.Create(ctx, tc); err != nil {
		// 并发创建时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCenterCode
		}
		s.logger.Error("创建培训中心失败", zap.String("center_code", req.CenterCode), zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateList(ctx); err != nil {
			s.logger.Warn("清除列表缓存失败", zap.Error(err))
		}
	}

	s.logger.Info("培训中心已创建", zap.Int64("id", tc.ID), zap.String("center_code", tc.CenterCode))
	return toTrainingCenterResponse(tc), nil
}

// ────────────────────── List ──────────────────────

func (s *trainingCenterService) List(ctx context.Context, req *dto.TrainingCenterListRequest) ([]dto.TrainingCenterResponse, error) {
	criteria := filter.Criteria{City: req.City, State: req.State, Course: req.Course}
	if req.MinCapacity != nil {
		criteria.MinCapacity = strconv.Itoa(*req.MinCapacity)
	}
	key := criteria.Key()

	// 版本在查库前取得：查库期间若有新建，本次结果写入旧版本，不会被读到
	var version int64
	useCache := s.cache != nil
	if useCache {
		v, err := s.cache.ListVersion(ctx)
		if err != nil {
			s.logger.Warn("读取列表缓存版本失败", zap.Error(err))
			useCache = false
		}
		version = v
	}

	if useCache {
		payload, ok, err := s.cache.GetList(ctx, version, key)
		switch {
		case err != nil:
			s.logger.Warn("读取列表缓存失败", zap.String("query", key), zap.Error(err))
		case ok:
			var cached []dto.TrainingCenterResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			s.logger.Warn("列表缓存内容损坏", zap.String("query", key))
		}
	}

	centers, err := s.repo.TrainingCenter.List(ctx, repository.TrainingCenterFilter{
		City:        req.City,
		State:       req.State,
		MinCapacity: req.MinCapacity,
		Course:      req.Course,
	})
	if err != nil {
		s.logger.Error("查询培训中心列表失败", zap.String("query", key), zap.Error(err))
		return nil, err
	}

	result := make([]dto.TrainingCenterResponse, 0, len(centers))
	for i := range centers {
		result = append(result, *toTrainingCenterResponse(&centers[i]))
	}

	if useCache {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.SetList(ctx, version, key, payload, s.cacheTTL); err != nil {
				s.logger.Warn("写入列表缓存失败", zap.String("query", key), zap.Error(err))
			}
		}
	}

	return result, nil
}

// ── 内部辅助方法 ──

// compactCourses 去掉表单中未填写的课程输入项
func compactCourses(courses []string) model.StringArray {
	out := make(model.StringArray, 0, len(courses))
	for _, c := range courses {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func toTrainingCenterResponse(tc *model.TrainingCenter) *dto.TrainingCenterResponse {
	courses := []string(tc.CoursesOffered)
	if courses == nil {
		courses = []string{}
	}
	return &dto.TrainingCenterResponse{
		ID:         tc.ID,
		CenterName: tc.CenterName,
		CenterCode: tc.CenterCode,
		Address: dto.AddressDTO{
			DetailedAddress: tc.Address.DetailedAddress,
			City:            tc.Address.City,
			State:           tc.Address.State,
			Pincode:         tc.Address.Pincode,
		},
		StudentCapacity: tc.StudentCapacity,
		CoursesOffered:  courses,
		CreatedOn:       tc.CreatedOn,
		ContactEmail:    tc.ContactEmail,
		ContactPhone:    tc.ContactPhone,
	}
}
