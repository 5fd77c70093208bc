package repository

import (
	"context"

	"gorm.io/gorm"

	"traini8/internal/model"
)

// TrainingCenterFilter 列表筛选条件，零值字段不参与筛选
type TrainingCenterFilter struct {
	City        string
	State       string
	MinCapacity *int
	Course      string
}

// TrainingCenterRepository 培训中心数据访问接口
type TrainingCenterRepository interface {
	Create(ctx context.Context, tc *model.TrainingCenter) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, f TrainingCenterFilter) ([]model.TrainingCenter, error)
}

type trainingCenterRepo struct {
	db *gorm.DB
}

// NewTrainingCenterRepo 创建 TrainingCenterRepository 实例
func NewTrainingCenterRepo(db *gorm.DB) TrainingCenterRepository {
	return &trainingCenterRepo{db: db}
}

func (r *trainingCenterRepo) Create(ctx context.Context, tc *model.TrainingCenter) error {
	return r.db.WithContext(ctx).Create(tc).Error
}

func (r *trainingCenterRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TrainingCenter{}).
		Where("center_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// List city/state/course 均为不区分大小写的子串匹配，course 命中任一课程即可
func (r *trainingCenterRepo) List(ctx context.Context, f TrainingCenterFilter) ([]model.TrainingCenter, error) {
	var centers []model.TrainingCenter
	db := r.db.WithContext(ctx)

	if f.City != "" {
		db = db.Where("city ILIKE ?", likePattern(f.City))
	}
	if f.State != "" {
		db = db.Where("state ILIKE ?", likePattern(f.State))
	}
	if f.MinCapacity != nil {
		db = db.Where("student_capacity >= ?", *f.MinCapacity)
	}
	if f.Course != "" {
		db = db.Where("EXISTS (SELECT 1 FROM unnest(courses_offered) AS co WHERE co ILIKE ?)", likePattern(f.Course))
	}

	err := db.Order("id ASC").Find(&centers).Error
	return centers, err
}
