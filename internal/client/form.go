package client

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"traini8/internal/dto"
	"traini8/internal/validation"
)

// ErrSubmitInProgress 上一次提交尚未返回
var ErrSubmitInProgress = errors.New("client: submit already in progress")

// FormController 创建表单的状态：草稿、字段错误、横幅与 loading
type FormController struct {
	api    API
	logger *zap.Logger

	mu          sync.Mutex
	draft       Draft
	fieldErrors validation.Errors
	banner      string
	loading     bool

	// OnSuccess 创建成功后回调，通常用于刷新列表
	OnSuccess func(tc *TrainingCenter)
}

// NewFormController 创建表单控制器，草稿带一个空的课程输入
func NewFormController(api API, logger *zap.Logger) *FormController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormController{
		api:    api,
		logger: logger,
		draft:  dto.NewTrainingCenterDraft(),
	}
}

// ── 草稿编辑 ──

// Draft 返回草稿副本
func (f *FormController) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyDraft(f.draft)
}

// Update 在锁内修改草稿
func (f *FormController) Update(fn func(d *Draft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
}

// AddCourse 追加一个空课程输入
func (f *FormController) AddCourse() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.CoursesOffered = append(f.draft.CoursesOffered, "")
}

// SetCourse 修改第 i 个课程，越界返回 false
func (f *FormController) SetCourse(i int, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.draft.CoursesOffered) {
		return false
	}
	f.draft.CoursesOffered[i] = value
	return true
}

// RemoveCourse 删除第 i 个课程；只剩一个时清空而不删除
func (f *FormController) RemoveCourse(i int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	courses := f.draft.CoursesOffered
	if i < 0 || i >= len(courses) {
		return false
	}
	if len(courses) == 1 {
		courses[0] = ""
		return true
	}
	f.draft.CoursesOffered = append(courses[:i:i], courses[i+1:]...)
	return true
}

// Reset 清空草稿与所有错误
func (f *FormController) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// ── 状态读取 ──

// FieldErrors 最近一次本地校验的字段错误
func (f *FormController) FieldErrors() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(validation.Errors, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// Banner 当前横幅文案，空串表示无
func (f *FormController) Banner() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.banner
}

// Loading 是否有提交在途
func (f *FormController) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// DismissError 关闭横幅
func (f *FormController) DismissError() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.banner = ""
}

// ── 提交 ──

// Submit 先做本地校验，失败时只记录字段错误，不进入 loading，也不发请求。
// 成功后清空草稿并回调 OnSuccess；服务端失败写入横幅。
func (f *FormController) Submit(ctx context.Context) (*TrainingCenter, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	draft := copyDraft(f.draft)
	if errs := validation.Validate(&draft); !errs.Valid() {
		f.fieldErrors = errs
		f.mu.Unlock()
		f.logger.Debug("表单校验未通过", zap.Strings("fields", errs.Fields()))
		return nil, &ValidationError{Fields: errs}
	}

	f.fieldErrors = nil
	f.banner = ""
	f.loading = true
	f.mu.Unlock()

	tc, err := f.api.Create(ctx, draft)

	f.mu.Lock()
	f.loading = false
	if err != nil {
		f.banner = Describe(err)
		f.mu.Unlock()
		f.logger.Warn("创建培训中心失败", zap.String("center_code", draft.CenterCode), zap.Error(err))
		return nil, err
	}
	f.resetLocked()
	onSuccess := f.OnSuccess
	f.mu.Unlock()

	f.logger.Info("培训中心已创建", zap.Int64("id", tc.ID), zap.String("center_code", tc.CenterCode))
	if onSuccess != nil {
		onSuccess(tc)
	}
	return tc, nil
}

func (f *FormController) resetLocked() {
	f.draft = dto.NewTrainingCenterDraft()
	f.fieldErrors = nil
	f.banner = ""
}

func copyDraft(d Draft) Draft {
	out := d
	out.CoursesOffered = append([]string(nil), d.CoursesOffered...)
	return out
}
