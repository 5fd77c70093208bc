package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"traini8/internal/filter"
	"traini8/pkg/debounce"
)

// ListController 列表视图的状态：筛选条件、结果快照与横幅。
// 筛选变化经防抖后才请求，同一时刻最多一个待发请求。
type ListController struct {
	api       API
	logger    *zap.Logger
	debouncer *debounce.Debouncer

	mu       sync.Mutex
	criteria filter.Criteria
	centers  []TrainingCenter
	banner   string
	loading  bool
	seq      uint64 // 最近一次发出的请求序号，旧响应据此丢弃
	closed   bool

	// OnChange 每次请求结束（成功或失败）后回调
	OnChange func()
}

// NewListController 创建列表控制器，delay <= 0 时使用 500ms
func NewListController(api API, delay time.Duration, logger *zap.Logger) *ListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListController{
		api:       api,
		logger:    logger,
		debouncer: debounce.New(delay),
		centers:   []TrainingCenter{},
	}
}

// Start 安排首次（无筛选）加载
func (l *ListController) Start() {
	l.schedule()
}

// SetFilter 替换全部筛选条件并安排一次防抖加载
func (l *ListController) SetFilter(c filter.Criteria) {
	l.mu.Lock()
	l.criteria = c
	l.mu.Unlock()
	l.schedule()
}

// SetField 修改单个筛选条件，key 取 city/state/minCapacity/course
func (l *ListController) SetField(key, value string) error {
	l.mu.Lock()
	ok := l.criteria.Set(key, value)
	l.mu.Unlock()
	if !ok {
		return fmt.Errorf("client: unknown filter %q", key)
	}
	l.schedule()
	return nil
}

// Refresh 取消待发请求并立即按当前条件加载，用于创建成功后的刷新
func (l *ListController) Refresh(ctx context.Context) error {
	l.debouncer.Cancel()
	return l.fetch(ctx)
}

// Close 取消待发请求，之后不再发出任何请求；在途请求不会被中断
func (l *ListController) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.debouncer.Stop()
}

// ── 状态读取 ──

// Criteria 当前筛选条件
func (l *ListController) Criteria() filter.Criteria {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.criteria
}

// Centers 最近一次成功加载的结果副本
func (l *ListController) Centers() []TrainingCenter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]TrainingCenter{}, l.centers...)
}

// Banner 当前横幅文案
func (l *ListController) Banner() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.banner
}

// Loading 是否有请求在途
func (l *ListController) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// DismissError 关闭横幅
func (l *ListController) DismissError() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.banner = ""
}

// ── 内部 ──

func (l *ListController) schedule() {
	l.debouncer.Trigger(func() {
		_ = l.fetch(context.Background())
	})
}

func (l *ListController) fetch(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.seq++
	seq := l.seq
	criteria := l.criteria
	l.loading = true
	l.mu.Unlock()

	centers, err := l.api.List(ctx, criteria)

	l.mu.Lock()
	if seq != l.seq {
		// 已有更新的请求发出
		l.mu.Unlock()
		return err
	}
	l.loading = false
	if err != nil {
		l.banner = Describe(err)
	} else {
		l.centers = centers
		l.banner = ""
	}
	onChange := l.OnChange
	l.mu.Unlock()

	if err != nil {
		l.logger.Warn("加载培训中心列表失败", zap.String("query", criteria.Key()), zap.Error(err))
	} else {
		l.logger.Debug("培训中心列表已更新", zap.String("query", criteria.Key()), zap.Int("count", len(centers)))
	}
	if onChange != nil {
		onChange()
	}
	return err
}
