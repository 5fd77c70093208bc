package service

import (
	"context"
	"strings"
	"time"

	"traini8/internal/model"
	"traini8/internal/repository"
)

// ── Mock TrainingCenterRepository ──

type mockTrainingCenterRepo struct {
	centers   []*model.TrainingCenter
	nextID    int64
	listCalls int
	createErr error
	listErr   error
	onList    func() // 在 List 读取数据后执行
}

func newMockTrainingCenterRepo() *mockTrainingCenterRepo {
	return &mockTrainingCenterRepo{nextID: 1}
}

func (m *mockTrainingCenterRepo) Create(_ context.Context, tc *model.TrainingCenter) error {
	if m.createErr != nil {
		return m.createErr
	}
	tc.ID = m.nextID
	tc.CreatedOn = time.Now().UnixMilli()
	m.nextID++
	m.centers = append(m.centers, tc)
	return nil
}

func (m *mockTrainingCenterRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range m.centers {
		if c.CenterCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTrainingCenterRepo) List(_ context.Context, f repository.TrainingCenterFilter) ([]model.TrainingCenter, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.TrainingCenter
	for _, c := range m.centers {
		if f.City != "" && !containsFold(c.Address.City, f.City) {
			continue
		}
		if f.State != "" && !containsFold(c.Address.State, f.State) {
			continue
		}
		if f.MinCapacity != nil && c.StudentCapacity < *f.MinCapacity {
			continue
		}
		if f.Course != "" && !anyContainsFold(c.CoursesOffered, f.Course) {
			continue
		}
		result = append(result, *c)
	}
	if m.onList != nil {
		m.onList()
	}
	return result, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func anyContainsFold(items []string, sub string) bool {
	for _, it := range items {
		if containsFold(it, sub) {
			return true
		}
	}
	return false
}

// ── Mock ListCache ──

type mockListCache struct {
	version     int64
	entries     map[int64]map[string][]byte
	invalidated int
	getErr      error
	versionErr  error
}

func newMockListCache() *mockListCache {
	return &mockListCache{entries: make(map[int64]map[string][]byte)}
}

// current 当前版本下的缓存条目
func (m *mockListCache) current() map[string][]byte {
	return m.entries[m.version]
}

func (m *mockListCache) ListVersion(_ context.Context) (int64, error) {
	return m.version, m.versionErr
}

func (m *mockListCache) GetList(_ context.Context, version int64, query string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	b, ok := m.entries[version][query]
	return b, ok, nil
}

func (m *mockListCache) SetList(_ context.Context, version int64, query string, payload []byte, _ time.Duration) error {
	if m.entries[version] == nil {
		m.entries[version] = make(map[string][]byte)
	}
	m.entries[version][query] = payload
	return nil
}

func (m *mockListCache) InvalidateList(_ context.Context) error {
	m.invalidated++
	m.version++
	return nil
}
