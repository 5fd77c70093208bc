package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"traini8/config"
	"traini8/internal/api/handler"
	"traini8/internal/dto"
	"traini8/internal/model"
	"traini8/internal/repository"
	"traini8/internal/service"
)

// memRepo 内存版仓储，仅支持 city 筛选
type memRepo struct {
	centers []model.TrainingCenter
}

func (m *memRepo) Create(_ context.Context, tc *model.TrainingCenter) error {
	tc.ID = int64(len(m.centers) + 1)
	tc.CreatedOn = time.Now().UnixMilli()
	m.centers = append(m.centers, *tc)
	return nil
}

func (m *memRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, c := range m.centers {
		if c.CenterCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) List(_ context.Context, f repository.TrainingCenterFilter) ([]model.TrainingCenter, error) {
	var out []model.TrainingCenter
	for _, c := range m.centers {
		if f.City == "" || c.Address.City == f.City {
			out = append(out, c)
		}
	}
	return out, nil
}

func setupEngine(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Port: 8080, BodyLimit: 1 << 20, CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}}},
		RateLimit: config.RateLimitConfig{Limit: 10, Window: time.Minute},
	}
	repo := &repository.Repository{TrainingCenter: &memRepo{}}
	svc := service.NewService(cfg, repo, nil, zap.NewNop())
	return Setup(cfg, handler.NewHandler(svc), nil, zap.NewNop())
}

func post(t *testing.T, h http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/training-centers", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func alphaDraft() dto.TrainingCenterDraft {
	return dto.TrainingCenterDraft{
		CenterName:      "Alpha",
		CenterCode:      "ABC123XYZ789",
		Address:         dto.AddressDTO{DetailedAddress: "1 Rd", City: "X", State: "Y", Pincode: "123456"},
		StudentCapacity: 10,
		CoursesOffered:  []string{"Math"},
		ContactPhone:    "9876543210",
	}
}

func TestRouter_Health(t *testing.T) {
	h := setupEngine(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_CreateThenList(t *testing.T) {
	h := setupEngine(t)

	w := post(t, h, alphaDraft())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.TrainingCenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.NotZero(t, created.CreatedOn)
	assert.Equal(t, []string{"Math"}, created.CoursesOffered)

	// 重复编码
	w = post(t, h, alphaDraft())
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/training-centers?city=X", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.TrainingCenterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/training-centers?city=Nowhere", nil))
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_CreateInvalidDraft(t *testing.T) {
	h := setupEngine(t)

	d := alphaDraft()
	d.CenterCode = "ABC"
	d.ContactEmail = "not-an-email"
	w := post(t, h, d)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Center code must be exactly 12 alphanumeric characters", body["centerCode"])
	assert.Equal(t, "Invalid email format", body["contactEmail"])
}

func TestRouter_BodyTooLarge(t *testing.T) {
	h := setupEngine(t)

	big := bytes.Repeat([]byte("a"), 2<<20)
	req := httptest.NewRequest(http.MethodPost, "/api/training-centers", bytes.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
