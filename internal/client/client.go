// Package client 培训中心管理端：REST 客户端、表单控制器与列表控制器。
package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"traini8/internal/dto"
	"traini8/internal/filter"
)

const centersPath = "/api/training-centers"

// Draft 待提交的培训中心
type Draft = dto.TrainingCenterDraft

// TrainingCenter 服务端返回的培训中心
type TrainingCenter = dto.TrainingCenterResponse

// API 控制器依赖的后端接口
type API interface {
	Create(ctx context.Context, d Draft) (*TrainingCenter, error)
	List(ctx context.Context, c filter.Criteria) ([]TrainingCenter, error)
}

// Client 基于 resty 的 REST 客户端，不做重试
type Client struct {
	rc     *resty.Client
	logger *zap.Logger
}

// New 创建客户端，timeout <= 0 时不设超时
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}

	return &Client{rc: rc, logger: logger}
}

// Create POST /api/training-centers
func (c *Client) Create(ctx context.Context, d Draft) (*TrainingCenter, error) {
	var out TrainingCenter
	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(d).
		SetResult(&out).
		Post(centersPath)
	if err != nil {
		c.logger.Warn("创建培训中心请求失败", zap.Error(err))
		return nil, &ServerError{Op: OpCreate, Err: err}
	}

	if !resp.IsSuccess() {
		c.logger.Info("创建培训中心被拒绝",
			zap.Int("status", resp.StatusCode()),
			zap.String("center_code", d.CenterCode),
		)
		return nil, errorFromResponse(OpCreate, resp.StatusCode(), resp.Body())
	}

	return &out, nil
}

// List GET /api/training-centers?<query>，只携带非空条件
func (c *Client) List(ctx context.Context, criteria filter.Criteria) ([]TrainingCenter, error) {
	path := centersPath
	if q := filter.Encode(filter.Build(criteria)); q != "" {
		path += "?" + q
	}

	var out []TrainingCenter
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get(path)
	if err != nil {
		c.logger.Warn("获取培训中心列表失败", zap.Error(err))
		return nil, &ServerError{Op: OpList, Err: err}
	}

	if !resp.IsSuccess() {
		c.logger.Info("获取培训中心列表被拒绝", zap.Int("status", resp.StatusCode()))
		return nil, errorFromResponse(OpList, resp.StatusCode(), resp.Body())
	}

	if out == nil {
		out = []TrainingCenter{}
	}
	return out, nil
}
