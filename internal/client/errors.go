package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"traini8/internal/validation"
)

// Op 标识失败发生在哪个调用上，决定兜底文案
type Op string

const (
	OpCreate Op = "create"
	OpList   Op = "list"
)

// ── 横幅文案 ──

const (
	MsgDuplicateCode   = "A training center with this code already exists"
	MsgInvalidData     = "Invalid training center data"
	MsgCreateFailed    = "Failed to create training center"
	MsgFetchFailed     = "Failed to fetch centers"
	MsgUnknown         = "An error occurred"
	centerCodeErrorFmt = "Center Code Error: %s"
)

// ── 错误类型 ──

// ValidationError 本地校验失败，按字段展示，不会发出请求
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %v", e.Fields.Fields())
}

// ConflictError 409，培训中心编码重复
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Message
}

// BadRequestError 400，服务端校验失败
type BadRequestError struct {
	Message string
	Fields  map[string]string
}

func (e *BadRequestError) Error() string {
	if e.Message == "" {
		return "bad request"
	}
	return "bad request: " + e.Message
}

// ServerError 其它非 2xx 响应或网络层失败
type ServerError struct {
	Op         Op
	StatusCode int // 网络层失败时为 0
	Message    string
	Err        error
}

func (e *ServerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: status %d %s", e.Op, e.StatusCode, e.Message)
}

func (e *ServerError) Unwrap() error { return e.Err }

// Describe 把任意错误归约为一条横幅文案
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return MsgDuplicateCode
	}

	var badReq *BadRequestError
	if errors.As(err, &badReq) {
		if msg, ok := badReq.Fields[validation.FieldCenterCode]; ok && msg != "" {
			return fmt.Sprintf(centerCodeErrorFmt, msg)
		}
		if badReq.Message != "" {
			return badReq.Message
		}
		return MsgInvalidData
	}

	var srv *ServerError
	if errors.As(err, &srv) {
		switch srv.Op {
		case OpList:
			return MsgFetchFailed
		case OpCreate:
			if srv.Message != "" {
				return srv.Message
			}
			return MsgCreateFailed
		}
	}

	return MsgUnknown
}

// errorFromResponse 根据状态码与响应体构造错误
func errorFromResponse(op Op, status int, body []byte) error {
	message, fields := parseErrorBody(body)

	if op == OpCreate {
		switch status {
		case http.StatusConflict:
			return &ConflictError{Message: message}
		case http.StatusBadRequest:
			return &BadRequestError{Message: message, Fields: fields}
		}
	}
	return &ServerError{Op: op, StatusCode: status, Message: message}
}

// parseErrorBody 解析 {"message": "...", "<field>": "..."}，非 JSON 时返回空值
func parseErrorBody(body []byte) (string, map[string]string) {
	if len(body) == 0 {
		return "", nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", nil
	}

	var message string
	fields := make(map[string]string)
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		switch k {
		case "message":
			message = s
		case "details":
		default:
			fields[k] = s
		}
	}
	return message, fields
}
