// Package filter 将列表筛选条件转换为规范化的查询参数。
package filter

import (
	"net/url"
	"strings"
)

// 查询参数名，顺序即输出顺序
const (
	KeyCity        = "city"
	KeyState       = "state"
	KeyMinCapacity = "minCapacity"
	KeyCourse      = "course"
)

// Criteria 列表筛选条件，空字符串表示不筛选
type Criteria struct {
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	MinCapacity string `json:"minCapacity,omitempty"`
	Course      string `json:"course,omitempty"`
}

// Pair 单个查询参数
type Pair struct {
	Key   string
	Value string
}

// Build 按 city, state, minCapacity, course 的固定顺序输出非空条件。
// "0" 视为有效值；结果为空表示拉取全量列表。
func Build(c Criteria) []Pair {
	fields := [...]Pair{
		{KeyCity, c.City},
		{KeyState, c.State},
		{KeyMinCapacity, c.MinCapacity},
		{KeyCourse, c.Course},
	}

	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		if f.Value != "" {
			pairs = append(pairs, f)
		}
	}
	return pairs
}

// Encode 按给定顺序编码为查询字符串。url.Values.Encode 会按键排序，这里不能用。
func Encode(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Key 规范化查询字符串，同时用作服务端列表缓存的键
func (c Criteria) Key() string {
	return Encode(Build(c))
}

// IsEmpty 全部条件为空
func (c Criteria) IsEmpty() bool {
	return len(Build(c)) == 0
}

// Set 按参数名设置单个条件，未知参数名返回 false
func (c *Criteria) Set(key, value string) bool {
	switch key {
	case KeyCity:
		c.City = value
	case KeyState:
		c.State = value
	case KeyMinCapacity:
		c.MinCapacity = value
	case KeyCourse:
		c.Course = value
	default:
		return false
	}
	return true
}
