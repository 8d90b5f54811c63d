/*
 * @module service/dataset/coerce
 * @description 单元格类型强制转换，负责数值、日期、布尔转换，失败统一落到缺失值
 * @architecture 数据模型层 - 无状态转换函数
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 输入单元格 -> 转换逻辑 -> 输出单元格或缺失值
 * @rules 转换失败不抛错误，转换为缺失标记；空白字符串视为缺失
 * @dependencies github.com/spf13/cast, time
 * @refs service/data_cleaning
 */

package dataset

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// dateLayouts 日期解析尝试的格式，按常见程度排序
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// CoerceFloat 强制转换为浮点数
// 空白字符串视为缺失，解析失败返回缺失值
func CoerceFloat(v Value) Value {
	switch v.Kind() {
	case KindMissing:
		return v
	case KindFloat:
		return v
	case KindInt:
		return NewFloat(float64(v.Int()))
	case KindBool:
		if v.Bool() {
			return NewFloat(1)
		}
		return NewFloat(0)
	case KindDate:
		return Missing()
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return Missing()
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return Missing()
	}
	return NewFloat(f)
}

// CoerceDate 强制转换为日期，解析失败返回缺失值
func CoerceDate(v Value) Value {
	switch v.Kind() {
	case KindMissing:
		return v
	case KindDate:
		return v
	case KindString:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return Missing()
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return NewDate(t)
			}
		}
		return Missing()
	default:
		return Missing()
	}
}

// CoerceBool 强制转换为布尔值
// 规则：数值零与 "false" 为假，非零数值与 "true" 为真，无法解析记为缺失
func CoerceBool(v Value) Value {
	switch v.Kind() {
	case KindMissing:
		return v
	case KindBool:
		return v
	case KindFloat:
		return NewBool(v.Float() != 0)
	case KindInt:
		return NewBool(v.Int() != 0)
	case KindDate:
		return Missing()
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return Missing()
	}
	// 先按数值解释，保证 "0"/"1" 与数值 0/1 行为一致
	if f, err := cast.ToFloat64E(s); err == nil {
		return NewBool(f != 0)
	}
	if b, err := cast.ToBoolE(s); err == nil {
		return NewBool(b)
	}
	return Missing()
}
