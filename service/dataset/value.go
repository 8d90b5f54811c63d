/*
 * @module service/dataset/value
 * @description 单元格值类型定义，带独立缺失标记的类型化数据
 * @architecture 数据模型层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 无状态值对象
 * @rules 缺失标记与任何有效域值互斥，转换失败统一落到缺失而不是默认值
 * @dependencies time
 * @refs service/dataset/table.go, service/dataset/coerce.go
 */

package dataset

import (
	"strconv"
	"time"
)

// Kind 单元格值的类型
type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindFloat
	KindInt
	KindBool
	KindDate
)

// Value 单元格值，类型化数据加缺失标记
type Value struct {
	kind Kind
	str  string
	num  float64
	i    int64
	b    bool
	t    time.Time
}

// Missing 构造缺失值
func Missing() Value {
	return Value{kind: KindMissing}
}

// NewString 构造字符串值
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewFloat 构造浮点数值
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, num: f}
}

// NewInt 构造整数值
func NewInt(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// NewBool 构造布尔值
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewDate 构造日期值
func NewDate(t time.Time) Value {
	return Value{kind: KindDate, t: t}
}

// Kind 返回值类型
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing 判断是否为缺失值
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float 返回浮点数值，非浮点类型返回 0
func (v Value) Float() float64 {
	if v.kind == KindFloat {
		return v.num
	}
	if v.kind == KindInt {
		return float64(v.i)
	}
	return 0
}

// Int 返回整数值，非整数类型返回 0
func (v Value) Int() int64 {
	if v.kind == KindInt {
		return v.i
	}
	return 0
}

// Bool 返回布尔值，非布尔类型返回 false
func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.b
	}
	return false
}

// Date 返回日期值，非日期类型返回零值
func (v Value) Date() time.Time {
	if v.kind == KindDate {
		return v.t
	}
	return time.Time{}
}

// String 返回值的字符串表示，缺失值返回空字符串
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		// 无时间分量时只输出日期部分
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 {
			return v.t.Format("2006-01-02")
		}
		return v.t.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Equal 判断两个值是否相等，缺失值仅与缺失值相等
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindString:
		return v.str == o.str
	case KindFloat:
		return v.num == o.num
	case KindInt:
		return v.i == o.i
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Equal(o.t)
	default:
		return false
	}
}
