/*
 * @module service/data_cleaning/profiler
 * @description 数据画像器，输出表在某个管道阶段的行列数、缺失统计和列类型推断
 * @architecture 分层架构 - 数据质量观察层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 表读取 -> 画像统计 -> 日志输出
 * @rules 只读观察者，不得修改输入表；Enabled 为 false 时不输出
 * @dependencies log/slog
 * @refs service/dataset, service/meta
 */

package data_cleaning

import (
	"log/slog"

	"dataclean-service/service/dataset"
	"dataclean-service/service/meta"
)

// ColumnProfile 单列画像
type ColumnProfile struct {
	Name         string `json:"name"`
	DataType     string `json:"data_type"`
	MissingCount int    `json:"missing_count"`
}

// TableProfile 表画像
type TableProfile struct {
	Label       string          `json:"label"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Profiler 数据画像器
type Profiler struct {
	Enabled bool
}

// NewProfiler 创建数据画像器实例
func NewProfiler(enabled bool) *Profiler {
	return &Profiler{Enabled: enabled}
}

// Report 生成表画像并经日志通道输出
// 返回画像供调用方检查，Enabled 为 false 时只统计不输出
func (p *Profiler) Report(t *dataset.Table, label string) *TableProfile {
	profile := BuildProfile(t, label)
	if !p.Enabled {
		return profile
	}

	slog.Info("数据画像",
		"label", profile.Label,
		"rows", profile.RowCount,
		"columns", profile.ColumnCount)
	for _, col := range profile.Columns {
		slog.Info("列画像",
			"label", profile.Label,
			"column", col.Name,
			"data_type", col.DataType,
			"missing_count", col.MissingCount)
	}
	return profile
}

// BuildProfile 统计表画像，不产生副作用
func BuildProfile(t *dataset.Table, label string) *TableProfile {
	profile := &TableProfile{
		Label:       label,
		RowCount:    t.NumRows(),
		ColumnCount: t.NumCols(),
		Columns:     make([]ColumnProfile, 0, t.NumCols()),
	}
	for _, name := range t.ColumnNames() {
		col, err := t.Column(name)
		if err != nil {
			continue
		}
		profile.Columns = append(profile.Columns, ColumnProfile{
			Name:         name,
			DataType:     inferColumnType(col),
			MissingCount: col.MissingCount(),
		})
	}
	return profile
}

// inferColumnType 推断列类型：取非缺失单元格的主导类型，全部缺失时为 empty
func inferColumnType(col dataset.Column) string {
	counts := make(map[dataset.Kind]int)
	for _, v := range col {
		if v.IsMissing() {
			continue
		}
		counts[v.Kind()]++
	}
	if len(counts) == 0 {
		return meta.DataTypeEmpty
	}

	var dominant dataset.Kind
	max := -1
	for kind, count := range counts {
		if count > max {
			dominant = kind
			max = count
		}
	}
	switch dominant {
	case dataset.KindString:
		return meta.DataTypeString
	case dataset.KindFloat:
		return meta.DataTypeFloat
	case dataset.KindInt:
		return meta.DataTypeInt
	case dataset.KindBool:
		return meta.DataTypeBool
	case dataset.KindDate:
		return meta.DataTypeDate
	default:
		return meta.DataTypeUnknown
	}
}
