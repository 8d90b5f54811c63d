/*
 * @module service/data_cleaning/telco_churn_cleaner
 * @description 电信客户流失数据清洗器，负责 totalcharges 数值化、无效行过滤、是/否与服务状态列编码
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 列名规范化 -> 数值强制转换 -> 无效行过滤 -> 分类编码 -> 布尔编码
 * @rules 每一步以相关列存在为前提，列缺失时跳过该步骤而不报错；过滤只删行不增行
 * @dependencies dataclean-service/service/dataset, dataclean-service/service/meta
 * @refs service/data_cleaning/normalizer.go, service/pipeline_service.go
 */

package data_cleaning

import (
	"log/slog"
	"time"

	"dataclean-service/service/dataset"
	"dataclean-service/service/meta"
)

// TelcoCleanResult 电信数据清洗结果统计
type TelcoCleanResult struct {
	RowsIn                     int           `json:"rows_in"`
	RowsOut                    int           `json:"rows_out"`
	RemovedInvalidTotalCharges int           `json:"removed_invalid_totalcharges"`
	EncodedColumns             []string      `json:"encoded_columns"`
	Duration                   time.Duration `json:"duration"`
}

// TelcoChurnCleaner 电信客户流失数据清洗器
type TelcoChurnCleaner struct{}

// NewTelcoChurnCleaner 创建电信数据清洗器实例
func NewTelcoChurnCleaner() *TelcoChurnCleaner {
	return &TelcoChurnCleaner{}
}

// Clean 执行电信流失数据清洗，返回新表和清洗统计，输入表不变
func (c *TelcoChurnCleaner) Clean(t *dataset.Table) (*dataset.Table, *TelcoCleanResult) {
	startTime := time.Now()
	result := &TelcoCleanResult{
		RowsIn:         t.NumRows(),
		EncodedColumns: make([]string, 0),
	}

	// 列名规范化
	out := NormalizeColumns(t)

	// totalcharges 数值化并删除无效行
	// 空白单元格与解析失败统一记为缺失，缺失行整行删除
	if out.HasColumn(meta.ColumnTotalCharges) {
		out = mapColumn(out, meta.ColumnTotalCharges, dataset.CoerceFloat)

		charges, _ := out.Column(meta.ColumnTotalCharges)
		filtered, removed := out.FilterRows(func(row int) bool {
			return !charges[row].IsMissing()
		})
		out = filtered
		result.RemovedInvalidTotalCharges = removed
		slog.Info("移除 totalcharges 无效行",
			"reason", meta.RemovalReasonInvalidTotalCharges,
			"removed_count", removed)
	}

	// 是/否列编码为三态 0/1/缺失
	for _, name := range meta.TelcoYesNoColumns {
		if !out.HasColumn(name) {
			continue
		}
		out = mapColumn(out, name, mapYesNo)
		result.EncodedColumns = append(result.EncodedColumns, name)
	}

	// 服务状态列先把"无服务"字面值改写为 No 再编码
	for _, name := range meta.TelcoServiceColumns {
		if !out.HasColumn(name) {
			continue
		}
		out = mapColumn(out, name, func(v dataset.Value) dataset.Value {
			return mapYesNo(rewriteNoService(v))
		})
		result.EncodedColumns = append(result.EncodedColumns, name)
	}

	// seniorcitizen 布尔化：数值零/"false" 为假，非零/"true" 为真，无法解析记为缺失
	if out.HasColumn(meta.ColumnSeniorCitizen) {
		out = mapColumn(out, meta.ColumnSeniorCitizen, dataset.CoerceBool)
	}

	result.RowsOut = out.NumRows()
	result.Duration = time.Since(startTime)
	return out, result
}

// mapYesNo Yes→1、No→0，其余值（含缺失）一律记为缺失
func mapYesNo(v dataset.Value) dataset.Value {
	if v.Kind() != dataset.KindString {
		return dataset.Missing()
	}
	switch v.String() {
	case meta.ValueYes:
		return dataset.NewInt(1)
	case meta.ValueNo:
		return dataset.NewInt(0)
	default:
		return dataset.Missing()
	}
}

// rewriteNoService 把"无互联网/电话服务"字面值改写为 No，其余原样返回
func rewriteNoService(v dataset.Value) dataset.Value {
	if v.Kind() != dataset.KindString {
		return v
	}
	switch v.String() {
	case meta.ValueNoInternetService, meta.ValueNoPhoneService:
		return dataset.NewString(meta.ValueNo)
	default:
		return v
	}
}

// mapColumn 对单列逐格应用转换函数并返回新表，列不存在时原样返回
func mapColumn(t *dataset.Table, name string, fn func(dataset.Value) dataset.Value) *dataset.Table {
	col, err := t.Column(name)
	if err != nil {
		return t
	}
	next := make(dataset.Column, len(col))
	for i, v := range col {
		next[i] = fn(v)
	}
	out, err := t.WithColumn(name, next)
	if err != nil {
		return t
	}
	return out
}
