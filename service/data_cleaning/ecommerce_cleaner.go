/*
 * @module service/data_cleaning/ecommerce_cleaner
 * @description 电商交易数据清洗器，负责日期/数值强制转换、关键字段过滤、年龄与金额域校验
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 列名规范化 -> 整行缺失删除 -> 类型强制转换 -> 关键字段过滤 -> 域范围过滤
 * @rules 过滤顺序固定，后续过滤的移除计数只统计此前幸存的行；列缺失时跳过对应步骤
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

// EcommerceCleanResult 电商数据清洗结果统计
type EcommerceCleanResult struct {
	RowsIn                       int           `json:"rows_in"`
	RowsOut                      int           `json:"rows_out"`
	RemovedAllMissing            int           `json:"removed_all_missing"`
	RemovedMissingCritical       int           `json:"removed_missing_critical"`
	RemovedInvalidAge            int           `json:"removed_invalid_age"`
	RemovedInvalidPurchaseAmount int           `json:"removed_invalid_purchase_amount"`
	Duration                     time.Duration `json:"duration"`
}

// EcommerceCleaner 电商交易数据清洗器
type EcommerceCleaner struct{}

// NewEcommerceCleaner 创建电商数据清洗器实例
func NewEcommerceCleaner() *EcommerceCleaner {
	return &EcommerceCleaner{}
}

// Clean 执行电商交易数据清洗，返回新表和清洗统计，输入表不变
func (c *EcommerceCleaner) Clean(t *dataset.Table) (*dataset.Table, *EcommerceCleanResult) {
	startTime := time.Now()
	result := &EcommerceCleanResult{RowsIn: t.NumRows()}

	// 列名规范化
	out := NormalizeColumns(t)

	// 整行缺失的记录直接删除
	out, result.RemovedAllMissing = dropAllMissingRows(out)

	// order_date 转日期，price/quantity 转数值，失败记为缺失
	if out.HasColumn(meta.ColumnOrderDate) {
		out = mapColumn(out, meta.ColumnOrderDate, dataset.CoerceDate)
	}
	if out.HasColumn(meta.ColumnPrice) {
		out = mapColumn(out, meta.ColumnPrice, dataset.CoerceFloat)
	}
	if out.HasColumn(meta.ColumnQuantity) {
		out = mapColumn(out, meta.ColumnQuantity, dataset.CoerceFloat)
	}

	// 关键字段缺失的行删除，只考虑实际存在的关键列
	critical := make([]string, 0, len(meta.EcommerceCriticalFields))
	for _, name := range meta.EcommerceCriticalFields {
		if out.HasColumn(name) {
			critical = append(critical, name)
		}
	}
	if len(critical) > 0 {
		cur := out
		filtered, removed := cur.FilterRows(func(row int) bool {
			for _, name := range critical {
				if cur.At(name, row).IsMissing() {
					return false
				}
			}
			return true
		})
		out = filtered
		result.RemovedMissingCritical = removed
		slog.Info("移除关键字段缺失行",
			"reason", meta.RemovalReasonMissingCriticalField,
			"critical_fields", critical,
			"removed_count", removed)
	}

	// transaction_date 独立转日期，不参与关键字段过滤
	if out.HasColumn(meta.ColumnTransactionDate) {
		out = mapColumn(out, meta.ColumnTransactionDate, dataset.CoerceDate)
	}

	// 年龄合理性校验：仅保留 [10,100] 闭区间内的行
	if out.HasColumn(meta.ColumnAge) {
		out = mapColumn(out, meta.ColumnAge, dataset.CoerceFloat)
		ages, _ := out.Column(meta.ColumnAge)
		filtered, removed := out.FilterRows(func(row int) bool {
			v := ages[row]
			if v.IsMissing() {
				return false
			}
			return v.Float() >= meta.AgeMin && v.Float() <= meta.AgeMax
		})
		out = filtered
		result.RemovedInvalidAge = removed
		slog.Info("移除年龄无效行",
			"reason", meta.RemovalReasonInvalidAge,
			"removed_count", removed)
	}

	// 交易金额校验：仅保留 purchase_amount > 0 的行
	if out.HasColumn(meta.ColumnPurchaseAmount) {
		out = mapColumn(out, meta.ColumnPurchaseAmount, dataset.CoerceFloat)
		amounts, _ := out.Column(meta.ColumnPurchaseAmount)
		filtered, removed := out.FilterRows(func(row int) bool {
			v := amounts[row]
			return !v.IsMissing() && v.Float() > 0
		})
		out = filtered
		result.RemovedInvalidPurchaseAmount = removed
		slog.Info("移除金额无效行",
			"reason", meta.RemovalReasonInvalidPurchaseAmount,
			"removed_count", removed)
	}

	result.RowsOut = out.NumRows()
	result.Duration = time.Since(startTime)
	return out, result
}

// dropAllMissingRows 删除所有列均为缺失值的行
func dropAllMissingRows(t *dataset.Table) (*dataset.Table, int) {
	names := t.ColumnNames()
	if len(names) == 0 {
		return t, 0
	}
	return t.FilterRows(func(row int) bool {
		for _, name := range names {
			if !t.At(name, row).IsMissing() {
				return true
			}
		}
		return false
	})
}
