/*
 * @module service/data_cleaning/normalizer
 * @description 列名规范化器，去除首尾空白、转小写、内部空格替换为下划线
 * @architecture 分层架构 - 数据清洗层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 原始列名 -> 规范化列名
 * @rules 规范化幂等，零列表原样返回，不改动单元格数据
 * @dependencies strings
 * @refs service/dataset
 */

package data_cleaning

import (
	"strings"

	"dataclean-service/service/dataset"
)

// NormalizeColumnName 规范化单个列名
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// NormalizeColumns 规范化表的全部列名，单元格数据不变，返回新表
func NormalizeColumns(t *dataset.Table) *dataset.Table {
	return t.RenameColumns(NormalizeColumnName)
}
