/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数，提供测试表工厂和临时 CSV 文件构造
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 测试数据构造 -> 测试执行 -> 临时资源自动清理
 * @rules 提供可重用的测试工具，确保测试环境的一致性
 * @dependencies testing, dataclean-service/service/dataset
 * @refs service/data_cleaning, service/loader
 */

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"dataclean-service/service/dataset"
)

// NewStringTable 从表头和字符串行构造测试表，空字符串单元格记为缺失
func NewStringTable(t *testing.T, header []string, rows [][]string) *dataset.Table {
	t.Helper()

	table := dataset.NewTable()
	for i, name := range header {
		col := make(dataset.Column, 0, len(rows))
		for _, row := range rows {
			if row[i] == "" {
				col = append(col, dataset.Missing())
				continue
			}
			col = append(col, dataset.NewString(row[i]))
		}
		if err := table.AddColumn(name, col); err != nil {
			t.Fatalf("构造测试表失败: %v", err)
		}
	}
	return table
}

// NewTelcoRawTable 构造典型的电信流失原始测试表
func NewTelcoRawTable(t *testing.T) *dataset.Table {
	t.Helper()

	return NewStringTable(t,
		[]string{"customerID", "SeniorCitizen", "Partner", "MultipleLines", "TotalCharges", "Churn"},
		[][]string{
			{"7590-VHVEG", "0", "Yes", "No phone service", "29.85", "No"},
			{"5575-GNVDE", "1", "No", "No", "1889.5", "No"},
			{"3668-QPYBK", "0", "No", "Yes", " ", "Yes"},
		})
}

// NewEcommerceRawTable 构造典型的电商交易原始测试表
func NewEcommerceRawTable(t *testing.T) *dataset.Table {
	t.Helper()

	return NewStringTable(t,
		[]string{"Order Date", "Price", "Quantity", "Age", "Purchase Amount"},
		[][]string{
			{"2024-01-15", "19.99", "2", "34", "39.98"},
			{"2024-02-01", "5.50", "1", "5", "5.50"},
			{"not-a-date", "12.00", "3", "50", "36.00"},
			{"2024-03-10", "8.25", "4", "150", "33.00"},
			{"2024-04-02", "3.00", "1", "28", "0"},
		})
}

// WriteTempCSV 写临时 CSV 文件并返回路径，测试结束自动清理
func WriteTempCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写临时 CSV 失败: %v", err)
	}
	return path
}
