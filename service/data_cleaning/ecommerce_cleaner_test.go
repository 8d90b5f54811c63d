/*
 * @module service/data_cleaning/ecommerce_cleaner_test
 * @description 电商交易数据清洗器单元测试，覆盖日期/数值转换、关键字段过滤和域范围校验
 * @architecture 测试层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 原始表构造 -> 清洗执行 -> 输出表与统计验证
 * @rules 过滤顺序固定，后续过滤计数只统计此前幸存的行
 * @dependencies testing, testify
 * @refs ecommerce_cleaner.go
 */

package data_cleaning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataclean-service/service/dataset"
	"dataclean-service/testutil"
)

// 场景：age 为 [5, 50, 150] 时只有 50 的行幸存
func TestEcommerceAgeRange(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Age"},
		[][]string{{"5"}, {"50"}, {"150"}})

	out, result := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 50.0, out.At("age", 0).Float())
	assert.Equal(t, 2, result.RemovedInvalidAge)
}

// 闭区间边界 [10,100] 本身保留
func TestEcommerceAgeBoundary(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Age"},
		[][]string{{"9"}, {"10"}, {"100"}, {"101"}})

	out, result := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 2, out.NumRows())
	assert.Equal(t, 10.0, out.At("age", 0).Float())
	assert.Equal(t, 100.0, out.At("age", 1).Float())
	assert.Equal(t, 2, result.RemovedInvalidAge)
}

func TestEcommercePurchaseAmountPositive(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Purchase Amount"},
		[][]string{{"39.98"}, {"0"}, {"-1.5"}, {"abc"}})

	out, result := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 39.98, out.At("purchase_amount", 0).Float())
	assert.Equal(t, 3, result.RemovedInvalidPurchaseAmount)
	for row := 0; row < out.NumRows(); row++ {
		assert.Greater(t, out.At("purchase_amount", row).Float(), 0.0)
	}
}

// order_date 完全缺席时关键字段过滤只作用于 price，不报错
func TestEcommerceMissingOrderDateColumn(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Price", "Quantity"},
		[][]string{
			{"19.99", "2"},
			{"", "1"},
			{"bad", "3"},
		})

	out, result := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 19.99, out.At("price", 0).Float())
	assert.Equal(t, 2, result.RemovedMissingCritical)
}

func TestEcommerceCriticalFieldFilter(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Order Date", "Price"},
		[][]string{
			{"2024-01-15", "19.99"},
			{"not-a-date", "12.00"},
			{"2024-02-01", ""},
		})

	out, result := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 1, out.NumRows())
	assert.Equal(t, 2, result.RemovedMissingCritical)
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(out.At("order_date", 0).Date()))
}

func TestEcommerceDropAllMissingRows(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Price", "Quantity"},
		[][]string{
			{"19.99", "2"},
			{"", ""},
			{"5.50", ""},
		})

	out, result := NewEcommerceCleaner().Clean(table)

	assert.Equal(t, 1, result.RemovedAllMissing)
	// 部分缺失的行不在此步删除
	assert.Equal(t, 2, out.NumRows())
}

// transaction_date 独立转换，解析失败记为缺失但不删行
func TestEcommerceTransactionDateNotCritical(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Price", "Transaction Date"},
		[][]string{
			{"19.99", "garbage"},
			{"5.50", "2024-03-10"},
		})

	out, _ := NewEcommerceCleaner().Clean(table)

	require.Equal(t, 2, out.NumRows())
	assert.True(t, out.At("transaction_date", 0).IsMissing())
	assert.Equal(t, dataset.KindDate, out.At("transaction_date", 1).Kind())
}

// 过滤顺序：年龄过滤在关键字段过滤之后，其计数不含已删除的行
func TestEcommerceFilterOrder(t *testing.T) {
	table := testutil.NewStringTable(t,
		[]string{"Price", "Age"},
		[][]string{
			{"", "150"},      // 关键字段过滤删除，不计入年龄过滤
			{"19.99", "150"}, // 年龄过滤删除
			{"5.50", "30"},
		})

	out, result := NewEcommerceCleaner().Clean(table)

	assert.Equal(t, 1, result.RemovedMissingCritical)
	assert.Equal(t, 1, result.RemovedInvalidAge)
	assert.Equal(t, 1, out.NumRows())
}

func TestEcommerceRowCountNeverGrows(t *testing.T) {
	table := testutil.NewEcommerceRawTable(t)
	out, result := NewEcommerceCleaner().Clean(table)

	assert.LessOrEqual(t, out.NumRows(), table.NumRows())
	assert.Equal(t, result.RowsIn, table.NumRows())
	assert.Equal(t, result.RowsOut, out.NumRows())
	// 原表保持可用，供清洗前画像使用
	assert.Equal(t, 5, table.NumRows())
}
