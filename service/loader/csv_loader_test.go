/*
 * @module service/loader/csv_loader_test
 * @description CSV 加载与落盘单元测试，覆盖不存在路径、空单元格、畸形行、编码转换和往返写读
 * @architecture 测试层 - 使用临时目录的文件 I/O 测试
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 临时文件构造 -> 加载/落盘 -> 结果验证
 * @rules 路径不存在为致命错误；字段数不一致为致命错误；输出不带行索引列
 * @dependencies testing, testify, golang.org/x/text
 * @refs csv_loader.go
 */

package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"dataclean-service/service/dataset"
	"dataclean-service/testutil"
)

func TestLoadCSVNotFound(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCSVBasic(t *testing.T) {
	path := testutil.WriteTempCSV(t, "basic.csv",
		"TotalCharges,Churn\n29.85,No\n , Yes\n,No\n")

	table, err := LoadCSV(path, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"TotalCharges", "Churn"}, table.ColumnNames())
	assert.Equal(t, 3, table.NumRows())
	// 非空单元格按原始字符串保留，包括纯空白
	assert.Equal(t, "29.85", table.At("TotalCharges", 0).String())
	assert.Equal(t, " ", table.At("TotalCharges", 1).String())
	// 空单元格记为缺失
	assert.True(t, table.At("TotalCharges", 2).IsMissing())
}

func TestLoadCSVRaggedRowFatal(t *testing.T) {
	path := testutil.WriteTempCSV(t, "ragged.csv",
		"a,b\n1,2\n3,4,5\n")

	_, err := LoadCSV(path, LoadOptions{})
	assert.Error(t, err)
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := testutil.WriteTempCSV(t, "empty.csv", "")

	_, err := LoadCSV(path, LoadOptions{})
	assert.Error(t, err)
}

func TestLoadCSVUnsupportedEncoding(t *testing.T) {
	path := testutil.WriteTempCSV(t, "enc.csv", "a\n1\n")

	_, err := LoadCSV(path, LoadOptions{Encoding: "big5"})
	assert.Error(t, err)
}

func TestLoadCSVGBK(t *testing.T) {
	encoder := simplifiedchinese.GBK.NewEncoder()
	content, err := encoder.String("城市,人数\n北京,10\n")
	require.NoError(t, err)

	path := testutil.WriteTempCSV(t, "gbk.csv", content)

	table, err := LoadCSV(path, LoadOptions{Encoding: "gbk"})
	require.NoError(t, err)
	assert.Equal(t, []string{"城市", "人数"}, table.ColumnNames())
	assert.Equal(t, "北京", table.At("城市", 0).String())
}

func TestPersistCSVRoundTrip(t *testing.T) {
	table := dataset.NewTable()
	require.NoError(t, table.AddColumn("name", dataset.Column{
		dataset.NewString("a"), dataset.NewString("b"),
	}))
	require.NoError(t, table.AddColumn("amount", dataset.Column{
		dataset.NewFloat(29.85), dataset.Missing(),
	}))

	// 父目录不存在时按需创建
	path := filepath.Join(t.TempDir(), "processed", "out.csv")
	require.NoError(t, PersistCSV(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	// 表头在首行，不写行索引列
	assert.Equal(t, "name,amount", lines[0])
	assert.Equal(t, "a,29.85", lines[1])
	// 缺失值写为空字符串
	assert.Equal(t, "b,", lines[2])

	reloaded, err := LoadCSV(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.NumRows())
	assert.True(t, reloaded.At("amount", 1).IsMissing())
}
