/*
 * @module service/loader/csv_loader
 * @description CSV 数据加载与落盘，负责带表头的逗号分隔文件读写和输入编码转换
 * @architecture 外部协作层 - 文件 I/O
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 文件存在性检查 -> 编码转换 -> 逐行解析 -> 表构造 / 表 -> 逐行写出
 * @rules 路径不存在为致命错误；空单元格记为缺失；行字段数不一致为致命错误；输出不带行索引列
 * @dependencies encoding/csv, golang.org/x/text
 * @refs service/dataset, service/pipeline_service.go
 */

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"dataclean-service/service/dataset"
)

// 支持的输入编码
const (
	EncodingUTF8 = "utf-8"
	EncodingGBK  = "gbk"
)

// LoadOptions CSV 读取选项
type LoadOptions struct {
	// Encoding 输入文件编码，空值或 utf-8 时原样读取，gbk 时转码为 UTF-8
	Encoding string
}

// LoadCSV 读取带表头的逗号分隔文件并构造数据表
// 路径不存在时返回包装了 os.ErrNotExist 的错误
func LoadCSV(path string, opts LoadOptions) (*dataset.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("数据文件不存在: %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据文件失败: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(strings.TrimSpace(opts.Encoding)) {
	case "", EncodingUTF8:
	case EncodingGBK:
		r = transform.NewReader(f, simplifiedchinese.GBK.NewDecoder())
	default:
		return nil, fmt.Errorf("不支持的输入编码: %s", opts.Encoding)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV 文件为空: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	columns := make([]dataset.Column, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 字段数不一致等格式错误为致命错误，不做部分恢复
			return nil, fmt.Errorf("解析 CSV 记录失败: %w", err)
		}
		for i, cell := range record {
			// 空单元格记为缺失
			if cell == "" {
				columns[i] = append(columns[i], dataset.Missing())
				continue
			}
			columns[i] = append(columns[i], dataset.NewString(cell))
		}
	}

	t := dataset.NewTable()
	for i, name := range header {
		if err := t.AddColumn(name, columns[i]); err != nil {
			return nil, fmt.Errorf("构造数据表失败: %w", err)
		}
	}
	return t, nil
}

// PersistCSV 把数据表写出为逗号分隔文件，按需创建父目录
// 首行为表头，缺失值写为空字符串，不写行索引列
func PersistCSV(t *dataset.Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	names := t.ColumnNames()
	if err := writer.Write(names); err != nil {
		return fmt.Errorf("写表头失败: %w", err)
	}

	record := make([]string, len(names))
	for row := 0; row < t.NumRows(); row++ {
		for i, name := range names {
			record[i] = t.At(name, row).String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("写数据行失败: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("落盘 CSV 失败: %w", err)
	}
	return nil
}
