/*
 * @module service/dataset/table
 * @description 内存列式数据表，有序命名列加等长行约束，各阶段转换返回新表
 * @architecture 数据模型层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 构造 -> 阶段转换（产出新表）-> 落盘或丢弃
 * @rules 所有列长度一致；转换不修改输入表，调用方对前一阶段表的引用保持有效
 * @dependencies 无外部依赖
 * @refs service/data_cleaning, service/loader
 */

package dataset

import "fmt"

// Column 有序单元格序列
type Column []Value

// Clone 深拷贝列
func (c Column) Clone() Column {
	next := make(Column, len(c))
	copy(next, c)
	return next
}

// MissingCount 统计列中缺失值数量
func (c Column) MissingCount() int {
	count := 0
	for _, v := range c {
		if v.IsMissing() {
			count++
		}
	}
	return count
}

// Table 内存列式数据表
type Table struct {
	names   []string
	columns map[string]Column
	rows    int
}

// NewTable 创建空表
func NewTable() *Table {
	return &Table{
		names:   make([]string, 0),
		columns: make(map[string]Column),
	}
}

// AddColumn 追加一列，列长必须与已有列一致
func (t *Table) AddColumn(name string, col Column) error {
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
	}
	if len(t.names) > 0 && len(col) != t.rows {
		return fmt.Errorf("%w: 列 %s 长度 %d, 表行数 %d", ErrColumnLength, name, len(col), t.rows)
	}
	t.names = append(t.names, name)
	t.columns[name] = col
	t.rows = len(col)
	return nil
}

// ColumnNames 返回有序列名副本
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// HasColumn 判断列是否存在
func (t *Table) HasColumn(name string) bool {
	_, exists := t.columns[name]
	return exists
}

// Column 获取指定列，调用方不应修改返回的切片
func (t *Table) Column(name string) (Column, error) {
	col, exists := t.columns[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return col, nil
}

// At 获取指定列在指定行的单元格，列不存在或行越界返回缺失值
func (t *Table) At(name string, row int) Value {
	col, exists := t.columns[name]
	if !exists || row < 0 || row >= len(col) {
		return Missing()
	}
	return col[row]
}

// NumRows 行数
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols 列数
func (t *Table) NumCols() int {
	return len(t.names)
}

// Clone 深拷贝整张表
func (t *Table) Clone() *Table {
	next := NewTable()
	for _, name := range t.names {
		// 列名唯一性由源表保证，忽略错误
		_ = next.AddColumn(name, t.columns[name].Clone())
	}
	return next
}

// WithColumn 替换一列并返回新表，原表不变；列不存在或长度不一致时报错
func (t *Table) WithColumn(name string, col Column) (*Table, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	if len(col) != t.rows {
		return nil, fmt.Errorf("%w: 列 %s 长度 %d, 表行数 %d", ErrColumnLength, name, len(col), t.rows)
	}
	next := NewTable()
	for _, n := range t.names {
		if n == name {
			_ = next.AddColumn(n, col.Clone())
			continue
		}
		_ = next.AddColumn(n, t.columns[n].Clone())
	}
	return next, nil
}

// RenameColumns 按映射函数重命名列并返回新表，原表不变
// 重命名后同名的列只保留首个
func (t *Table) RenameColumns(rename func(string) string) *Table {
	next := NewTable()
	for _, name := range t.names {
		if err := next.AddColumn(rename(name), t.columns[name].Clone()); err != nil {
			continue
		}
	}
	return next
}

// FilterRows 按行谓词过滤并返回新表和移除行数，原表不变
func (t *Table) FilterRows(keep func(row int) bool) (*Table, int) {
	kept := make([]int, 0, t.rows)
	for row := 0; row < t.rows; row++ {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	next := NewTable()
	for _, name := range t.names {
		src := t.columns[name]
		col := make(Column, 0, len(kept))
		for _, row := range kept {
			col = append(col, src[row])
		}
		_ = next.AddColumn(name, col)
	}
	return next, t.rows - len(kept)
}
