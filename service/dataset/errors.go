package dataset

import "errors"

var (
	// ErrColumnNotFound 列不存在
	ErrColumnNotFound = errors.New("列不存在")
	// ErrColumnLength 列长度与表行数不一致
	ErrColumnLength = errors.New("列长度与表行数不一致")
	// ErrDuplicateColumn 列名重复
	ErrDuplicateColumn = errors.New("列名重复")
)
