package entity

import "errors"

// ErrTagMissing 表示要关联的标签在写入时已不存在（例如被并发删除）。
var ErrTagMissing = errors.New("tag does not exist")
