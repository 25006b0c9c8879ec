package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrTitleRequired 表示创建/更新文章时标题为空
var ErrTitleRequired = errors.New("validation: title must not be empty")

// ErrSlugEmpty 表示从标题派生出的 slug 为空（标题不含任何字母或数字）
// - 在落库前拦截，避免持久化空 slug
var ErrSlugEmpty = errors.New("validation: derived slug is empty")

// ErrInvalidStatus 表示状态取值不在 draft/published/scheduled 之内
var ErrInvalidStatus = errors.New("validation: invalid post status")

// ErrSlugConflict 表示 slug 与既有文章冲突（数据库唯一索引触发）
var ErrSlugConflict = errors.New("conflict: slug already exists")

// ErrMultipleResults 表示按 slug 读取时命中多行，唯一性不变量被破坏
// - 仅用于内部日志定位，对调用方统一坍缩为未找到
var ErrMultipleResults = errors.New("internal: multiple rows matched a unique slug")
