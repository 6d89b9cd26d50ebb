package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// IIdentifier 类型擦除后的标识符，用于泛型比较场景
type IIdentifier interface {
	// RawValue 返回被包装的原始值
	RawValue() any
}

// Identifier 实体标识符约束
// 标识符必须可比较，相等性即 Go 的 ==，对被包装的值做结构化比较
type Identifier interface {
	comparable
	IIdentifier
}

// ID 包装一个原始值的不可变标识符
//
// 不同实体应声明各自的标识符类型，编译器会拒绝跨类型比较:
//
//	type ArticleID struct{ entity.ID[uuid.UUID] }
//	type CategoryID struct{ entity.ID[uuid.UUID] }
//
//	id := ArticleID{entity.NewUUID()}
type ID[T comparable] struct {
	value T
}

// NewID 创建标识符
// 原始值是否合法（非空、非零）由声明该标识符的类型自行约束
func NewID[T comparable](value T) ID[T] {
	return ID[T]{value: value}
}

// NewUUID 创建随机 UUID 标识符
func NewUUID() ID[uuid.UUID] {
	return NewID(uuid.New())
}

// Value 返回原始值
func (id ID[T]) Value() T {
	return id.value
}

// RawValue 实现 IIdentifier 接口
func (id ID[T]) RawValue() any {
	return id.value
}

// IsZero 是否为零值
func (id ID[T]) IsZero() bool {
	var zero T
	return id.value == zero
}

// String 实现 fmt.Stringer
func (id ID[T]) String() string {
	return fmt.Sprint(id.value)
}
