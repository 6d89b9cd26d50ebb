// Package errors 定义领域层的业务规则错误
//
// 两类错误严格区分：
//   - DomainError: 不可变的业务错误值（错误码 + 元数据），可以放进 Result 返回
//   - DomainException: 携带 DomainError 的 error，由 guard 在前置条件失败时返回
//
// 编程错误（非法构造 Result、读取失败结果的值等）不在此包中表达，直接 panic。
package errors

import (
	"maps"
)

// DomainError 领域错误值
// 创建后不可修改；Code 为空表示"无错误"
type DomainError struct {
	code     string
	metadata map[string]*string
}

// 保留的错误值
var (
	// None 唯一表示"无错误"的值
	None = DomainError{}

	// NullValue 尝试从空值构造结果
	NullValue = New("Error.NullValue", nil)
)

// New 创建领域错误
// metadata 为 nil 时使用空映射，传入的映射会被复制
func New(code string, metadata map[string]*string) DomainError {
	return DomainError{
		code:     code,
		metadata: copyMetadata(metadata),
	}
}

// Code 返回错误码
func (e DomainError) Code() string {
	return e.code
}

// Metadata 返回元数据副本
func (e DomainError) Metadata() map[string]*string {
	return copyMetadata(e.metadata)
}

// Meta 读取单个元数据项
// 第二个返回值表示键是否存在，值本身可以为 nil
func (e DomainError) Meta(key string) (*string, bool) {
	v, ok := e.metadata[key]
	if !ok || v == nil {
		return nil, ok
	}
	s := *v
	return &s, true
}

// WithMetadata 返回追加了一项元数据的新错误，原值不变
func (e DomainError) WithMetadata(key string, value *string) DomainError {
	md := copyMetadata(e.metadata)
	if value != nil {
		s := *value
		value = &s
	}
	md[key] = value
	return DomainError{code: e.code, metadata: md}
}

// IsNone 是否为"无错误"
func (e DomainError) IsNone() bool {
	return e.code == ""
}

// IsFailure 是否为真实的业务失败（错误码非空，与元数据无关）
func (e DomainError) IsFailure() bool {
	return e.code != ""
}

// Equals 结构化比较：错误码与元数据都相同
func (e DomainError) Equals(other DomainError) bool {
	if e.code != other.code {
		return false
	}
	return maps.EqualFunc(e.metadata, other.metadata, func(a, b *string) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	})
}

// String 实现 fmt.Stringer
func (e DomainError) String() string {
	return e.code
}

// copyMetadata 复制元数据，值指针也做深拷贝
func copyMetadata(original map[string]*string) map[string]*string {
	copied := make(map[string]*string, len(original))
	for k, v := range original {
		if v != nil {
			s := *v
			v = &s
		}
		copied[k] = v
	}
	return copied
}
