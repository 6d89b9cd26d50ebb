package entity

import "reflect"

// IValueObject 值对象标记接口
type IValueObject interface {
	isValueObject()
}

// ValueObject 值对象标记（用于嵌入）
// 值对象没有标识，按全部属性比较相等性，创建后不应修改
//
// 示例:
//
//	type Slug struct {
//	    entity.ValueObject
//	    value string
//	}
type ValueObject struct{}

func (ValueObject) isValueObject() {}

// SameValue 按全部属性做结构化比较
// 对只含可比较字段的值对象，直接使用 == 即可
func SameValue[T IValueObject](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
