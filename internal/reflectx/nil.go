// Package reflectx 提供泛型场景下的反射辅助函数
package reflectx

import "reflect"

// IsNil 判断任意值是否为"空"
// 只有指针、映射、切片、函数、通道、接口会被视为空；其余类型的零值不算空
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
