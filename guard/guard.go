// Package guard 提供快速失败的前置条件检查
//
// 每个检查都有相同的形状：
//
//	v, err := guard.AgainstNegative(amount, ErrAmountNegative)
//	if err != nil {
//	    return nil, err
//	}
//
// 校验通过时原样返回输入值，便于在赋值处内联使用；
// 校验失败时返回零值和携带调用方错误的 *errors.DomainException，调用方应立即终止当前操作。
// 检查函数不会修改输入。
package guard

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"github.com/cmssantos/buildingblocks-domain/errors"
	"github.com/cmssantos/buildingblocks-domain/internal/reflectx"
	"github.com/cmssantos/buildingblocks-domain/logging"
)

// Number 可做符号检查的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// Against 自定义规则检查，rule 返回 true 表示违反
func Against[T any](value T, rule func(T) bool, err errors.DomainError) (T, error) {
	return check(value, rule(value), err)
}

// AgainstNull 值为 nil（指针、映射、切片、函数、通道、接口）时失败
func AgainstNull[T any](value T, err errors.DomainError) (T, error) {
	return check(value, reflectx.IsNil(value), err)
}

// AgainstNullOrEmpty 字符串为空或全是空白时失败
func AgainstNullOrEmpty(value string, err errors.DomainError) (string, error) {
	return check(value, strings.TrimSpace(value) == "", err)
}

// AgainstNilOrEmpty 字符串指针为 nil、或指向空/空白字符串时失败
func AgainstNilOrEmpty(value *string, err errors.DomainError) (*string, error) {
	return check(value, value == nil || strings.TrimSpace(*value) == "", err)
}

// AgainstEmptyUUID UUID 为 uuid.Nil 时失败
func AgainstEmptyUUID(value uuid.UUID, err errors.DomainError) (uuid.UUID, error) {
	return check(value, value == uuid.Nil, err)
}

// AgainstZero 值等于其类型的零值时失败，适用于标识符一类的值
func AgainstZero[T comparable](value T, err errors.DomainError) (T, error) {
	var zero T
	return check(value, value == zero, err)
}

// AgainstNegative 数值小于 0 时失败
func AgainstNegative[N Number](value N, err errors.DomainError) (N, error) {
	return check(value, value < 0, err)
}

// AgainstNegativeOrZero 数值小于等于 0 时失败
func AgainstNegativeOrZero[N Number](value N, err errors.DomainError) (N, error) {
	return check(value, value <= 0, err)
}

// AgainstEmpty 切片为 nil 或没有元素时失败
func AgainstEmpty[S ~[]E, E any](value S, err errors.DomainError) (S, error) {
	return check(value, len(value) == 0, err)
}

// AgainstEmptyMap 映射为 nil 或没有元素时失败
func AgainstEmptyMap[M ~map[K]V, K comparable, V any](value M, err errors.DomainError) (M, error) {
	return check(value, len(value) == 0, err)
}

// Must 校验失败时 panic
// 用于把违反视为编程错误的场景，例如包级变量初始化
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func check[T any](value T, violated bool, err errors.DomainError) (T, error) {
	if !violated {
		return value, nil
	}

	logging.GetLogger().Debug(context.Background(), "guard violated",
		logging.String("error_code", err.Code()),
	)

	var zero T
	return zero, errors.NewDomainException(err)
}
