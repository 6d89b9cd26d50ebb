// Package result 定义领域操作的两态结果
//
// Result 表示不带值的成功/失败，ResultOf[T] 在成功分支上额外携带一个值。
// 状态在构造时确定，之后不会改变。
//
// 成功且错误非 None、或失败且错误为 None，属于编程错误，构造时直接 panic；
// 在失败结果上读取 Value 同样 panic。预期内的业务失败通过 Failure 表达。
package result

import (
	"github.com/cmssantos/buildingblocks-domain/errors"
	"github.com/cmssantos/buildingblocks-domain/internal/reflectx"
)

const (
	msgSuccessWithError = "result: success result cannot have an error"
	msgFailureNoError   = "result: failure result must have an error"
	msgValueOnFailure   = "result: the value of a failure result can not be accessed"
)

// Result 不带值的操作结果
type Result struct {
	isSuccess bool
	err       errors.DomainError
}

func newResult(isSuccess bool, err errors.DomainError) Result {
	if isSuccess && !err.IsNone() {
		panic(msgSuccessWithError)
	}
	if !isSuccess && err.IsNone() {
		panic(msgFailureNoError)
	}
	return Result{isSuccess: isSuccess, err: err}
}

// Success 成功结果
func Success() Result {
	return newResult(true, errors.None)
}

// Failure 失败结果，err 不能是 errors.None
func Failure(err errors.DomainError) Result {
	return newResult(false, err)
}

// IsSuccess 是否成功
func (r Result) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure 是否失败
func (r Result) IsFailure() bool {
	return !r.isSuccess
}

// Error 返回失败原因，成功时为 errors.None
func (r Result) Error() errors.DomainError {
	return r.err
}

// Err 转换为普通 error，成功时返回 nil
func (r Result) Err() error {
	if r.isSuccess {
		return nil
	}
	return errors.NewDomainException(r.err)
}

// ResultOf 成功时携带值的操作结果
type ResultOf[T any] struct {
	Result
	value T
}

// SuccessOf 携带值的成功结果
func SuccessOf[T any](value T) ResultOf[T] {
	return ResultOf[T]{
		Result: newResult(true, errors.None),
		value:  value,
	}
}

// FailureOf 携带值类型的失败结果
func FailureOf[T any](err errors.DomainError) ResultOf[T] {
	return ResultOf[T]{Result: newResult(false, err)}
}

// FromValue 根据值构造结果：空值为 Failure(errors.NullValue)，否则为 Success(value)
// 只有 nil 指针、映射、切片、函数、通道、接口算作空值
func FromValue[T any](value T) ResultOf[T] {
	if reflectx.IsNil(value) {
		return FailureOf[T](errors.NullValue)
	}
	return SuccessOf(value)
}

// FromPtr 根据指针构造结果：nil 为 Failure(errors.NullValue)，否则携带指向的值
func FromPtr[T any](value *T) ResultOf[T] {
	if value == nil {
		return FailureOf[T](errors.NullValue)
	}
	return SuccessOf(*value)
}

// FromError 根据领域错误构造失败结果
func FromError[T any](err errors.DomainError) ResultOf[T] {
	return FailureOf[T](err)
}

// Value 返回成功时的值；失败时 panic
func (r ResultOf[T]) Value() T {
	if !r.isSuccess {
		panic(msgValueOnFailure)
	}
	return r.value
}

// ValueOr 成功时返回值，失败时返回 fallback
func (r ResultOf[T]) ValueOr(fallback T) T {
	if !r.isSuccess {
		return fallback
	}
	return r.value
}

// Untyped 丢弃值，只保留成功/失败状态
func (r ResultOf[T]) Untyped() Result {
	return r.Result
}
