package repository

import (
	"errors"
	"fmt"
)

// ErrVersionConflict 乐观锁版本冲突
var ErrVersionConflict = errors.New("version conflict (optimistic lock)")

// ConcurrencyError 版本冲突详情
type ConcurrencyError struct {
	AggregateID any
	Expected    int64
	Actual      int64
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("%s: aggregate %v expected version %d, actual %d",
		ErrVersionConflict.Error(), e.AggregateID, e.Expected, e.Actual)
}

func (e *ConcurrencyError) Unwrap() error {
	return ErrVersionConflict
}

// CheckVersion 比较期望版本与已持久化版本
// 由持久化协作方在提交时调用；重试策略不在此处
func CheckVersion(aggregateID any, expected, actual int64) error {
	if expected == actual {
		return nil
	}
	return &ConcurrencyError{
		AggregateID: aggregateID,
		Expected:    expected,
		Actual:      actual,
	}
}
