package errors

import (
	stdErrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// DomainException 前置条件失败时返回的错误
// 只携带一个 DomainError，错误消息即错误码
type DomainException struct {
	err   DomainError
	stack []uintptr
}

// NewDomainException 创建领域异常，并在调用点捕获堆栈
func NewDomainException(err DomainError) *DomainException {
	return &DomainException{
		err:   err,
		stack: captureStack(3),
	}
}

// Error 实现 error 接口
func (e *DomainException) Error() string {
	return e.err.code
}

// DomainError 返回携带的领域错误
func (e *DomainException) DomainError() DomainError {
	return e.err
}

// Code 返回错误码
func (e *DomainException) Code() string {
	return e.err.code
}

// Stack 按需格式化创建时的堆栈
func (e *DomainException) Stack() string {
	if len(e.stack) == 0 {
		return ""
	}

	var builder strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		frame, more := frames.Next()
		builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		if !more {
			break
		}
	}
	return builder.String()
}

// Is 按错误码匹配另一个 DomainException
func (e *DomainException) Is(target error) bool {
	var other *DomainException
	if !stdErrors.As(target, &other) {
		return false
	}
	return e.err.code == other.err.code
}

// AsDomainException 从错误链中提取 DomainException
func AsDomainException(err error) (*DomainException, bool) {
	if err == nil {
		return nil, false
	}
	var ex *DomainException
	if stdErrors.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// ErrorOf 从错误链中提取领域错误
// err 为 nil 或不含 DomainException 时返回 (None, false)
func ErrorOf(err error) (DomainError, bool) {
	ex, ok := AsDomainException(err)
	if !ok {
		return None, false
	}
	return ex.err, true
}

// captureStack 捕获堆栈
// skip: 跳过的帧数（Callers, captureStack, NewDomainException）
func captureStack(skip int) []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}
