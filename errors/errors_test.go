package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// TestDomainError_EmptyMetadata 未提供元数据时使用空映射
func TestDomainError_EmptyMetadata(t *testing.T) {
	err := New("category.invalid", nil)

	assert.Equal(t, "category.invalid", err.Code())
	assert.NotNil(t, err.Metadata())
	assert.Empty(t, err.Metadata())
	assert.True(t, err.IsFailure())
	assert.False(t, err.IsNone())
}

// TestDomainError_WithMetadata 提供元数据时可读取
func TestDomainError_WithMetadata(t *testing.T) {
	err := New("validation.failed", map[string]*string{
		"field":  strPtr("name"),
		"reason": nil,
	})

	v, ok := err.Meta("field")
	require.True(t, ok)
	assert.Equal(t, "name", *v)

	v, ok = err.Meta("reason")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = err.Meta("missing")
	assert.False(t, ok)
}

// TestDomainError_Immutable 修改输入或返回的映射不影响错误值
func TestDomainError_Immutable(t *testing.T) {
	input := map[string]*string{"field": strPtr("name")}
	err := New("validation.failed", input)

	input["field"] = strPtr("changed")
	input["extra"] = strPtr("x")

	md := err.Metadata()
	*md["field"] = "mutated"
	md["other"] = nil

	v, _ := err.Meta("field")
	assert.Equal(t, "name", *v)
	assert.Len(t, err.Metadata(), 1)
}

// TestDomainError_WithMetadataCopies 追加元数据返回新值
func TestDomainError_WithMetadataCopies(t *testing.T) {
	base := New("order.invalid", nil)
	extended := base.WithMetadata("order_id", strPtr("42"))

	assert.Empty(t, base.Metadata())
	v, ok := extended.Meta("order_id")
	require.True(t, ok)
	assert.Equal(t, "42", *v)
	assert.Equal(t, base.Code(), extended.Code())
}

// TestDomainError_Equals 结构化比较
func TestDomainError_Equals(t *testing.T) {
	a := New("x", map[string]*string{"k": strPtr("v")})
	b := New("x", map[string]*string{"k": strPtr("v")})
	c := New("x", map[string]*string{"k": nil})
	d := New("y", map[string]*string{"k": strPtr("v")})

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
	assert.True(t, c.Equals(New("x", map[string]*string{"k": nil})))
}

// TestDomainError_Reserved 保留的错误值
func TestDomainError_Reserved(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.False(t, None.IsFailure())
	assert.True(t, None.Equals(New("", nil)))

	assert.Equal(t, "Error.NullValue", NullValue.Code())
	assert.True(t, NullValue.IsFailure())
	assert.False(t, NullValue.Equals(None))
}

// TestDomainException_CarriesError 异常携带错误，消息为错误码
func TestDomainException_CarriesError(t *testing.T) {
	domainErr := New("article.title_required", map[string]*string{"field": strPtr("title")})
	ex := NewDomainException(domainErr)

	assert.Equal(t, "article.title_required", ex.Error())
	assert.Equal(t, "article.title_required", ex.Code())
	assert.True(t, ex.DomainError().Equals(domainErr))
	assert.Contains(t, ex.Stack(), "TestDomainException_CarriesError")
}

// TestDomainException_ErrorChain 支持 errors.Is / errors.As
func TestDomainException_ErrorChain(t *testing.T) {
	ex := NewDomainException(New("amount.negative", nil))
	wrapped := fmt.Errorf("create order: %w", ex)

	got, ok := AsDomainException(wrapped)
	require.True(t, ok)
	assert.Same(t, ex, got)

	domainErr, ok := ErrorOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, "amount.negative", domainErr.Code())

	assert.ErrorIs(t, wrapped, NewDomainException(New("amount.negative", nil)))
	assert.NotErrorIs(t, wrapped, NewDomainException(New("amount.zero", nil)))
}

// TestErrorOf_NotDomain 非领域错误
func TestErrorOf_NotDomain(t *testing.T) {
	domainErr, ok := ErrorOf(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.True(t, domainErr.IsNone())

	_, ok = AsDomainException(nil)
	assert.False(t, ok)
}
