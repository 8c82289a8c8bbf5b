package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormat(t *testing.T) {
	t.Parallel()

	err := New(ErrCodeBlockMalformed, "LOW block has wrong arity")
	assert.Equal(t, "[RXN_002] LOW block has wrong arity", err.Error())

	withDetail := err.WithDetail("LOW / 1.0 /")
	assert.Equal(t, "[RXN_002] LOW block has wrong arity: LOW / 1.0 /", withDetail.Error())
	// The receiver is not mutated.
	assert.Empty(t, err.Detail)
}

func TestWrapPreservesCodeForUnknown(t *testing.T) {
	t.Parallel()

	inner := New(ErrCodeNumericCoercion, "bad token")
	wrapped := Wrap(inner, CodeUnknown, "entry 3 failed to parse")
	assert.Equal(t, ErrCodeNumericCoercion, wrapped.Code)
	assert.True(t, IsCode(wrapped, ErrCodeNumericCoercion))
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}

func TestIsMalformed(t *testing.T) {
	t.Parallel()

	assert.True(t, IsMalformed(New(ErrCodeEquationUnparseable, "x")))
	assert.True(t, IsMalformed(New(ErrCodeBlockMalformed, "x")))
	assert.True(t, IsMalformed(New(ErrCodeNumericCoercion, "x")))
	assert.False(t, IsMalformed(New(ErrCodeBlockNotFound, "x")))
	assert.False(t, IsMalformed(nil))

	// Wrapped chains are traversed.
	wrapped := fmt.Errorf("outer: %w", New(ErrCodeBlockMalformed, "inner"))
	assert.True(t, IsMalformed(wrapped))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(New(ErrCodeBlockNotFound, "x")))
	assert.True(t, IsNotFound(New(ErrCodeNotFound, "x")))
	assert.False(t, IsNotFound(New(ErrCodeBadRequest, "x")))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain error")))
	assert.Equal(t, ErrCodeTimeout, GetCode(New(ErrCodeTimeout, "x")))
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusUnprocessableEntity, ErrCodeEquationUnparseable.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrCodeBadRequest.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrCodeNotFound.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrCodeInternal.HTTPStatus())
}

func TestUnwrapExposesCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("strconv failure")
	err := New(ErrCodeNumericCoercion, "bad token").WithCause(cause)
	require.ErrorIs(t, err, cause)
}
