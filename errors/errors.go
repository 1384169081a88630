package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind phân loại lỗi của ứng dụng
type Kind string

const (
	KindInvalidInput Kind = "INVALID_INPUT"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInvalidState Kind = "INVALID_STATE"
	KindInternal     Kind = "INTERNAL"
)

// HTTPStatus trả về HTTP status tương ứng với Kind
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput, KindInvalidState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New tạo một AppError mới
func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func NewInvalidInput(message string) *AppError {
	return New(KindInvalidInput, message)
}

func NewNotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func NewConflict(message string) *AppError {
	return New(KindConflict, message)
}

func NewInvalidState(message string) *AppError {
	return New(KindInvalidState, message)
}

// Internal bọc lỗi hạ tầng (database, cache, ...) thành AppError
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// From chuẩn hóa một error bất kỳ về AppError. Lỗi chưa được gắn Kind
// được coi là lỗi Internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// IsKind kiểm tra error có thuộc Kind cho trước không
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
