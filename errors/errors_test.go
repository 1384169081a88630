package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindInvalidState, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{Kind("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.kind, tc.want, got)
		}
	}
}

func TestFromPreservesTaggedErrors(t *testing.T) {
	original := NewConflict("Category name already exists")

	got := From(original)
	if got.Kind != KindConflict {
		t.Errorf("expected Conflict, got %s", got.Kind)
	}
	if got.Message != "Category name already exists" {
		t.Errorf("unexpected message: %q", got.Message)
	}
}

func TestFromUnwrapsWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("transaction failed: %w", NewNotFound("Room not found"))

	got := From(wrapped)
	if got.Kind != KindNotFound {
		t.Errorf("expected NotFound through wrapping, got %s", got.Kind)
	}
}

func TestFromCoercesUnknownToInternal(t *testing.T) {
	got := From(stderrors.New("connection refused"))

	if got.Kind != KindInternal {
		t.Errorf("expected Internal, got %s", got.Kind)
	}
	if got.Message != "Internal server error" {
		t.Errorf("raw error detail must not leak, got %q", got.Message)
	}
}

func TestInternalKeepsCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := Internal("Failed to fetch rooms", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to reach the cause")
	}
	if !IsKind(err, KindInternal) {
		t.Error("expected Internal kind")
	}
}

func TestIsKind(t *testing.T) {
	if !IsKind(NewInvalidInput("bad"), KindInvalidInput) {
		t.Error("expected IsKind to match")
	}
	if IsKind(NewInvalidInput("bad"), KindConflict) {
		t.Error("expected IsKind to reject mismatched kind")
	}
	if IsKind(stderrors.New("plain"), KindInternal) {
		t.Error("plain errors carry no kind")
	}
}
