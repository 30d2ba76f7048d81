package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"domain passthrough", NewConflict("dup"), "CONFLICT", http.StatusConflict},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewNotFound("Tiket")), "NOT_FOUND", http.StatusNotFound},
		{"no rows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"generic", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.code || got.HTTPStatus != tc.status {
				t.Fatalf("got %s/%d, want %s/%d", got.Code, got.HTTPStatus, tc.code, tc.status)
			}
		})
	}
	if ToDomainError(nil) != nil {
		t.Fatal("nil error should map to nil")
	}
}

func TestValidationErrorDefaults(t *testing.T) {
	err := NewValidationError("", map[string][]string{"subject": {"too short"}})
	de := ToDomainError(err)
	if de.Message == "" || de.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected validation error %+v", de)
	}
	if !IsCode(err, "VALIDATION_ERROR") {
		t.Fatal("expected VALIDATION_ERROR code")
	}
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("db down")
	err := NewInternalError(cause)
	if !errors.Is(err, cause) {
		t.Fatal("internal error should unwrap to cause")
	}
}
