package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestKindsMatchSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		status   int
	}{
		{NotFound("registration %d not found", 7), ErrNotFound, http.StatusNotFound},
		{Conflict("registration is already approved"), ErrConflict, http.StatusConflict},
		{Validation("actor is required"), ErrValidation, http.StatusBadRequest},
	}

	for _, tc := range cases {
		wrapped := fmt.Errorf("approve: %w", tc.err)
		if !errors.Is(wrapped, tc.sentinel) {
			t.Errorf("%v: expected to match %v", tc.err, tc.sentinel)
		}
		if got := HTTPStatus(wrapped); got != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, got, tc.status)
		}
	}

	if errors.Is(NotFound("x"), ErrConflict) {
		t.Fatal("not found must not match conflict")
	}
	if HTTPStatus(errors.New("boom")) != http.StatusInternalServerError {
		t.Fatal("unclassified errors map to 500")
	}
}

func TestUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_registrations_active_pnr"})
	if !IsUniqueViolation(err) {
		t.Fatal("expected unique violation")
	}
	if !IsUniqueViolationOn(err, "idx_registrations_active_pnr") {
		t.Fatal("expected constraint match")
	}
	if IsUniqueViolationOn(err, "hotels_name_key") {
		t.Fatal("constraint name must match")
	}
	if IsUniqueViolation(errors.New("duplicate")) {
		t.Fatal("plain errors are not unique violations")
	}
}
