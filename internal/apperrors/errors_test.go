package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing field"), http.StatusBadRequest},
		{Conflict("duplicate"), http.StatusConflict},
		{Authentication("bad credentials"), http.StatusUnauthorized},
		{NotFound("gone"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestStatusUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("saving task: %w", NotFound("task not found"))
	if got := Status(err); got != http.StatusNotFound {
		t.Fatalf("Status(wrapped) = %d, want %d", got, http.StatusNotFound)
	}
}
