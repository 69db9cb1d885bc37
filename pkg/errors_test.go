package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if appErr.Error() != "An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected unwrap to reach cause")
	}
	if appErr.ToHTTPError().Error != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", appErr.ToHTTPError())
	}
}

func TestAppErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	if appErr.Error() != "Invalid request" || appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected error: %+v", appErr)
	}
	if appErr.Unwrap() != nil {
		t.Fatalf("expected no wrapped cause")
	}
}
