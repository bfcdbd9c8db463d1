package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeRequiredField, http.StatusBadRequest},
		{ErrCodeInvalidCountryCode, http.StatusBadRequest},
		{ErrCodeInvalidDate, http.StatusBadRequest},
		{ErrCodeDateOutOfRange, http.StatusBadRequest},
		{ErrCodeNameConflict, http.StatusBadRequest},
		{ErrCodeCountryMismatch, http.StatusBadRequest},
		{ErrCodeMalformedRow, http.StatusBadRequest},
		{ErrCodeUnsupportedFormat, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeDuplicate, http.StatusConflict},
		{ErrCodeDBError, http.StatusInternalServerError},
		{ErrCodeFileProcessing, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := NewAppError(tc.code, "x", nil)
		if got := HTTPStatus(err); got != tc.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(plain) = %d", got)
	}
}

func TestClassification(t *testing.T) {
	dup := NewAppError(ErrCodeDuplicate, "Duplicate holiday record for country code: 001 and date: 2025-01-01", nil)
	if !IsDuplicate(dup) || IsNotFound(dup) {
		t.Errorf("duplicate misclassified")
	}
	missing := NewAppError(ErrCodeNotFound, "No holidays found for country code: 001", nil)
	if !IsNotFound(missing) || IsDuplicate(missing) {
		t.Errorf("not-found misclassified")
	}
	// Classification must key on codes, not message text.
	tricky := NewAppError(ErrCodeDBError, "duplicate key not found", nil)
	if IsDuplicate(tricky) || IsNotFound(tricky) {
		t.Errorf("plain db error misclassified")
	}
}

func TestMessageOfAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := NewAppError(ErrCodeDBError, "A database error occurred.", cause)
	if got := MessageOf(wrapped); got != "A database error occurred." {
		t.Errorf("MessageOf = %q", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("wrapped error lost its cause")
	}
	plain := errors.New("boom")
	if got := MessageOf(plain); got != "boom" {
		t.Errorf("MessageOf(plain) = %q", got)
	}
}
