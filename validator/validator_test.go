package validator

import (
	"testing"
	"time"

	"holidayapi/dto"
	"holidayapi/errors"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-01-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if date.Year() != 2025 || date.Month() != time.January || date.Day() != 1 {
		t.Errorf("parsed %v", date)
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	cases := []string{
		"2025-02-30", // no such calendar day
		"2025-13-01",
		"2025-1-1",
		"01/01/2025",
		"2025-01-01T00:00:00",
		"",
		"not a date",
	}
	for _, text := range cases {
		if _, err := ParseDate(text); errors.CodeOf(err) != errors.ErrCodeInvalidDate {
			t.Errorf("ParseDate(%q): expected invalid date, got %v", text, err)
		}
	}
}

func TestValidateDateCurrentYear(t *testing.T) {
	if _, err := ValidateDate("2025-12-31", fixedClock); err != nil {
		t.Errorf("current-year date rejected: %v", err)
	}
	if _, err := ValidateDate("2023-01-01", fixedClock); errors.CodeOf(err) != errors.ErrCodeDateOutOfRange {
		t.Errorf("expected out of range, got %v", err)
	}
	if _, err := ValidateDate("2026-01-01", fixedClock); errors.CodeOf(err) != errors.ErrCodeDateOutOfRange {
		t.Errorf("expected out of range for future year, got %v", err)
	}
}

func TestValidateCountryCode(t *testing.T) {
	for _, code := range []string{"0", "US", "001", "IND", "a1B"} {
		if err := ValidateCountryCode(code); err != nil {
			t.Errorf("ValidateCountryCode(%q): %v", code, err)
		}
	}
	for _, code := range []string{"", "ABCD", "U S", "0-1", "ü1"} {
		if err := ValidateCountryCode(code); errors.CodeOf(err) != errors.ErrCodeInvalidCountryCode {
			t.Errorf("ValidateCountryCode(%q): expected invalid code, got %v", code, err)
		}
	}
}

func TestValidateHolidayRequestTrims(t *testing.T) {
	req := dto.HolidayRequest{
		CountryCode: "  001 ",
		CountryName: " USA ",
		HolidayDate: " 2025-01-01 ",
		HolidayName: " New Year ",
	}
	date, err := ValidateHolidayRequest(&req, fixedClock)
	if err != nil {
		t.Fatalf("ValidateHolidayRequest: %v", err)
	}
	if req.CountryCode != "001" || req.CountryName != "USA" || req.HolidayName != "New Year" {
		t.Errorf("fields not trimmed in place: %+v", req)
	}
	if !date.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", date)
	}
}

func TestValidateHolidayRequestRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		req  dto.HolidayRequest
		want string
	}{
		{"country code", dto.HolidayRequest{CountryName: "USA", HolidayDate: "2025-01-01", HolidayName: "X"}, "Country code is required."},
		{"country name", dto.HolidayRequest{CountryCode: "001", HolidayDate: "2025-01-01", HolidayName: "X"}, "Country name is required."},
		{"holiday name", dto.HolidayRequest{CountryCode: "001", CountryName: "USA", HolidayDate: "2025-01-01", HolidayName: "  "}, "Holiday name is required."},
		{"holiday date", dto.HolidayRequest{CountryCode: "001", CountryName: "USA", HolidayName: "X"}, "Holiday date is required."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateHolidayRequest(&tc.req, fixedClock)
			if errors.CodeOf(err) != errors.ErrCodeRequiredField {
				t.Fatalf("expected required-field error, got %v", err)
			}
			if got := errors.MessageOf(err); got != tc.want {
				t.Errorf("message = %q, want %q", got, tc.want)
			}
		})
	}
}
