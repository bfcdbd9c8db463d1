package validator

import (
	"regexp"
	"strings"
	"time"

	"holidayapi/constants"
	"holidayapi/dto"
	"holidayapi/errors"
)

// Clock supplies "now" for the current-year rule. Production wiring passes
// time.Now; tests fix it.
type Clock func() time.Time

var countryCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,3}$`)

// ParseDate parses text as a strict calendar date in YYYY-MM-DD form.
// time.Parse resolves the calendar strictly, so day 30 of February fails.
func ParseDate(text string) (time.Time, error) {
	date, err := time.Parse(constants.DateLayout, text)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Invalid date or Holiday date must be in the format YYYY-MM-DD. Provided: "+text, err)
	}
	return date, nil
}

// ValidateDate parses text and requires it to fall within the current
// calendar year, evaluated against the supplied clock at call time.
func ValidateDate(text string, clock Clock) (time.Time, error) {
	date, err := ParseDate(text)
	if err != nil {
		return time.Time{}, err
	}
	if date.Year() != clock().Year() {
		return time.Time{}, errors.NewAppError(errors.ErrCodeDateOutOfRange,
			"Holiday date must be within the current year. Provided: "+text, nil)
	}
	return date, nil
}

// ValidateCountryCode checks the 1-3 alphanumeric character shape.
func ValidateCountryCode(code string) error {
	if !countryCodeRegex.MatchString(code) {
		return errors.NewAppError(errors.ErrCodeInvalidCountryCode,
			"Country code must be 1 to 3 alphanumeric characters. Provided: "+code+".", nil)
	}
	return nil
}

// ValidateHolidayRequest trims every field of the request in place, runs the
// field-level rules and returns the parsed holiday date. Shared by the create
// and update paths and by every import row.
func ValidateHolidayRequest(req *dto.HolidayRequest, clock Clock) (time.Time, error) {
	req.CountryCode = strings.TrimSpace(req.CountryCode)
	req.CountryName = strings.TrimSpace(req.CountryName)
	req.HolidayDate = strings.TrimSpace(req.HolidayDate)
	req.HolidayName = strings.TrimSpace(req.HolidayName)

	if req.CountryCode == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Country code is required.", nil)
	}
	if req.CountryName == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Country name is required.", nil)
	}
	if req.HolidayName == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Holiday name is required.", nil)
	}
	if req.HolidayDate == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Holiday date is required.", nil)
	}

	if err := ValidateCountryCode(req.CountryCode); err != nil {
		return time.Time{}, err
	}

	return ValidateDate(req.HolidayDate, clock)
}
