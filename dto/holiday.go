package dto

// HolidayRequest is the request body for creating or updating a holiday.
// Field-level checks run in the validator package so the error messages stay
// uniform between the JSON endpoints and the file import pipeline.
type HolidayRequest struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	HolidayDate string `json:"holidayDate"`
	HolidayName string `json:"holidayName"`
}

// HolidayResponse is the response body for a single holiday record.
type HolidayResponse struct {
	ID          uint   `json:"id"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	HolidayDate string `json:"holidayDate"`
	HolidayName string `json:"holidayName"`
	DayOfWeek   string `json:"dayOfWeek"`
	Message     string `json:"message,omitempty"`
}

// DeleteHolidayResponse reports how many records a delete removed.
type DeleteHolidayResponse struct {
	DeletedRecords int64  `json:"deletedRecords"`
	Message        string `json:"message"`
}

// RecordError is one classified row failure inside an import report.
type RecordError struct {
	RowNumber    int    `json:"rowNumber"`
	ErrorMessage string `json:"errorMessage"`
}

// FileResult is the per-file tally of an import.
type FileResult struct {
	FileName                string        `json:"fileName"`
	TotalRecords            int           `json:"totalRecords"`
	SuccessRecords          int           `json:"successRecords"`
	FailedRecords           int           `json:"failedRecords"`
	DuplicateRecords        int           `json:"duplicateRecords"`
	FailedRecordsDetails    []RecordError `json:"failedRecordsDetails"`
	DuplicateRecordsDetails []RecordError `json:"duplicateRecordsDetails"`
}

// FileUploadResponse aggregates one FileResult per uploaded file.
type FileUploadResponse struct {
	FileResults []FileResult `json:"fileResults"`
	Message     string       `json:"message"`
}
