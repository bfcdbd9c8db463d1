package services

import (
	"strings"
	"testing"

	"holidayapi/errors"
)

func newTestImportService(t *testing.T) (*ImportService, *memStore) {
	t.Helper()
	svc, store := newTestService(t)
	return NewImportService(svc, nil), store
}

func csvFile(name, content string) ImportFile {
	return ImportFile{Name: name, Reader: strings.NewReader(content)}
}

const csvHeader = "countryCode,countryName,holidayDate,holidayName\n"

func TestUploadSingleValidRow(t *testing.T) {
	imp, store := newTestImportService(t)

	report, err := imp.UploadHolidays([]ImportFile{
		csvFile("holidays.csv", csvHeader+"001,USA,2025-01-01,New Year\n"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if report.Message != "Files processed successfully" {
		t.Errorf("message = %q", report.Message)
	}
	if len(report.FileResults) != 1 {
		t.Fatalf("fileResults = %d, want 1", len(report.FileResults))
	}

	result := report.FileResults[0]
	if result.FileName != "holidays.csv" {
		t.Errorf("fileName = %q", result.FileName)
	}
	if result.TotalRecords != 1 || result.SuccessRecords != 1 ||
		result.FailedRecords != 0 || result.DuplicateRecords != 0 {
		t.Errorf("tally = %+v", result)
	}
	if len(store.holidays) != 1 {
		t.Errorf("stored holidays = %d, want 1", len(store.holidays))
	}
}

func TestUploadMalformedRow(t *testing.T) {
	imp, _ := newTestImportService(t)

	report, err := imp.UploadHolidays([]ImportFile{
		csvFile("holidays.csv", csvHeader+"001,USA,2025-01-01\n"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	result := report.FileResults[0]
	if result.TotalRecords != 1 || result.FailedRecords != 1 {
		t.Fatalf("tally = %+v", result)
	}
	detail := result.FailedRecordsDetails[0]
	if detail.RowNumber != 1 {
		t.Errorf("rowNumber = %d, want 1", detail.RowNumber)
	}
	if !strings.Contains(detail.ErrorMessage, "Expected 4 columns, found 3") {
		t.Errorf("errorMessage = %q", detail.ErrorMessage)
	}
}

func TestUploadClassifiesDuplicates(t *testing.T) {
	imp, _ := newTestImportService(t)

	content := csvHeader +
		"001,USA,2025-01-01,New Year\n" +
		"001,USA,2025-01-01,New Year\n" +
		"001,United States,2025-07-04,Independence Day\n"
	report, err := imp.UploadHolidays([]ImportFile{csvFile("holidays.csv", content)})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	result := report.FileResults[0]
	if result.TotalRecords != 3 {
		t.Errorf("totalRecords = %d, want 3", result.TotalRecords)
	}
	if result.SuccessRecords != 1 {
		t.Errorf("successRecords = %d, want 1", result.SuccessRecords)
	}
	if result.DuplicateRecords != 1 {
		t.Fatalf("duplicateRecords = %d, want 1", result.DuplicateRecords)
	}
	if result.FailedRecords != 1 {
		t.Fatalf("failedRecords = %d, want 1", result.FailedRecords)
	}

	// Row 2 is the exact duplicate; row 3 fails the country-name check.
	if result.DuplicateRecordsDetails[0].RowNumber != 2 {
		t.Errorf("duplicate rowNumber = %d, want 2", result.DuplicateRecordsDetails[0].RowNumber)
	}
	if result.FailedRecordsDetails[0].RowNumber != 3 {
		t.Errorf("failed rowNumber = %d, want 3", result.FailedRecordsDetails[0].RowNumber)
	}
}

func TestUploadProcessesEveryRow(t *testing.T) {
	imp, store := newTestImportService(t)

	// A failing row must not stop later rows from importing.
	content := csvHeader +
		"BAD!,USA,2025-01-01,New Year\n" +
		"001,USA,2025-12-25,Christmas\n"
	report, err := imp.UploadHolidays([]ImportFile{csvFile("holidays.csv", content)})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	result := report.FileResults[0]
	if result.SuccessRecords != 1 || result.FailedRecords != 1 {
		t.Errorf("tally = %+v", result)
	}
	if len(store.holidays) != 1 {
		t.Errorf("stored holidays = %d, want 1", len(store.holidays))
	}
}

func TestUploadUnsupportedExtension(t *testing.T) {
	imp, _ := newTestImportService(t)

	_, err := imp.UploadHolidays([]ImportFile{
		csvFile("holidays.txt", "001,USA,2025-01-01,New Year\n"),
	})
	if errors.CodeOf(err) != errors.ErrCodeUnsupportedFormat {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}

func TestUploadNoFiles(t *testing.T) {
	imp, _ := newTestImportService(t)

	report, err := imp.UploadHolidays(nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if report.Message != "No files uploaded. Please upload at least one file." {
		t.Errorf("message = %q", report.Message)
	}
	if len(report.FileResults) != 0 {
		t.Errorf("fileResults = %d, want 0", len(report.FileResults))
	}
}

func TestUploadMultipleFiles(t *testing.T) {
	imp, _ := newTestImportService(t)

	report, err := imp.UploadHolidays([]ImportFile{
		csvFile("a.csv", csvHeader+"001,USA,2025-01-01,New Year\n"),
		csvFile("b.csv", csvHeader+"002,Canada,2025-07-01,Canada Day\n"),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(report.FileResults) != 2 {
		t.Fatalf("fileResults = %d, want 2", len(report.FileResults))
	}
	for i, result := range report.FileResults {
		if result.SuccessRecords != 1 {
			t.Errorf("file %d: successRecords = %d, want 1", i, result.SuccessRecords)
		}
	}
}
