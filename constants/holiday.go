package constants

import "time"

// Date layout accepted everywhere a holiday date enters the system.
const DateLayout = "2006-01-02"

// Recognized upload extensions
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// Redis cache
const (
	HolidayCacheKey = "holidays:all"
	HolidayCacheTTL = 10 * time.Minute
)

// Success messages
const (
	MsgHolidayAdded   = "Holiday added successfully"
	MsgHolidayUpdated = "Holiday updated successfully"
	MsgHolidayFetched = "Holiday fetched successfully"
	MsgFilesProcessed = "Files processed successfully"
	MsgNoFiles        = "No files uploaded. Please upload at least one file."
)
