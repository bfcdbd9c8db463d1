package services

import (
	"fmt"
	"io"

	"holidayapi/constants"
	"holidayapi/dto"
	"holidayapi/errors"
	"holidayapi/services/logger"
)

// ImportFile is one uploaded tabular file handed to the import pipeline.
type ImportFile struct {
	Name   string
	Reader io.Reader
}

// ImportService runs the bulk import pipeline: for each file, for each row,
// parse, validate and persist-or-classify. Rows commit independently; a row
// failure never aborts the file, and every file yields a complete tally.
type ImportService struct {
	holidayService *HolidayService
	logger         logger.Logger
}

func NewImportService(holidayService *HolidayService, lg logger.Logger) *ImportService {
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ImportService{
		holidayService: holidayService,
		logger:         lg,
	}
}

// UploadHolidays processes the uploaded files and returns one result per
// file. Zero files is not an error. An unrecognized extension is a hard
// failure for the request, not a per-row classification.
func (s *ImportService) UploadHolidays(files []ImportFile) (*dto.FileUploadResponse, error) {
	response := &dto.FileUploadResponse{
		FileResults: []dto.FileResult{},
		Message:     constants.MsgFilesProcessed,
	}
	if len(files) == 0 {
		response.Message = constants.MsgNoFiles
		return response, nil
	}

	for _, file := range files {
		result, err := s.processFile(file)
		if err != nil {
			return nil, err
		}
		response.FileResults = append(response.FileResults, *result)
	}
	return response, nil
}

func (s *ImportService) processFile(file ImportFile) (*dto.FileResult, error) {
	rows, err := ReadRows(file.Name, file.Reader)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, err
		}
		return nil, errors.NewAppError(errors.ErrCodeFileProcessing,
			"Failed to process the file: "+err.Error(), err)
	}

	result := &dto.FileResult{
		FileName:                file.Name,
		FailedRecordsDetails:    []dto.RecordError{},
		DuplicateRecordsDetails: []dto.RecordError{},
	}

	for _, row := range rows {
		result.TotalRecords++
		if err := s.processRow(row); err != nil {
			entry := dto.RecordError{
				RowNumber:    result.TotalRecords,
				ErrorMessage: errors.MessageOf(err),
			}
			if errors.IsDuplicate(err) {
				result.DuplicateRecordsDetails = append(result.DuplicateRecordsDetails, entry)
			} else {
				result.FailedRecordsDetails = append(result.FailedRecordsDetails, entry)
			}
			continue
		}
		result.SuccessRecords++
	}

	result.FailedRecords = len(result.FailedRecordsDetails)
	result.DuplicateRecords = len(result.DuplicateRecordsDetails)

	s.logger.Info("import %s: %d rows, %d ok, %d duplicate, %d failed",
		file.Name, result.TotalRecords, result.SuccessRecords,
		result.DuplicateRecords, result.FailedRecords)
	return result, nil
}

// processRow persists one normalized row the same way a single add would.
func (s *ImportService) processRow(row []string) error {
	if len(row) < 4 {
		return errors.NewAppError(errors.ErrCodeMalformedRow,
			fmt.Sprintf("Row has missing data. Expected 4 columns, found %d", len(row)), nil)
	}
	// Extra columns beyond the four are ignored.
	req := dto.HolidayRequest{
		CountryCode: row[0],
		CountryName: row[1],
		HolidayDate: row[2],
		HolidayName: row[3],
	}
	_, err := s.holidayService.AddHoliday(req)
	return err
}
