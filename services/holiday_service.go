package services

import (
	"fmt"
	"strings"
	"time"

	"holidayapi/constants"
	"holidayapi/dto"
	"holidayapi/errors"
	"holidayapi/models"
	"holidayapi/repository"
	"holidayapi/services/logger"
	"holidayapi/validator"
)

// HolidayService owns the business rules for holiday records and the country
// registry they reference: field validation, the two per-country uniqueness
// invariants, country get-or-create on add, and orphaned-country cleanup on
// delete. Every write runs as one transaction against the store.
type HolidayService struct {
	store  repository.Store
	clock  validator.Clock
	logger logger.Logger
}

type HolidayServiceOptions struct {
	Store  repository.Store
	Clock  validator.Clock
	Logger logger.Logger
}

func NewHolidayService(opts HolidayServiceOptions) *HolidayService {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &HolidayService{
		store:  opts.Store,
		clock:  clock,
		logger: lg,
	}
}

// GetAllHolidays returns every stored holiday.
func (s *HolidayService) GetAllHolidays() ([]dto.HolidayResponse, error) {
	holidays, err := s.store.Holidays().All()
	if err != nil {
		return nil, err
	}
	return s.mapToResponses(holidays), nil
}

// GetHolidaysByCountryCode returns the holidays of one country.
func (s *HolidayService) GetHolidaysByCountryCode(code string) ([]dto.HolidayResponse, error) {
	code = strings.TrimSpace(code)
	holidays, err := s.store.Holidays().ByCountryCode(code)
	if err != nil {
		return nil, err
	}
	if len(holidays) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeNotFound,
			"No holidays found for country code: "+code, nil)
	}
	return s.mapToResponses(holidays), nil
}

// AddHoliday validates and persists a new holiday record, creating the
// country on first use. The date-duplicate check runs before the
// name-duplicate check.
func (s *HolidayService) AddHoliday(req dto.HolidayRequest) (*dto.HolidayResponse, error) {
	date, err := validator.ValidateHolidayRequest(&req, s.clock)
	if err != nil {
		return nil, err
	}

	var holiday models.Holiday
	err = s.store.Transact(func(tx repository.Store) error {
		if err := s.getOrCreateCountry(tx, req.CountryCode, req.CountryName); err != nil {
			return err
		}

		dateTaken, err := tx.Holidays().ExistsByCountryCodeAndDate(req.CountryCode, date)
		if err != nil {
			return err
		}
		if dateTaken {
			return errors.NewAppError(errors.ErrCodeDuplicate,
				"Duplicate holiday record for country code: "+req.CountryCode+" and date: "+req.HolidayDate, nil)
		}

		nameTaken, err := tx.Holidays().ExistsByCountryCodeAndName(req.CountryCode, req.HolidayName)
		if err != nil {
			return err
		}
		if nameTaken {
			return errors.NewAppError(errors.ErrCodeDuplicate,
				"Duplicate holiday record for country code: "+req.CountryCode+" and name: "+req.HolidayName, nil)
		}

		holiday = models.Holiday{
			CountryCode: req.CountryCode,
			CountryName: req.CountryName,
			HolidayDate: date,
			HolidayName: req.HolidayName,
			DayOfWeek:   date.Weekday().String(),
		}
		if err := tx.Holidays().Create(&holiday); err != nil {
			return mapStorageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("holiday added: %s %s", holiday.CountryCode, req.HolidayDate)
	return s.mapToResponse(&holiday, constants.MsgHolidayAdded), nil
}

// UpdateHolidayByIDAndCountryCode rewrites an existing record addressed by
// id and country code.
func (s *HolidayService) UpdateHolidayByIDAndCountryCode(id uint, code string, req dto.HolidayRequest) (*dto.HolidayResponse, error) {
	code = strings.TrimSpace(code)
	date, err := validator.ValidateHolidayRequest(&req, s.clock)
	if err != nil {
		return nil, err
	}

	var updated *models.Holiday
	err = s.store.Transact(func(tx repository.Store) error {
		target, err := tx.Holidays().ByIDAndCountryCode(id, code)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.NewAppError(errors.ErrCodeNotFound,
				fmt.Sprintf("Holiday not found with ID: %d and country code: %s", id, code), nil)
		}
		updated, err = s.applyUpdate(tx, target, req, date)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("holiday updated: id=%d %s", updated.ID, updated.CountryCode)
	return s.mapToResponse(updated, constants.MsgHolidayUpdated), nil
}

// UpdateHolidayByCountryCodeAndDate rewrites an existing record addressed by
// country code and holiday date.
func (s *HolidayService) UpdateHolidayByCountryCodeAndDate(code, dateText string, req dto.HolidayRequest) (*dto.HolidayResponse, error) {
	code = strings.TrimSpace(code)
	pathDate, err := validator.ValidateDate(strings.TrimSpace(dateText), s.clock)
	if err != nil {
		return nil, err
	}
	date, err := validator.ValidateHolidayRequest(&req, s.clock)
	if err != nil {
		return nil, err
	}

	var updated *models.Holiday
	err = s.store.Transact(func(tx repository.Store) error {
		target, err := tx.Holidays().ByCountryCodeAndDate(code, pathDate)
		if err != nil {
			return err
		}
		if target == nil {
			return errors.NewAppError(errors.ErrCodeNotFound,
				"Holiday not found with country code: "+code+" and date: "+dateText, nil)
		}
		updated, err = s.applyUpdate(tx, target, req, date)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("holiday updated: id=%d %s", updated.ID, updated.CountryCode)
	return s.mapToResponse(updated, constants.MsgHolidayUpdated), nil
}

// DeleteByCountryCode removes every holiday of a country and the country
// record itself once no holidays remain.
func (s *HolidayService) DeleteByCountryCode(code string) (int64, error) {
	code = strings.TrimSpace(code)

	var deleted int64
	err := s.store.Transact(func(tx repository.Store) error {
		count, err := tx.Holidays().CountByCountryCode(code)
		if err != nil {
			return err
		}
		if count == 0 {
			return errors.NewAppError(errors.ErrCodeNotFound,
				"No holidays found for country code: "+code, nil)
		}

		deleted, err = tx.Holidays().DeleteByCountryCode(code)
		if err != nil {
			return err
		}
		return s.releaseIfOrphaned(tx, code)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("deleted %d holidays for country %s", deleted, code)
	return deleted, nil
}

// DeleteByCountryCodeAndDate removes one holiday addressed by country code
// and date, cleaning up the country when it was the last one.
func (s *HolidayService) DeleteByCountryCodeAndDate(code, dateText string) (int64, error) {
	code = strings.TrimSpace(code)

	var deleted int64
	err := s.store.Transact(func(tx repository.Store) error {
		country, err := tx.Countries().ByCode(code)
		if err != nil {
			return err
		}
		if country == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Country code not found: "+code, nil)
		}

		date, err := validator.ValidateDate(strings.TrimSpace(dateText), s.clock)
		if err != nil {
			return err
		}

		exists, err := tx.Holidays().ExistsByCountryCodeAndDate(code, date)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewAppError(errors.ErrCodeNotFound,
				"No holiday found for country code "+code+" on date "+dateText, nil)
		}

		deleted, err = tx.Holidays().DeleteByCountryCodeAndDate(code, date)
		if err != nil {
			return err
		}
		return s.releaseIfOrphaned(tx, code)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("deleted holiday for country %s on %s", code, dateText)
	return deleted, nil
}

// getOrCreateCountry resolves the country for a create. An existing code must
// carry the exact supplied name, and a new code may not reuse a name owned by
// another code.
func (s *HolidayService) getOrCreateCountry(tx repository.Store, code, name string) error {
	country, err := tx.Countries().ByCode(code)
	if err != nil {
		return err
	}
	if country != nil {
		if country.Name != name {
			return errors.NewAppError(errors.ErrCodeNameConflict,
				"Country name does not match the existing record for country code: "+code, nil)
		}
		return nil
	}

	nameTaken, err := tx.Countries().ExistsByName(name)
	if err != nil {
		return err
	}
	if nameTaken {
		return errors.NewAppError(errors.ErrCodeNameConflict,
			"Country code does not match the existing record for country name: "+name, nil)
	}

	if err := tx.Countries().Create(&models.Country{Code: code, Name: name}); err != nil {
		if repository.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrCodeNameConflict,
				"Country name does not match the existing record for country code: "+code, err)
		}
		return err
	}
	return nil
}

// releaseIfOrphaned drops the country record once it has no holidays left.
// A storage error here propagates to the caller.
func (s *HolidayService) releaseIfOrphaned(tx repository.Store, code string) error {
	remaining, err := tx.Holidays().CountByCountryCode(code)
	if err != nil {
		return err
	}
	if remaining == 0 {
		return tx.Countries().DeleteByCode(code)
	}
	return nil
}

// applyUpdate runs the update-path checks against target and rewrites all
// four business fields plus the derived day of week.
func (s *HolidayService) applyUpdate(tx repository.Store, target *models.Holiday, req dto.HolidayRequest, date time.Time) (*models.Holiday, error) {
	country, err := tx.Countries().ByCode(req.CountryCode)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, errors.NewAppError(errors.ErrCodeCountryMismatch,
			"Country code not found: "+req.CountryCode, nil)
	}
	if country.Name != req.CountryName {
		return nil, errors.NewAppError(errors.ErrCodeCountryMismatch,
			"Country name: "+req.CountryName+" does not match the country code", nil)
	}

	// The new name and date may only collide with the target itself.
	byDate, err := tx.Holidays().ByCountryCodeAndDate(req.CountryCode, date)
	if err != nil {
		return nil, err
	}
	if byDate != nil && byDate.ID != target.ID {
		return nil, errors.NewAppError(errors.ErrCodeDuplicate,
			"Holiday name or date already exists for the country", nil)
	}
	byName, err := tx.Holidays().ByCountryCodeAndName(req.CountryCode, req.HolidayName)
	if err != nil {
		return nil, err
	}
	if byName != nil && byName.ID != target.ID {
		return nil, errors.NewAppError(errors.ErrCodeDuplicate,
			"Holiday name or date already exists for the country", nil)
	}

	target.CountryCode = req.CountryCode
	target.CountryName = req.CountryName
	target.HolidayDate = date
	target.HolidayName = req.HolidayName
	target.DayOfWeek = date.Weekday().String()

	if err := tx.Holidays().Save(target); err != nil {
		return nil, mapStorageError(err)
	}
	return target, nil
}

// mapStorageError translates a storage-layer uniqueness violation into the
// same duplicate kind the early-exit checks produce.
func mapStorageError(err error) error {
	if repository.IsUniqueViolation(err) {
		return errors.NewAppError(errors.ErrCodeDuplicate,
			"A holiday with the same country code, name and date already exists.", err)
	}
	return err
}

func (s *HolidayService) mapToResponse(holiday *models.Holiday, message string) *dto.HolidayResponse {
	return &dto.HolidayResponse{
		ID:          holiday.ID,
		CountryCode: holiday.CountryCode,
		CountryName: holiday.CountryName,
		HolidayDate: holiday.HolidayDate.Format(constants.DateLayout),
		HolidayName: holiday.HolidayName,
		DayOfWeek:   holiday.DayOfWeek,
		Message:     message,
	}
}

func (s *HolidayService) mapToResponses(holidays []models.Holiday) []dto.HolidayResponse {
	responses := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		responses = append(responses, *s.mapToResponse(&holidays[i], constants.MsgHolidayFetched))
	}
	return responses
}
