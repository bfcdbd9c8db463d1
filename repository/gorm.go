package repository

import (
	"errors"
	"time"

	"holidayapi/models"

	"gorm.io/gorm"
)

// NewGormStore wraps a gorm connection as a Store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) Holidays() HolidayRepository {
	return &gormHolidayRepository{db: s.db}
}

func (s *gormStore) Countries() CountryRepository {
	return &gormCountryRepository{db: s.db}
}

func (s *gormStore) Transact(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// IsUniqueViolation reports whether err is a storage-layer uniqueness
// constraint violation. Requires TranslateError on the gorm config.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

type gormHolidayRepository struct {
	db *gorm.DB
}

func (r *gormHolidayRepository) All() ([]models.Holiday, error) {
	var holidays []models.Holiday
	if err := r.db.Order("country_code, holiday_date").Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *gormHolidayRepository) ByCountryCode(code string) ([]models.Holiday, error) {
	var holidays []models.Holiday
	if err := r.db.Where("country_code = ?", code).Order("holiday_date").Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *gormHolidayRepository) ByIDAndCountryCode(id uint, code string) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.Where("id = ? AND country_code = ?", id, code).First(&holiday).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *gormHolidayRepository) ByCountryCodeAndDate(code string, date time.Time) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.Where("country_code = ? AND holiday_date = ?", code, date).First(&holiday).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *gormHolidayRepository) ByCountryCodeAndName(code, name string) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.Where("country_code = ? AND holiday_name = ?", code, name).First(&holiday).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (r *gormHolidayRepository) ExistsByCountryCodeAndDate(code string, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Holiday{}).
		Where("country_code = ? AND holiday_date = ?", code, date).
		Count(&count).Error
	return count > 0, err
}

func (r *gormHolidayRepository) ExistsByCountryCodeAndName(code, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Holiday{}).
		Where("country_code = ? AND holiday_name = ?", code, name).
		Count(&count).Error
	return count > 0, err
}

func (r *gormHolidayRepository) CountByCountryCode(code string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Holiday{}).Where("country_code = ?", code).Count(&count).Error
	return count, err
}

func (r *gormHolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *gormHolidayRepository) Save(holiday *models.Holiday) error {
	return r.db.Save(holiday).Error
}

func (r *gormHolidayRepository) DeleteByCountryCode(code string) (int64, error) {
	result := r.db.Where("country_code = ?", code).Delete(&models.Holiday{})
	return result.RowsAffected, result.Error
}

func (r *gormHolidayRepository) DeleteByCountryCodeAndDate(code string, date time.Time) (int64, error) {
	result := r.db.Where("country_code = ? AND holiday_date = ?", code, date).Delete(&models.Holiday{})
	return result.RowsAffected, result.Error
}

type gormCountryRepository struct {
	db *gorm.DB
}

func (r *gormCountryRepository) ByCode(code string) (*models.Country, error) {
	var country models.Country
	err := r.db.Where("country_code = ?", code).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *gormCountryRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Country{}).Where("country_name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *gormCountryRepository) Create(country *models.Country) error {
	return r.db.Create(country).Error
}

func (r *gormCountryRepository) DeleteByCode(code string) error {
	return r.db.Where("country_code = ?", code).Delete(&models.Country{}).Error
}
