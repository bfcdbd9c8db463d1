package repository

import (
	"time"

	"holidayapi/models"
)

// HolidayRepository is the persistence contract for holiday records. Lookups
// that can legitimately miss return a nil record rather than an error.
type HolidayRepository interface {
	All() ([]models.Holiday, error)
	ByCountryCode(code string) ([]models.Holiday, error)
	ByIDAndCountryCode(id uint, code string) (*models.Holiday, error)
	ByCountryCodeAndDate(code string, date time.Time) (*models.Holiday, error)
	ByCountryCodeAndName(code, name string) (*models.Holiday, error)
	ExistsByCountryCodeAndDate(code string, date time.Time) (bool, error)
	ExistsByCountryCodeAndName(code, name string) (bool, error)
	CountByCountryCode(code string) (int64, error)
	Create(holiday *models.Holiday) error
	Save(holiday *models.Holiday) error
	DeleteByCountryCode(code string) (int64, error)
	DeleteByCountryCodeAndDate(code string, date time.Time) (int64, error)
}

// CountryRepository is the persistence contract for the country registry.
type CountryRepository interface {
	ByCode(code string) (*models.Country, error)
	ExistsByName(name string) (bool, error)
	Create(country *models.Country) error
	DeleteByCode(code string) error
}

// Store bundles the repositories behind one transaction boundary. Transact
// runs fn against a store whose sub-writes commit or roll back together, so
// a country create and the holiday write it belongs to stay atomic.
type Store interface {
	Holidays() HolidayRepository
	Countries() CountryRepository
	Transact(fn func(Store) error) error
}
