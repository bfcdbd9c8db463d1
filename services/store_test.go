package services

import (
	"time"

	"holidayapi/models"
	"holidayapi/repository"
)

// memStore is an in-memory repository.Store for tests. Transact runs the
// callback directly; tests are arranged so no mid-transaction failure leaves
// partial writes to assert on.
type memStore struct {
	holidays  []models.Holiday
	countries map[string]string
	nextID    uint
}

func newMemStore() *memStore {
	return &memStore{
		countries: map[string]string{},
		nextID:    1,
	}
}

func (s *memStore) Holidays() repository.HolidayRepository {
	return (*memHolidays)(s)
}

func (s *memStore) Countries() repository.CountryRepository {
	return (*memCountries)(s)
}

func (s *memStore) Transact(fn func(repository.Store) error) error {
	return fn(s)
}

func (s *memStore) hasCountry(code string) bool {
	_, ok := s.countries[code]
	return ok
}

type memHolidays memStore

func (m *memHolidays) All() ([]models.Holiday, error) {
	out := make([]models.Holiday, len(m.holidays))
	copy(out, m.holidays)
	return out, nil
}

func (m *memHolidays) ByCountryCode(code string) ([]models.Holiday, error) {
	var out []models.Holiday
	for _, h := range m.holidays {
		if h.CountryCode == code {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memHolidays) ByIDAndCountryCode(id uint, code string) (*models.Holiday, error) {
	for _, h := range m.holidays {
		if h.ID == id && h.CountryCode == code {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memHolidays) ByCountryCodeAndDate(code string, date time.Time) (*models.Holiday, error) {
	for _, h := range m.holidays {
		if h.CountryCode == code && h.HolidayDate.Equal(date) {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memHolidays) ByCountryCodeAndName(code, name string) (*models.Holiday, error) {
	for _, h := range m.holidays {
		if h.CountryCode == code && h.HolidayName == name {
			found := h
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memHolidays) ExistsByCountryCodeAndDate(code string, date time.Time) (bool, error) {
	h, _ := m.ByCountryCodeAndDate(code, date)
	return h != nil, nil
}

func (m *memHolidays) ExistsByCountryCodeAndName(code, name string) (bool, error) {
	h, _ := m.ByCountryCodeAndName(code, name)
	return h != nil, nil
}

func (m *memHolidays) CountByCountryCode(code string) (int64, error) {
	var count int64
	for _, h := range m.holidays {
		if h.CountryCode == code {
			count++
		}
	}
	return count, nil
}

func (m *memHolidays) Create(holiday *models.Holiday) error {
	holiday.ID = m.nextID
	m.nextID++
	m.holidays = append(m.holidays, *holiday)
	return nil
}

func (m *memHolidays) Save(holiday *models.Holiday) error {
	for i := range m.holidays {
		if m.holidays[i].ID == holiday.ID {
			m.holidays[i] = *holiday
			return nil
		}
	}
	m.holidays = append(m.holidays, *holiday)
	return nil
}

func (m *memHolidays) DeleteByCountryCode(code string) (int64, error) {
	var kept []models.Holiday
	var deleted int64
	for _, h := range m.holidays {
		if h.CountryCode == code {
			deleted++
			continue
		}
		kept = append(kept, h)
	}
	m.holidays = kept
	return deleted, nil
}

func (m *memHolidays) DeleteByCountryCodeAndDate(code string, date time.Time) (int64, error) {
	var kept []models.Holiday
	var deleted int64
	for _, h := range m.holidays {
		if h.CountryCode == code && h.HolidayDate.Equal(date) {
			deleted++
			continue
		}
		kept = append(kept, h)
	}
	m.holidays = kept
	return deleted, nil
}

type memCountries memStore

func (m *memCountries) ByCode(code string) (*models.Country, error) {
	name, ok := m.countries[code]
	if !ok {
		return nil, nil
	}
	return &models.Country{Code: code, Name: name}, nil
}

func (m *memCountries) ExistsByName(name string) (bool, error) {
	for _, n := range m.countries {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCountries) Create(country *models.Country) error {
	m.countries[country.Code] = country.Name
	return nil
}

func (m *memCountries) DeleteByCode(code string) error {
	delete(m.countries, code)
	return nil
}
