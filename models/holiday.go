package models

import (
	"time"
)

// Holiday is one dated named event tied to a country code. Uniqueness per
// country is enforced on the date and on the name by the two composite
// indexes; the database constraint is the source of truth, application-level
// checks are early exits only.
type Holiday struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CountryCode string    `json:"countryCode" gorm:"column:country_code;size:3;not null;uniqueIndex:idx_holiday_country_date;uniqueIndex:idx_holiday_country_name"`
	CountryName string    `json:"countryName" gorm:"column:country_name;not null"`
	HolidayDate time.Time `json:"holidayDate" gorm:"column:holiday_date;type:date;not null;uniqueIndex:idx_holiday_country_date"`
	HolidayName string    `json:"holidayName" gorm:"column:holiday_name;not null;uniqueIndex:idx_holiday_country_name"`
	DayOfWeek   string    `json:"dayOfWeek" gorm:"column:day_of_week"` // recomputed from HolidayDate on every write
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Holiday) TableName() string {
	return "federal_holiday"
}
