package models

// Country is the reference entity mapping a short code to a display name.
// It is created lazily by the first holiday that references the code and
// removed again when its last holiday is deleted.
type Country struct {
	Code string `json:"countryCode" gorm:"column:country_code;primaryKey;size:3"`
	Name string `json:"countryName" gorm:"column:country_name;not null;uniqueIndex:idx_country_name"`
}

func (Country) TableName() string {
	return "country"
}
