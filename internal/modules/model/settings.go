package model

import "time"

// Settings is the singleton site configuration document.
type Settings struct {
	Base             `bson:",inline"`
	SiteName         string     `bson:"siteName" json:"siteName"`
	Email            string     `bson:"email" json:"email"`
	Phone            string     `bson:"phone" json:"phone"`
	Address          string     `bson:"address" json:"address"`
	Facebook         string     `bson:"facebook" json:"facebook"`
	Instagram        string     `bson:"instagram" json:"instagram"`
	LinkedIn         string     `bson:"linkedin" json:"linkedin"`
	MetaDescription  string     `bson:"metaDescription" json:"metaDescription"`
	OperationalHours string     `bson:"operationalHours" json:"operationalHours"`
	GoogleMapURL     string     `bson:"googleMapUrl" json:"googleMapUrl"`
	UpdatedAt        *time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultSettings is served when no settings document has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		SiteName:         "Doha Popular Facility Management",
		Email:            "info@dohapopular.com",
		Phone:            "+974 4444 0000",
		Address:          "Doha, Qatar",
		Facebook:         "https://facebook.com/dohapopular",
		Instagram:        "https://instagram.com/dohapopular",
		LinkedIn:         "https://linkedin.com/company/dohapopular",
		MetaDescription:  "Integrated facility management, cleaning, maintenance and manpower services across Qatar.",
		OperationalHours: "Sat - Thu: 8:00 AM - 6:00 PM",
		GoogleMapURL:     "https://www.google.com/maps?q=Doha,Qatar&output=embed",
	}
}
