package model

import "time"

// Villa represents a rentable unit.
type Villa struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:128;not null"`
	Details   string    `gorm:"type:text"`
	Rate      float64   `gorm:"not null"`
	Occupancy int       `gorm:"not null;index"`
	Sqft      int       `gorm:"not null"`
	ImageURL  string    `gorm:"size:512"`
	Amenity   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
