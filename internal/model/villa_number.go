package model

import "time"

// VillaNumber is a numbered instance of a Villa. The number is supplied by the caller.
type VillaNumber struct {
	VillaNo        int64     `gorm:"primaryKey;autoIncrement:false"`
	VillaID        int64     `gorm:"index;not null"`
	SpecialDetails string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
