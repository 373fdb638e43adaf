package dto

import "time"

// VillaNumberCreate is the body of a villa number create request.
type VillaNumberCreate struct {
	VillaNo        int64  `json:"villaNo" validate:"gt=0"`
	VillaID        int64  `json:"villaId" validate:"gt=0"`
	SpecialDetails string `json:"specialDetails"`
}

// VillaNumberUpdate is the body of a villa number update request and the target of its patches.
type VillaNumberUpdate struct {
	VillaNo        int64  `json:"villaNo" validate:"gt=0"`
	VillaID        int64  `json:"villaId" validate:"gt=0"`
	SpecialDetails string `json:"specialDetails"`
}

// VillaNumber is the read shape of a villa number.
type VillaNumber struct {
	VillaNo        int64     `json:"villaNo"`
	VillaID        int64     `json:"villaId"`
	SpecialDetails string    `json:"specialDetails"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
