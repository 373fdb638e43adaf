package dto

import "time"

// VillaCreate is the body of a villa create request.
type VillaCreate struct {
	Name      string  `json:"name" validate:"required,max=128"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gt=0"`
	Occupancy int     `json:"occupancy" validate:"gt=0"`
	Sqft      int     `json:"sqft" validate:"gt=0"`
	ImageURL  string  `json:"imageUrl" validate:"max=512"`
	Amenity   string  `json:"amenity"`
}

// VillaUpdate is the body of a villa update request and the target of villa patches.
type VillaUpdate struct {
	ID        int64   `json:"id" validate:"gt=0"`
	Name      string  `json:"name" validate:"required,max=128"`
	Details   string  `json:"details"`
	Rate      float64 `json:"rate" validate:"gt=0"`
	Occupancy int     `json:"occupancy" validate:"gt=0"`
	Sqft      int     `json:"sqft" validate:"gt=0"`
	ImageURL  string  `json:"imageUrl" validate:"max=512"`
	Amenity   string  `json:"amenity"`
}

// Villa is the read shape of a villa.
type Villa struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Rate      float64   `json:"rate"`
	Occupancy int       `json:"occupancy"`
	Sqft      int       `json:"sqft"`
	ImageURL  string    `json:"imageUrl"`
	Amenity   string    `json:"amenity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
