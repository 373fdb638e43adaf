// Package mapper converts between entities and their transfer shapes.
package mapper

import (
	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/model"
)

// VillaFromCreate builds a new villa entity from a create request.
func VillaFromCreate(in dto.VillaCreate) model.Villa {
	return model.Villa{
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Occupancy: in.Occupancy,
		Sqft:      in.Sqft,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}

// VillaFromUpdate builds the replacement villa entity of a full update.
func VillaFromUpdate(in dto.VillaUpdate) model.Villa {
	return model.Villa{
		ID:        in.ID,
		Name:      in.Name,
		Details:   in.Details,
		Rate:      in.Rate,
		Occupancy: in.Occupancy,
		Sqft:      in.Sqft,
		ImageURL:  in.ImageURL,
		Amenity:   in.Amenity,
	}
}

// VillaToUpdate returns the update shape of v, the target of villa patches.
func VillaToUpdate(v model.Villa) dto.VillaUpdate {
	return dto.VillaUpdate{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

// VillaToDTO returns the read shape of v.
func VillaToDTO(v model.Villa) dto.Villa {
	return dto.Villa{
		ID:        v.ID,
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// VillasToDTO maps every villa; the result is never nil.
func VillasToDTO(vs []model.Villa) []dto.Villa {
	out := make([]dto.Villa, 0, len(vs))
	for _, v := range vs {
		out = append(out, VillaToDTO(v))
	}
	return out
}

// VillaNumberFromCreate builds a new villa number entity from a create request.
func VillaNumberFromCreate(in dto.VillaNumberCreate) model.VillaNumber {
	return model.VillaNumber{VillaNo: in.VillaNo, VillaID: in.VillaID, SpecialDetails: in.SpecialDetails}
}

// VillaNumberFromUpdate builds the replacement villa number entity of a full update.
func VillaNumberFromUpdate(in dto.VillaNumberUpdate) model.VillaNumber {
	return model.VillaNumber{VillaNo: in.VillaNo, VillaID: in.VillaID, SpecialDetails: in.SpecialDetails}
}

// VillaNumberToUpdate returns the update shape of vn, the target of villa number patches.
func VillaNumberToUpdate(vn model.VillaNumber) dto.VillaNumberUpdate {
	return dto.VillaNumberUpdate{VillaNo: vn.VillaNo, VillaID: vn.VillaID, SpecialDetails: vn.SpecialDetails}
}

// VillaNumberToDTO returns the read shape of vn.
func VillaNumberToDTO(vn model.VillaNumber) dto.VillaNumber {
	return dto.VillaNumber{
		VillaNo:        vn.VillaNo,
		VillaID:        vn.VillaID,
		SpecialDetails: vn.SpecialDetails,
		CreatedAt:      vn.CreatedAt,
		UpdatedAt:      vn.UpdatedAt,
	}
}

// VillaNumbersToDTO maps every villa number; the result is never nil.
func VillaNumbersToDTO(vns []model.VillaNumber) []dto.VillaNumber {
	out := make([]dto.VillaNumber, 0, len(vns))
	for _, vn := range vns {
		out = append(out, VillaNumberToDTO(vn))
	}
	return out
}
