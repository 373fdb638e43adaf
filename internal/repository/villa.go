package repository

import (
	"strings"

	"gorm.io/gorm"

	"villa-api-backend/internal/model"
	"villa-api-backend/internal/store"
)

// VillaRepository stores villas.
type VillaRepository struct {
	*Repository[model.Villa]
}

// NewVillaRepository creates a villa repository over db. Villas are listed in identity order.
func NewVillaRepository(db *gorm.DB) *VillaRepository {
	return &VillaRepository{Repository: New(store.NewGormStore[model.Villa](db, "id"))}
}

// VillaByID matches the villa with the given identity.
func VillaByID(id int64) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

// VillaByOccupancy matches villas with exactly the given occupancy.
func VillaByOccupancy(occupancy int) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("occupancy = ?", occupancy)
	}
}

// VillaNameContains matches villas whose name contains term, ignoring case.
func VillaNameContains(term string) store.Scope {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern)
	}
}

// All combines scopes; nil entries are skipped. The result is nil when nothing is left.
func All(scopes ...store.Scope) store.Scope {
	var active []store.Scope
	for _, s := range scopes {
		if s != nil {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range active {
			db = s(db)
		}
		return db
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
