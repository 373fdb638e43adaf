package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"villa-api-backend/internal/model"
	"villa-api-backend/internal/store"
)

// VillaNumberRepository stores villa numbers and checks that each one points at an existing villa.
type VillaNumberRepository struct {
	*Repository[model.VillaNumber]
	villas *VillaRepository
}

// NewVillaNumberRepository creates a villa number repository over db.
func NewVillaNumberRepository(db *gorm.DB, villas *VillaRepository) *VillaNumberRepository {
	return &VillaNumberRepository{
		Repository: New(store.NewGormStore[model.VillaNumber](db, "created_at, villa_no")),
		villas:     villas,
	}
}

// Create inserts vn after confirming its villa exists.
func (r *VillaNumberRepository) Create(ctx context.Context, vn *model.VillaNumber) error {
	if err := r.checkVilla(ctx, vn.VillaID); err != nil {
		return err
	}
	return r.Repository.Create(ctx, vn)
}

// Update replaces vn after confirming its villa exists.
func (r *VillaNumberRepository) Update(ctx context.Context, vn *model.VillaNumber) error {
	if err := r.checkVilla(ctx, vn.VillaID); err != nil {
		return err
	}
	return r.Repository.Update(ctx, vn)
}

// The store is not trusted to enforce the foreign key.
func (r *VillaNumberRepository) checkVilla(ctx context.Context, villaID int64) error {
	villa, err := r.villas.Get(ctx, VillaByID(villaID), false)
	if err != nil {
		return err
	}
	if villa == nil {
		return fmt.Errorf("%w: villa %d does not exist", model.ErrReferentialIntegrity, villaID)
	}
	return nil
}

// VillaNumberByNo matches the villa number with the given number.
func VillaNumberByNo(no int64) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("villa_no = ?", no)
	}
}

// VillaNumberByVilla matches villa numbers belonging to the given villa.
func VillaNumberByVilla(villaID int64) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("villa_id = ?", villaID)
	}
}
