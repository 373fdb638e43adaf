// Package seed loads an initial set of villas from a YAML file into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"villa-api-backend/config"
	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/mapper"
	"villa-api-backend/internal/repository"
)

// File is the layout of a seed file.
type File struct {
	Villas []Villa `yaml:"villas"`
}

// Villa is one seeded villa.
type Villa struct {
	Name      string  `yaml:"name"`
	Details   string  `yaml:"details"`
	Rate      float64 `yaml:"rate"`
	Occupancy int     `yaml:"occupancy"`
	Sqft      int     `yaml:"sqft"`
	ImageURL  string  `yaml:"imageUrl"`
	Amenity   string  `yaml:"amenity"`
}

func (v Villa) create() dto.VillaCreate {
	return dto.VillaCreate{
		Name:      v.Name,
		Details:   v.Details,
		Rate:      v.Rate,
		Occupancy: v.Occupancy,
		Sqft:      v.Sqft,
		ImageURL:  v.ImageURL,
		Amenity:   v.Amenity,
	}
}

// Service inserts seed villas through the villa repository.
type Service struct {
	cfg    *config.SeedConfig
	villas *repository.VillaRepository
	log    *zap.Logger
}

// NewService creates a seed service.
func NewService(cfg *config.SeedConfig, villas *repository.VillaRepository, log *zap.Logger) *Service {
	return &Service{cfg: cfg, villas: villas, log: log}
}

// Run seeds the store when seeding is enabled. It returns the number of villas inserted.
func (s *Service) Run(ctx context.Context) (int, error) {
	if !s.cfg.Enabled {
		s.log.Info("seeding is disabled")
		return 0, nil
	}
	file, err := ReadFile(s.cfg.Path)
	if err != nil {
		return 0, err
	}
	return s.SeedOnce(ctx, file)
}

// SeedOnce inserts every villa of file, but only when the villa table is empty.
// All entries are validated before the first insert.
func (s *Service) SeedOnce(ctx context.Context, file *File) (int, error) {
	existing, err := s.villas.Get(ctx, nil, false)
	if err != nil {
		return 0, fmt.Errorf("check existing villas: %w", err)
	}
	if existing != nil {
		s.log.Info("villas already present, skipping seed")
		return 0, nil
	}

	creates := make([]dto.VillaCreate, 0, len(file.Villas))
	var errs []error
	for i, v := range file.Villas {
		in := v.create()
		if err := dto.Validate(in); err != nil {
			errs = append(errs, fmt.Errorf("villa %d (%q): %w", i, v.Name, err))
			continue
		}
		creates = append(creates, in)
	}
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}

	for i, in := range creates {
		villa := mapper.VillaFromCreate(in)
		if err := s.villas.Create(ctx, &villa); err != nil {
			return i, fmt.Errorf("seed villa %q: %w", in.Name, err)
		}
	}
	s.log.Info("seeded villas", zap.Int("count", len(creates)))
	return len(creates), nil
}

// ReadFile decodes a seed file.
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &file, nil
}
