package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/mapper"
	"villa-api-backend/internal/patch"
	"villa-api-backend/internal/repository"
	"villa-api-backend/internal/response"
	"villa-api-backend/internal/store"
)

// VillaService answers villa requests.
type VillaService struct {
	villas      *repository.VillaRepository
	maxPageSize int
	log         *zap.Logger
}

// NewVillaService creates a villa service. maxPageSize <= 0 selects DefaultMaxPageSize.
func NewVillaService(villas *repository.VillaRepository, maxPageSize int, log *zap.Logger) *VillaService {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &VillaService{villas: villas, maxPageSize: maxPageSize, log: orNop(log)}
}

// ListVillas returns villas matching q.
func (s *VillaService) ListVillas(ctx context.Context, q ListQuery) response.Envelope {
	if msgs := q.validate(); len(msgs) > 0 {
		return response.BadRequest(msgs...)
	}

	var occupancy, search store.Scope
	if q.Occupancy > 0 {
		occupancy = repository.VillaByOccupancy(q.Occupancy)
	}
	if q.Search != "" {
		search = repository.VillaNameContains(q.Search)
	}

	villas, err := s.villas.GetAll(ctx, repository.All(occupancy, search), ClampPageSize(q.PageSize, s.maxPageSize), q.PageNumber)
	if err != nil {
		return fromError(ctx, s.log, "list villas", err)
	}
	return response.OK(mapper.VillasToDTO(villas))
}

// GetVilla returns the villa with the given id.
func (s *VillaService) GetVilla(ctx context.Context, id int64) response.Envelope {
	if id <= 0 {
		return invalidID("id")
	}
	villa, err := s.villas.Get(ctx, repository.VillaByID(id), true)
	if err != nil {
		return fromError(ctx, s.log, "get villa", err)
	}
	if villa == nil {
		return response.NotFound(fmt.Sprintf("villa %d not found", id))
	}
	return response.OK(mapper.VillaToDTO(*villa))
}

// CreateVilla stores a new villa and returns it with its generated id.
func (s *VillaService) CreateVilla(ctx context.Context, in *dto.VillaCreate) response.Envelope {
	if in == nil {
		return response.BadRequest("request body is required")
	}
	if err := dto.Validate(in); err != nil {
		return fromError(ctx, s.log, "create villa", err)
	}

	villa := mapper.VillaFromCreate(*in)
	if err := s.villas.Create(ctx, &villa); err != nil {
		return fromError(ctx, s.log, "create villa", err)
	}
	return response.Created(mapper.VillaToDTO(villa))
}

// UpdateVilla replaces every field of the villa with the given id.
func (s *VillaService) UpdateVilla(ctx context.Context, id int64, in *dto.VillaUpdate) response.Envelope {
	if in == nil {
		return response.BadRequest("request body is required")
	}
	if id <= 0 {
		return invalidID("id")
	}
	if in.ID != id {
		return response.BadRequest(fmt.Sprintf("id %d in body does not match id %d in path", in.ID, id))
	}
	if err := dto.Validate(in); err != nil {
		return fromError(ctx, s.log, "update villa", err)
	}

	existing, err := s.villas.Get(ctx, repository.VillaByID(id), false)
	if err != nil {
		return fromError(ctx, s.log, "update villa", err)
	}
	if existing == nil {
		return response.NotFound(fmt.Sprintf("villa %d not found", id))
	}

	villa := mapper.VillaFromUpdate(*in)
	if err := s.villas.Update(ctx, &villa); err != nil {
		return fromError(ctx, s.log, "update villa", err)
	}
	return response.NoContent()
}

// PatchVilla applies ops to the villa with the given id.
func (s *VillaService) PatchVilla(ctx context.Context, id int64, ops []patch.Operation) response.Envelope {
	if ops == nil {
		return response.BadRequest("patch document is required")
	}
	if id <= 0 {
		return invalidID("id")
	}

	existing, err := s.villas.Get(ctx, repository.VillaByID(id), false)
	if err != nil {
		return fromError(ctx, s.log, "patch villa", err)
	}
	if existing == nil {
		return response.NotFound(fmt.Sprintf("villa %d not found", id))
	}

	candidate, err := patch.Apply(mapper.VillaToUpdate(*existing), ops, "id")
	if err != nil {
		return fromError(ctx, s.log, "patch villa", err)
	}
	if err := dto.Validate(candidate); err != nil {
		return fromError(ctx, s.log, "patch villa", err)
	}

	villa := mapper.VillaFromUpdate(candidate)
	if err := s.villas.Update(ctx, &villa); err != nil {
		return fromError(ctx, s.log, "patch villa", err)
	}
	return response.NoContent()
}

// DeleteVilla removes the villa with the given id.
func (s *VillaService) DeleteVilla(ctx context.Context, id int64) response.Envelope {
	if id <= 0 {
		return invalidID("id")
	}
	villa, err := s.villas.Get(ctx, repository.VillaByID(id), true)
	if err != nil {
		return fromError(ctx, s.log, "delete villa", err)
	}
	if villa == nil {
		return response.NotFound(fmt.Sprintf("villa %d not found", id))
	}
	if err := s.villas.Remove(ctx, villa); err != nil {
		return fromError(ctx, s.log, "delete villa", err)
	}
	return response.NoContent()
}

// MaxPageSize is the largest page size a list returns.
func (s *VillaService) MaxPageSize() int {
	return s.maxPageSize
}
