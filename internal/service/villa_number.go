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

// VillaNumberService answers villa number requests.
type VillaNumberService struct {
	numbers     *repository.VillaNumberRepository
	maxPageSize int
	log         *zap.Logger
}

// NewVillaNumberService creates a villa number service. maxPageSize <= 0 selects DefaultMaxPageSize.
func NewVillaNumberService(numbers *repository.VillaNumberRepository, maxPageSize int, log *zap.Logger) *VillaNumberService {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	return &VillaNumberService{numbers: numbers, maxPageSize: maxPageSize, log: orNop(log)}
}

// ListVillaNumbers returns villa numbers matching q.
func (s *VillaNumberService) ListVillaNumbers(ctx context.Context, q ListQuery) response.Envelope {
	if msgs := q.validate(); len(msgs) > 0 {
		return response.BadRequest(msgs...)
	}

	var scope store.Scope
	if q.VillaID > 0 {
		scope = repository.VillaNumberByVilla(q.VillaID)
	}

	numbers, err := s.numbers.GetAll(ctx, scope, ClampPageSize(q.PageSize, s.maxPageSize), q.PageNumber)
	if err != nil {
		return fromError(ctx, s.log, "list villa numbers", err)
	}
	return response.OK(mapper.VillaNumbersToDTO(numbers))
}

// GetVillaNumber returns the villa number no.
func (s *VillaNumberService) GetVillaNumber(ctx context.Context, no int64) response.Envelope {
	if no <= 0 {
		return invalidID("villaNo")
	}
	vn, err := s.numbers.Get(ctx, repository.VillaNumberByNo(no), true)
	if err != nil {
		return fromError(ctx, s.log, "get villa number", err)
	}
	if vn == nil {
		return response.NotFound(fmt.Sprintf("villa number %d not found", no))
	}
	return response.OK(mapper.VillaNumberToDTO(*vn))
}

// CreateVillaNumber stores a new villa number for an existing villa.
func (s *VillaNumberService) CreateVillaNumber(ctx context.Context, in *dto.VillaNumberCreate) response.Envelope {
	if in == nil {
		return response.BadRequest("request body is required")
	}
	if err := dto.Validate(in); err != nil {
		return fromError(ctx, s.log, "create villa number", err)
	}

	existing, err := s.numbers.Get(ctx, repository.VillaNumberByNo(in.VillaNo), false)
	if err != nil {
		return fromError(ctx, s.log, "create villa number", err)
	}
	if existing != nil {
		return response.BadRequest(fmt.Sprintf("villa number %d already exists", in.VillaNo))
	}

	vn := mapper.VillaNumberFromCreate(*in)
	if err := s.numbers.Create(ctx, &vn); err != nil {
		return fromError(ctx, s.log, "create villa number", err)
	}
	return response.Created(mapper.VillaNumberToDTO(vn))
}

// UpdateVillaNumber replaces every field of villa number no.
func (s *VillaNumberService) UpdateVillaNumber(ctx context.Context, no int64, in *dto.VillaNumberUpdate) response.Envelope {
	if in == nil {
		return response.BadRequest("request body is required")
	}
	if no <= 0 {
		return invalidID("villaNo")
	}
	if in.VillaNo != no {
		return response.BadRequest(fmt.Sprintf("villaNo %d in body does not match villaNo %d in path", in.VillaNo, no))
	}
	if err := dto.Validate(in); err != nil {
		return fromError(ctx, s.log, "update villa number", err)
	}

	existing, err := s.numbers.Get(ctx, repository.VillaNumberByNo(no), false)
	if err != nil {
		return fromError(ctx, s.log, "update villa number", err)
	}
	if existing == nil {
		return response.NotFound(fmt.Sprintf("villa number %d not found", no))
	}

	vn := mapper.VillaNumberFromUpdate(*in)
	if err := s.numbers.Update(ctx, &vn); err != nil {
		return fromError(ctx, s.log, "update villa number", err)
	}
	return response.NoContent()
}

// PatchVillaNumber applies ops to villa number no.
func (s *VillaNumberService) PatchVillaNumber(ctx context.Context, no int64, ops []patch.Operation) response.Envelope {
	if ops == nil {
		return response.BadRequest("patch document is required")
	}
	if no <= 0 {
		return invalidID("villaNo")
	}

	existing, err := s.numbers.Get(ctx, repository.VillaNumberByNo(no), false)
	if err != nil {
		return fromError(ctx, s.log, "patch villa number", err)
	}
	if existing == nil {
		return response.NotFound(fmt.Sprintf("villa number %d not found", no))
	}

	candidate, err := patch.Apply(mapper.VillaNumberToUpdate(*existing), ops, "villaNo")
	if err != nil {
		return fromError(ctx, s.log, "patch villa number", err)
	}
	if err := dto.Validate(candidate); err != nil {
		return fromError(ctx, s.log, "patch villa number", err)
	}

	vn := mapper.VillaNumberFromUpdate(candidate)
	if err := s.numbers.Update(ctx, &vn); err != nil {
		return fromError(ctx, s.log, "patch villa number", err)
	}
	return response.NoContent()
}

// DeleteVillaNumber removes villa number no.
func (s *VillaNumberService) DeleteVillaNumber(ctx context.Context, no int64) response.Envelope {
	if no <= 0 {
		return invalidID("villaNo")
	}
	vn, err := s.numbers.Get(ctx, repository.VillaNumberByNo(no), true)
	if err != nil {
		return fromError(ctx, s.log, "delete villa number", err)
	}
	if vn == nil {
		return response.NotFound(fmt.Sprintf("villa number %d not found", no))
	}
	if err := s.numbers.Remove(ctx, vn); err != nil {
		return fromError(ctx, s.log, "delete villa number", err)
	}
	return response.NoContent()
}

// MaxPageSize is the largest page size a list returns.
func (s *VillaNumberService) MaxPageSize() int {
	return s.maxPageSize
}
