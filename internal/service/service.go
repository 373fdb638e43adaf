// Package service turns villa and villa number requests into response envelopes.
//
// Every operation is a method that takes already-decoded request parameters and returns a fresh
// response.Envelope. Validation and not-found conditions short-circuit before the store is touched;
// any other failure is logged and folded into the envelope instead of being returned.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/logging"
	"villa-api-backend/internal/model"
	"villa-api-backend/internal/response"
)

// DefaultMaxPageSize caps list page sizes when no limit is configured.
const DefaultMaxPageSize = 100

// ListQuery carries the optional filters and pagination of a list request.
type ListQuery struct {
	// PageSize 0 returns every match. Values above the configured cap are clamped.
	PageSize   int
	PageNumber int

	// Villa filters.
	Occupancy int
	Search    string

	// Villa number filter.
	VillaID int64
}

func (q ListQuery) validate() []string {
	var msgs []string
	if q.PageSize < 0 {
		msgs = append(msgs, "pageSize must not be negative")
	}
	if q.PageNumber < 1 {
		msgs = append(msgs, "pageNumber must be at least 1")
	}
	if q.Occupancy < 0 {
		msgs = append(msgs, "filterOccupancy must not be negative")
	}
	if q.VillaID < 0 {
		msgs = append(msgs, "villaId must not be negative")
	}
	return msgs
}

// ClampPageSize returns the page size a list actually uses when limit caps it.
func ClampPageSize(size, limit int) int {
	if limit > 0 && size > limit {
		return limit
	}
	return size
}

func invalidID(name string) response.Envelope {
	return response.BadRequest(fmt.Sprintf("%s must be greater than 0", name))
}

// fromError maps an error returned by the repository layer onto an envelope.
// Unexpected failures are logged with the request's logger when ctx carries one.
func fromError(ctx context.Context, log *zap.Logger, op string, err error) response.Envelope {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.BadRequest(verr.Messages()...)
	case errors.Is(err, model.ErrValidation):
		return response.BadRequest(detail(err, model.ErrValidation))
	case errors.Is(err, model.ErrReferentialIntegrity):
		return response.BadRequest(detail(err, model.ErrReferentialIntegrity))
	case errors.Is(err, model.ErrNotFound):
		return response.NotFound(detail(err, model.ErrNotFound))
	default:
		logging.FromContextOr(ctx, log).Error("store operation failed", zap.String("op", op), zap.Error(err))
		return response.Internal(err)
	}
}

// detail drops the leading error kind from err's message, leaving what the caller can act on.
func detail(err, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
