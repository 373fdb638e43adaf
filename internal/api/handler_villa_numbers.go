package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/patch"
)

// ListVillaNumbers handles GET /api/v1/villaNumbers.
func (h *Handler) ListVillaNumbers(c *gin.Context) {
	p, ok := bindList(c)
	if !ok {
		return
	}
	writeList(c, p, h.numbers.MaxPageSize(), h.numbers.ListVillaNumbers(c.Request.Context(), p.query()))
}

// GetVillaNumber handles GET /api/v1/villaNumbers/:villaNo.
func (h *Handler) GetVillaNumber(c *gin.Context) {
	no, ok := pathID(c, "villaNo")
	if !ok {
		return
	}
	write(c, h.numbers.GetVillaNumber(c.Request.Context(), no))
}

// CreateVillaNumber handles POST /api/v1/villaNumbers.
func (h *Handler) CreateVillaNumber(c *gin.Context) {
	var in dto.VillaNumberCreate
	if !bindBody(c, &in) {
		return
	}
	env := h.numbers.CreateVillaNumber(c.Request.Context(), &in)
	if created, ok := env.Result.(dto.VillaNumber); ok {
		c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), created.VillaNo))
	}
	write(c, env)
}

// UpdateVillaNumber handles PUT /api/v1/villaNumbers/:villaNo.
func (h *Handler) UpdateVillaNumber(c *gin.Context) {
	no, ok := pathID(c, "villaNo")
	if !ok {
		return
	}
	var in dto.VillaNumberUpdate
	if !bindBody(c, &in) {
		return
	}
	write(c, h.numbers.UpdateVillaNumber(c.Request.Context(), no, &in))
}

// PatchVillaNumber handles PATCH /api/v1/villaNumbers/:villaNo.
func (h *Handler) PatchVillaNumber(c *gin.Context) {
	no, ok := pathID(c, "villaNo")
	if !ok {
		return
	}
	var ops []patch.Operation
	if !bindBody(c, &ops) {
		return
	}
	write(c, h.numbers.PatchVillaNumber(c.Request.Context(), no, ops))
}

// DeleteVillaNumber handles DELETE /api/v1/villaNumbers/:villaNo.
func (h *Handler) DeleteVillaNumber(c *gin.Context) {
	no, ok := pathID(c, "villaNo")
	if !ok {
		return
	}
	write(c, h.numbers.DeleteVillaNumber(c.Request.Context(), no))
}
