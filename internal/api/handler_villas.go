package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"villa-api-backend/internal/dto"
	"villa-api-backend/internal/patch"
)

// ListVillas handles GET /api/v1/villas.
func (h *Handler) ListVillas(c *gin.Context) {
	p, ok := bindList(c)
	if !ok {
		return
	}
	writeList(c, p, h.villas.MaxPageSize(), h.villas.ListVillas(c.Request.Context(), p.query()))
}

// GetVilla handles GET /api/v1/villas/:id.
func (h *Handler) GetVilla(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	write(c, h.villas.GetVilla(c.Request.Context(), id))
}

// CreateVilla handles POST /api/v1/villas.
func (h *Handler) CreateVilla(c *gin.Context) {
	var in dto.VillaCreate
	if !bindBody(c, &in) {
		return
	}
	env := h.villas.CreateVilla(c.Request.Context(), &in)
	if created, ok := env.Result.(dto.Villa); ok {
		c.Header("Location", fmt.Sprintf("%s/%d", c.FullPath(), created.ID))
	}
	write(c, env)
}

// UpdateVilla handles PUT /api/v1/villas/:id.
func (h *Handler) UpdateVilla(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.VillaUpdate
	if !bindBody(c, &in) {
		return
	}
	write(c, h.villas.UpdateVilla(c.Request.Context(), id, &in))
}

// PatchVilla handles PATCH /api/v1/villas/:id.
func (h *Handler) PatchVilla(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var ops []patch.Operation
	if !bindBody(c, &ops) {
		return
	}
	write(c, h.villas.PatchVilla(c.Request.Context(), id, ops))
}

// DeleteVilla handles DELETE /api/v1/villas/:id.
func (h *Handler) DeleteVilla(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	write(c, h.villas.DeleteVilla(c.Request.Context(), id))
}
