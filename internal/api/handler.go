package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"villa-api-backend/internal/mw"
	"villa-api-backend/internal/response"
	"villa-api-backend/internal/service"
)

// PaginationHeader carries the requested page of a list response.
const PaginationHeader = "X-Pagination"

// Handler holds shared dependencies for API handlers.
type Handler struct {
	villas  *service.VillaService
	numbers *service.VillaNumberService
}

// NewHandler creates a new API handler.
func NewHandler(villas *service.VillaService, numbers *service.VillaNumberService) *Handler {
	return &Handler{villas: villas, numbers: numbers}
}

// Pagination is the JSON value of the X-Pagination header.
type Pagination struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

type listParams struct {
	PageSize   int    `form:"pageSize"`
	PageNumber int    `form:"pageNumber,default=1"`
	Occupancy  int    `form:"filterOccupancy"`
	Search     string `form:"search"`
	VillaID    int64  `form:"villaId"`
}

func (p listParams) query() service.ListQuery {
	return service.ListQuery{
		PageSize:   p.PageSize,
		PageNumber: p.PageNumber,
		Occupancy:  p.Occupancy,
		Search:     p.Search,
		VillaID:    p.VillaID,
	}
}

// bindList parses list query parameters, answering 400 itself when they are malformed.
func bindList(c *gin.Context) (listParams, bool) {
	var p listParams
	if err := c.ShouldBindQuery(&p); err != nil {
		mw.GetLogger(c).Debug("invalid list parameters", zap.Error(err))
		write(c, response.BadRequest("invalid query parameters: "+err.Error()))
		return p, false
	}
	// An empty value counts as missing.
	if c.Query("pageNumber") == "" {
		p.PageNumber = 1
	}
	return p, true
}

// writeList writes a list envelope and, when it succeeded, the pagination header
// carrying the page size actually applied under maxPageSize.
func writeList(c *gin.Context, p listParams, maxPageSize int, env response.Envelope) {
	if env.IsSuccess {
		header, _ := json.Marshal(Pagination{
			PageNumber: p.PageNumber,
			PageSize:   service.ClampPageSize(p.PageSize, maxPageSize),
		})
		c.Header(PaginationHeader, string(header))
	}
	write(c, env)
}

// pathID parses the named path parameter, answering 400 itself when it is not an integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		write(c, response.BadRequest(fmt.Sprintf("%s must be an integer", name)))
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON body into obj, answering 400 itself when it cannot.
func bindBody(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		write(c, response.BadRequest("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// write serializes env with its own status code. No-content envelopes are written without a body.
func write(c *gin.Context, env response.Envelope) {
	if !env.HasBody() {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(env.StatusCode, env)
}
