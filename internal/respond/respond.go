// Package respond renders the uniform response envelope. Every endpoint
// answers the same shape: success flag, human message, optional data,
// optional pagination block, optional errors map.
package respond

import (
	"errors"
	"net/http"

	"stockroom/internal/apierror"
	"stockroom/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Envelope struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Data       any            `json:"data,omitempty"`
	Pagination *Pagination    `json:"pagination,omitempty"`
	Errors     map[string]any `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}
	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Paginated(c *gin.Context, message string, data any, page, perPage int, total int64) {
	c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: NewPagination(page, perPage, total),
	})
}

func Fail(c *gin.Context, status int, message string, fields map[string]any) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: fields})
}

// Error maps a service error to its HTTP rendering. Unrecognized errors are
// logged and answered with a generic 500 so internals never leak to clients.
func Error(c *gin.Context, err error) {
	var (
		stockErr      *apierror.InsufficientStockError
		validationErr *apierror.ValidationError
		notFoundErr   *apierror.NotFoundError
	)

	switch {
	case errors.As(err, &stockErr):
		Fail(c, http.StatusBadRequest, stockErr.Error(), map[string]any{"available": stockErr.Available})
	case errors.As(err, &validationErr):
		var fields map[string]any
		if len(validationErr.Fields) > 0 {
			fields = make(map[string]any, len(validationErr.Fields))
			for k, v := range validationErr.Fields {
				fields[k] = v
			}
		}
		Fail(c, http.StatusBadRequest, validationErr.Reason, fields)
	case errors.As(err, &notFoundErr):
		Fail(c, http.StatusNotFound, notFoundErr.Error(), nil)
	case errors.Is(err, apierror.ErrAccountDeactivated):
		Fail(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, identity.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")
		Fail(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func NotFound(c *gin.Context, resource string) {
	Fail(c, http.StatusNotFound, resource+" not found", nil)
}
