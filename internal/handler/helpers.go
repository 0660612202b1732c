package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"time"

	"stockroom/internal/apierror"
	"stockroom/internal/config"
	"stockroom/internal/respond"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// decimal.Decimal validates as a plain number.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate decodes the JSON body into req and runs struct validation,
// answering 400 itself on failure.
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := map[string]any{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields[fe.Field()] = "failed on " + fe.Tag()
			}
		}
		respond.Fail(c, http.StatusBadRequest, "validation failed", fields)
		return false
	}
	return true
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// pageParams reads page / per_page query values, clamped to configured
// bounds.
func pageParams(c *gin.Context, cfg *config.Config) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(cfg.DefaultPageSize)))
	if perPage < 1 {
		perPage = cfg.DefaultPageSize
	}
	if perPage > cfg.MaxPageSize {
		perPage = cfg.MaxPageSize
	}
	return page, perPage
}

// parseDateBound parses an RFC3339 timestamp or a bare date. A bare date used
// as an end bound is widened to the end of that day so "end_date=2026-03-01"
// includes the whole of March 1st.
func parseDateBound(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apierror.NewValidation("dates must be YYYY-MM-DD or RFC3339")
	}
	t = t.UTC()
	if endOfDay {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return &t, nil
}
