package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/apierror"
	"stockroom/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	first := NewPagination(1, 20, 45)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := NewPagination(3, 20, 45)
	assert.False(t, last.HasNext)

	exact := NewPagination(2, 20, 40)
	assert.Equal(t, 2, exact.TotalPages)
	assert.False(t, exact.HasNext)

	empty := NewPagination(1, 20, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func errorStatus(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, err)
	return w.Code
}

func TestErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errorStatus(apierror.NewInsufficientStock(3)))
	assert.Equal(t, http.StatusBadRequest, errorStatus(apierror.NewValidation("bad input")))
	assert.Equal(t, http.StatusNotFound, errorStatus(apierror.NewNotFound("product")))
	assert.Equal(t, http.StatusForbidden, errorStatus(apierror.ErrAccountDeactivated))
	assert.Equal(t, http.StatusUnauthorized, errorStatus(identity.ErrInvalidToken))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errors.New("boom")))
}
