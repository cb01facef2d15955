//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"ecommerce-backend/internal/handler/httperr"
	"ecommerce-backend/internal/handler/middleware"
	"ecommerce-backend/internal/pkg/errs"
	"ecommerce-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler_RendersCollectedPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	// A handler may record a public error and abort without writing; the
	// collector then owns the response.
	router.GET("/conflict", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Resource conflict"
		_ = c.Error(gin.Error{
			Err:  errs.New("conflicting state"),
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
		c.Abort()
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Resource conflict")
}

func TestErrorHandler_FallsBackToInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	router.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errs.New("private failure"))
		c.Abort()
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/broken", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
