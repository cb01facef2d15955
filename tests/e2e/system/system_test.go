//go:build e2e

package system_test

import (
	"net/http"
	"testing"

	"ecommerce-backend/tests/common/httptest"
	"ecommerce-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SystemSuite struct {
	e2e.SharedSuite
}

func TestSystemSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SystemSuite))
}

func (s *SystemSuite) TestHealthCheck() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *SystemSuite) TestDBPing() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/db/ping", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
}
