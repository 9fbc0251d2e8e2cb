//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"website-rentals/internal/handler/middleware"
	"website-rentals/internal/pkg/jwt"
	"website-rentals/internal/usecase"
	"website-rentals/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	s.router = gin.New()
	s.router.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "role": role})
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("a minted token passes and exposes the caller identity", func() {
		userID := uuid.New()
		token, err := s.jwtService.GenerateToken(userID, "customer")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]string
		httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(userID.String(), resp["user_id"])
		s.Equal("customer", resp["role"])
	})

	s.Run("a missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("a garbage token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "not-a-token")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("an expired token is rejected", func() {
		expiredService := jwt.NewService("test-secret", -time.Hour)
		token, err := expiredService.GenerateToken(uuid.New(), "customer")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, token)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
