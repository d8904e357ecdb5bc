package http

import (
	"errors"
	"net/http"
	"strings"

	"deliverus/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Roles carried in access tokens. Customers place and manage their own
// orders; owners run restaurants and drive order lifecycles.
const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

const claimsContextKey = "authClaims"

// Claims is the JWT payload issued by the identity service.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware authenticates requests via a bearer token signed with the
// given secret. Requests without a valid token are rejected with 401; claims
// of valid tokens are stored on the echo context.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, err := extractBearerToken(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole rejects authenticated requests whose token carries a different
// role. Runs after AuthMiddleware.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := authenticatedClaims(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// authenticatedClaims returns the claims stored by AuthMiddleware.
func authenticatedClaims(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	if !ok {
		return nil, errors.New("no authenticated user in context")
	}
	return claims, nil
}

// authenticatedUserID returns the authenticated user's id as a domain UUID.
func authenticatedUserID(c echo.Context) (kernel.UUID, error) {
	claims, err := authenticatedClaims(c)
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(claims.UserID[:])
}

func extractBearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization format")
	}
	return parts[1], nil
}
