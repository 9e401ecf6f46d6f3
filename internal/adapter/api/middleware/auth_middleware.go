package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"campusvoice/internal/domain/policy"
	"campusvoice/internal/domain/repository"
)

// AuthMiddleware verifies the bearer token and hydrates the identity
// snapshot (role, department) from the user store so every downstream
// decision sees current values, not token claims.
type AuthMiddleware struct {
	authClient *auth.Client
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(authClient *auth.Client, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		identity, err := m.resolve(c, authHeader)
		if err != nil {
			return err
		}

		c.Set("identity", identity)
		c.Set("uid", identity.ID)
		return next(c)
	}
}

// OptionalAuthenticate resolves an identity when a token is present but
// lets anonymous requests through; complaint submission allows both.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		identity, err := m.resolve(c, authHeader)
		if err != nil {
			return err
		}

		c.Set("identity", identity)
		c.Set("uid", identity.ID)
		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context, authHeader string) (policy.Identity, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return policy.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
	if err != nil {
		return policy.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	user, err := m.userRepo.GetByID(c.Request().Context(), token.UID)
	if err != nil {
		return policy.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	return policy.Identity{
		ID:         user.ID,
		Role:       user.Role,
		Department: user.Department,
		Email:      user.Email,
	}, nil
}
