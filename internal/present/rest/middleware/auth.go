package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/service"
	"github.com/causewayhq/causeway/internal/usecase"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth  *service.AuthService
	users usecase.UserRepository
}

func NewAuthMiddleware(
	auth *service.AuthService,
	users usecase.UserRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		auth:  auth,
		users: users,
	}
}

// IdentifyCaller resolves the bearer token, if any, into the caller's id and
// role on the request context. An absent or invalid token is not an error
// here; route guards decide what anonymity means.
func (s *AuthMiddleware) IdentifyCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyCaller")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skipCheckAuthorization
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skipCheckAuthorization
			}

			callerID, role, err := s.auth.Validate(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.IdentifyCaller: token validation failed"))
				goto skipCheckAuthorization
			}

			ctx = context.WithValue(ctx, domain.CallerIDCtxKey, callerID)
			ctx = context.WithValue(ctx, domain.CallerRoleCtxKey, role)
			span.SetAttributes(attribute.String("CallerId", callerID))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Require rejects anonymous requests.
func (s *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		callerID, ok := c.Request().Context().Value(domain.CallerIDCtxKey).(string)
		if !ok || callerID == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		return next(c)
	}
}

// RequireAdmin rejects any caller whose token does not carry the admin role.
func (s *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return s.Require(func(c echo.Context) error {
		role, _ := c.Request().Context().Value(domain.CallerRoleCtxKey).(domain.Role)
		if role != domain.RoleAdmin {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
		}
		return next(c)
	})
}

// RequireOrganizer loads the caller's current record and rejects anyone who
// is not an approved, non-revoked organizer. The token role alone is not
// trusted for this: revocation must take effect on the next request.
func (s *AuthMiddleware) RequireOrganizer(next echo.HandlerFunc) echo.HandlerFunc {
	return s.Require(func(c echo.Context) error {
		ctx := c.Request().Context()
		callerID, _ := ctx.Value(domain.CallerIDCtxKey).(string)

		user, err := s.users.Get(ctx, callerID)
		if err != nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "organizer access required"})
		}
		if user.Role != domain.RoleOrganizer || !user.IsOrganizerApproved || user.IsOrganizerRevoked {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "organizer access required"})
		}
		return next(c)
	})
}
