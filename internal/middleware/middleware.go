package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"gcs-food-backend/domain"
	"gcs-food-backend/internal/api/presenters"
	"gcs-food-backend/pkg/jwt"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		// AuthMiddleware rejects requests without a valid bearer token.
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		// OptionalAuthMiddleware lets anonymous requests through but rejects a
		// token that does not verify.
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		ErrorLogger() fiber.Handler
	}

	middleware struct {
		allowOrigins string
		log          *zap.Logger
	}
)

func NewMiddleware(allowOrigins string, log *zap.Logger) Middleware {
	return &middleware{allowOrigins: allowOrigins, log: log}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}
		return m.authenticate(c, jwtService, token)
	}
}

func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}
		return m.authenticate(c, jwtService, token)
	}
}

func (m *middleware) authenticate(c *fiber.Ctx, jwtService jwt.JWTService, token string) error {
	userID, role, err := jwtService.GetUserIDByToken(token)
	if err != nil {
		message := domain.MessageFailedTokenInvalid
		if errors.Is(err, domain.ErrTokenExpired) {
			message = domain.MessageTokenExpired
		}
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, message, err)
	}
	c.Locals("user_id", userID)
	c.Locals("role", role)
	return c.Next()
}

// ErrorLogger logs the error behind every 5xx response.
func (m *middleware) ErrorLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		var fiberErr *fiber.Error
		status := c.Response().StatusCode()
		if err != nil && errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		if status < fiber.StatusInternalServerError {
			return err
		}

		cause, _ := c.Locals(presenters.ErrorLocalKey).(error)
		if cause == nil {
			cause = err
		}
		m.log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(cause),
		)
		return err
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
