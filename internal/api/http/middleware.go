package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/goldenpays/consultancy-api/internal/config"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/observability"
	"github.com/goldenpays/consultancy-api/internal/validation"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// MiddlewareConfig bundles what the global middleware chain needs. A nil
// LimiterStorage keeps rate-limit counters in process memory.
type MiddlewareConfig struct {
	Logger         *zap.Logger
	Metrics        *observability.Metrics
	App            config.AppConfig
	HTTP           config.HTTPConfig
	LimiterStorage fiber.Storage
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	app.Use(requestid.New())
	app.Use(observability.RequestLogger(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg.Logger, cfg.Metrics, cfg.App.IsProduction()))
	app.Use(helmet.New())
	app.Use(corsMiddleware(cfg.HTTP))
	if timeout := cfg.App.RequestTimeout(); timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use("/api", rateLimitMiddleware(cfg.HTTP, cfg.LimiterStorage))
}

// ErrorHandler renders errors that escape the middleware chain, such as
// those raised by fiber itself before routing.
func ErrorHandler(logger *zap.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, logger, nil, production, err, nil)
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func corsMiddleware(cfg config.HTTPConfig) fiber.Handler {
	origin := strings.TrimSpace(cfg.FrontendURL)
	if origin == "" {
		origin = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origin != "*",
	})
}

func rateLimitMiddleware(cfg config.HTTPConfig, storage fiber.Storage) fiber.Handler {
	limit := cfg.RateLimitMaxRequest
	if limit <= 0 {
		limit = 100
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = 15 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			return apperrors.NewTooManyRequests(rateLimitMessage)
		},
	})
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			var stack []byte
			if r := recover(); r != nil {
				stack = debug.Stack()
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", stack))
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err != nil {
				err = writeError(c, logger, metrics, production, err, stack)
			}
		}()
		return c.Next()
	}
}

// writeError renders {"error": title, "message": message} plus any details.
// Map details are merged into the body; other details go under "details".
// Outside production 5xx responses also carry the cause.
func writeError(c *fiber.Ctx, logger *zap.Logger, metrics *observability.Metrics, production bool, err error, stack []byte) error {
	domainErr := translateError(err)
	metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

	response := fiber.Map{
		"error":   domainErr.Title,
		"message": domainErr.Message,
	}
	switch details := domainErr.Details.(type) {
	case nil:
	case map[string]any:
		for k, v := range details {
			response[k] = v
		}
	default:
		response["details"] = details
	}

	if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
		if !production {
			if cause := errors.Unwrap(domainErr); cause != nil {
				response["cause"] = cause.Error()
			}
			if len(stack) > 0 {
				response["stack"] = string(stack)
			}
		}
	}

	return c.Status(domainErr.HTTPStatus).JSON(response)
}

// translateError maps service-level errors onto their HTTP representation.
func translateError(err error) *apperrors.DomainError {
	var ve *validation.Error
	var de *apperrors.DomainError
	switch {
	case errors.As(err, &de):
		return de
	case errors.As(err, &ve):
		return apperrors.ToDomainError(apperrors.NewValidationError(ve.Message))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.ToDomainError(apperrors.NewAuthenticationFailed())
	case errors.Is(err, domain.ErrMissingCredential):
		return apperrors.ToDomainError(apperrors.NewAccessDenied("No token provided"))
	case errors.Is(err, domain.ErrInvalidOrExpiredCredential):
		return apperrors.ToDomainError(apperrors.NewInvalidToken())
	case errors.Is(err, domain.ErrInquiryNotFound):
		return apperrors.ToDomainError(apperrors.NewNotFound("Inquiry"))
	case errors.Is(err, domain.ErrSubmissionFailed):
		return apperrors.ToDomainError(apperrors.NewSubmissionFailed(err))
	default:
		return apperrors.ToDomainError(err)
	}
}
