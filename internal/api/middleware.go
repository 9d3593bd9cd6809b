package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("method", r.Method), slog.String("path", r.URL.Path))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if uid, err := GetUIDFromContext(r); err == nil {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// MetricsMiddleware counts requests per route pattern, so ids in paths
// don't blow up label cardinality.
func (s *Server) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.GaugeRequests.Inc()
		defer s.metrics.GaugeRequests.Dec()
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.CounterRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		s.metrics.HistRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Signature, expiration and not-before are checked while parsing
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			}
			return
		}
		uid, err := uuid.Parse(tokenClaims.UserID)
		if err != nil {
			logger.Error("invalid uid in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Assuring if user still exists
		ctx, cancel := s.requestContext()
		defer cancel()
		_, err = s.userService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("auth failed: user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: unknown user", nil)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), uidContextKey, uid))
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
