package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		}
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// writeServiceError maps error kinds to status codes. Details reach the
// client only for errors the caller can fix.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrNotFound):
		logger.Warn(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", err)
	case errors.Is(err, errorvalues.ErrInvalidInput):
		logger.Warn(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrInvalidReference):
		logger.Warn(op+" error: invalid reference", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid exercise reference", err)
	case errors.Is(err, errorvalues.ErrTimeout):
		logger.Error(op+" error: store timeout", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusGatewayTimeout, "request timed out", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// pathID parses the {id} route parameter, writing 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("invalid " + what + " id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+what+" id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// callerID fetches the uid put by AuthMiddleware, writing 401 when absent.
func callerID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unauthorized request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}
