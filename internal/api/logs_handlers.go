package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type ExerciseResultRequest struct {
	ExerciseID    string   `json:"exercise_id"`
	SetsCompleted int      `json:"sets_completed"`
	RepsCompleted int      `json:"reps_completed"`
	WeightUsed    *float64 `json:"weight_used,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type RecordWorkoutRequest struct {
	PlanID string `json:"plan_id"`
	// YYYY-MM-DD
	Date      string                  `json:"date"`
	Notes     string                  `json:"notes,omitempty"`
	Duration  *int                    `json:"duration,omitempty"`
	Exercises []ExerciseResultRequest `json:"exercises"`
}

type GetLogsResponse struct {
	UserID string               `json:"uid"`
	Logs   []*entity.WorkoutLog `json:"logs"`
}

func (s *Server) RecordWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	var req RecordWorkoutRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("record workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	servReq, err := req.toService()
	if err != nil {
		logger.Error("record workout error: malformed field", "error", err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	wl, err := s.logsService.RecordWorkout(ctx, uid, servReq)
	if err != nil {
		writeServiceError(w, logger, "record workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, wl)
	logger.Info("workout recorded", "log_id", wl.ID.String(), "exercises", len(wl.Exercises))
}

func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	logs, err := s.logsService.ListLogs(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetLogsResponse{
		UserID: uid.String(),
		Logs:   logs,
	})
}

func (s *Server) GetLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	logID, ok := pathID(w, r, logger, "log")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	wl, err := s.logsService.GetLog(ctx, uid, logID)
	if err != nil {
		writeServiceError(w, logger, "get log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, wl)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	q := r.URL.Query()
	windowDays, err1 := queryInt(q.Get("window_days"))
	buckets, err2 := queryInt(q.Get("buckets"))
	if err1 != nil || err2 != nil {
		logger.Error("get stats error: invalid query")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "window_days and buckets must be integers", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid, service.StatsOptions{
		WindowDays: windowDays,
		Buckets:    buckets,
		Bucket:     service.BucketKind(q.Get("bucket")),
	})
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

// queryInt treats a missing parameter as zero, so the service default applies.
func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func (req *RecordWorkoutRequest) toService() (*service.RecordWorkoutRequest, error) {
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: plan_id is not a uuid", errorvalues.ErrInvalidInput)
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errorvalues.ErrInvalidInput)
	}
	results := make([]service.ExerciseResult, 0, len(req.Exercises))
	for i, ex := range req.Exercises {
		exerciseID, err := uuid.Parse(ex.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("%w: exercises[%d].exercise_id is not a uuid", errorvalues.ErrInvalidInput, i)
		}
		results = append(results, service.ExerciseResult{
			ExerciseID:    exerciseID,
			SetsCompleted: ex.SetsCompleted,
			RepsCompleted: ex.RepsCompleted,
			WeightUsed:    ex.WeightUsed,
			Notes:         ex.Notes,
		})
	}
	return &service.RecordWorkoutRequest{
		PlanID:    planID,
		Date:      date,
		Notes:     req.Notes,
		Duration:  req.Duration,
		Exercises: results,
	}, nil
}
