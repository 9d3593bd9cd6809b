package api

import (
	"net/http"

	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type PlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
}

type ExerciseRequest struct {
	Name   string   `json:"name"`
	Sets   int      `json:"sets"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight,omitempty"`
}

type GetPlansResponse struct {
	UserID string                `json:"uid"`
	Plans  []*entity.WorkoutPlan `json:"plans"`
}

type GetExercisesResponse struct {
	PlanID    string             `json:"plan_id"`
	Exercises []*entity.Exercise `json:"exercises"`
}

func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	plans, err := s.plansService.ListPlans(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetPlansResponse{
		UserID: uid.String(),
		Plans:  plans,
	})
}

func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	var req PlanRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("create plan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	plan, err := s.plansService.CreatePlan(ctx, uid, &service.PlanRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, logger, "create plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
	logger.Info("plan created", "plan_id", plan.ID.String())
}

func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, logger, "plan")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	plan, err := s.plansService.GetPlan(ctx, uid, planID)
	if err != nil {
		writeServiceError(w, logger, "get plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, logger, "plan")
	if !ok {
		return
	}
	var req PlanRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("update plan error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	count, err := s.plansService.UpdatePlan(ctx, uid, planID, &service.PlanRequest{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, logger, "update plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"updated": count})
	logger.Info("plan updated")
}

func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, logger, "plan")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	count, err := s.plansService.DeletePlan(ctx, uid, planID)
	if err != nil {
		writeServiceError(w, logger, "plan deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": count})
	logger.Info("plan deleted")
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, logger, "plan")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	exercises, err := s.plansService.ListExercises(ctx, uid, planID)
	if err != nil {
		writeServiceError(w, logger, "listing exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetExercisesResponse{
		PlanID:    planID.String(),
		Exercises: exercises,
	})
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	planID, ok := pathID(w, r, logger, "plan")
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("create exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	exercise, err := s.plansService.CreateExercise(ctx, uid, planID, req.toService())
	if err != nil {
		writeServiceError(w, logger, "create exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, exercise)
	logger.Info("exercise created", "exercise_id", exercise.ID.String())
}

func (s *Server) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, logger, "exercise")
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("update exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	count, err := s.plansService.UpdateExercise(ctx, uid, exerciseID, req.toService())
	if err != nil {
		writeServiceError(w, logger, "update exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"updated": count})
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := callerID(w, r, logger)
	if !ok {
		return
	}
	exerciseID, ok := pathID(w, r, logger, "exercise")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext()
	defer cancel()
	count, err := s.plansService.DeleteExercise(ctx, uid, exerciseID)
	if err != nil {
		writeServiceError(w, logger, "exercise deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"deleted": count})
}

func (req ExerciseRequest) toService() *service.ExerciseRequest {
	return &service.ExerciseRequest{
		Name:   req.Name,
		Sets:   req.Sets,
		Reps:   req.Reps,
		Weight: req.Weight,
	}
}
