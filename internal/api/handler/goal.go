package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
)

type CurrentValueRequest struct {
	CurrentValue float64 `json:"current_value"`
}

type GoalStatusRequest struct {
	Status domain.GoalStatus `json:"status"`
}

func CreateGoal(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if !decodeBody(w, r, &goal) {
			return
		}
		goal.ConsultancyID = pathParam(r, "id")

		progress, err := service.CreateGoal(r.Context(), &goal)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, progress)
	}
}

func ListGoals(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := service.ListGoals(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, goals)
	}
}

func GetGoal(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress, err := service.GetGoal(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}

func UpdateGoal(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateGoalRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		progress, err := service.UpdateGoal(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}

func UpdateGoalCurrentValue(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CurrentValueRequest
		if !decodeBody(w, r, &req) {
			return
		}

		progress, err := service.UpdateCurrentValue(r.Context(), pathParam(r, "id"), req.CurrentValue)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}

func SetGoalStatus(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoalStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		progress, err := service.SetStatus(r.Context(), pathParam(r, "id"), req.Status)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}

func DeleteGoal(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteGoal(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListAtRiskGoals(service tracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := requiredQuery(w, r, "month")
		if !ok {
			return
		}

		goals, err := service.ListAtRisk(r.Context(), month)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, goals)
	}
}
