package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
)

type MoveActionRequest struct {
	Quadrant domain.Quadrant `json:"quadrant"`
}

type ActionStatusRequest struct {
	Status domain.ActionStatus `json:"status"`
}

type QuadrantResponse struct {
	Impact   domain.Level    `json:"impact"`
	Effort   domain.Level    `json:"effort"`
	Quadrant domain.Quadrant `json:"quadrant"`
}

func CreateAction(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var action domain.Action
		if !decodeBody(w, r, &action) {
			return
		}
		action.ConsultancyID = pathParam(r, "id")

		created, err := service.CreateAction(r.Context(), &action)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func ListActions(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actions, err := service.ListActions(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, actions)
	}
}

func GetActionMatrix(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matrix, err := service.Matrix(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, matrix)
	}
}

func GetAction(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action, err := service.GetAction(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, action)
	}
}

func UpdateAction(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateActionRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		action, err := service.UpdateAction(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, action)
	}
}

func MoveAction(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveActionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		action, err := service.MoveToQuadrant(r.Context(), pathParam(r, "id"), req.Quadrant)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, action)
	}
}

func SetActionStatus(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ActionStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		action, err := service.SetActionStatus(r.Context(), pathParam(r, "id"), req.Status)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, action)
	}
}

func DeleteAction(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteAction(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ClassifyQuadrant responde ?impact=&effort= com o quadrante correspondente
func ClassifyQuadrant(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		impact, ok := requiredQuery(w, r, "impact")
		if !ok {
			return
		}
		effort, ok := requiredQuery(w, r, "effort")
		if !ok {
			return
		}

		quadrant, err := service.Classify(domain.Level(impact), domain.Level(effort))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, QuadrantResponse{
			Impact:   domain.Level(impact),
			Effort:   domain.Level(effort),
			Quadrant: quadrant,
		})
	}
}
