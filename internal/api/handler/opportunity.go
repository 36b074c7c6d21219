package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
)

func CreateOpportunity(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opportunity domain.Opportunity
		if !decodeBody(w, r, &opportunity) {
			return
		}
		opportunity.ConsultancyID = pathParam(r, "id")

		created, err := service.CreateOpportunity(r.Context(), &opportunity)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func ListOpportunities(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opportunities, err := service.ListOpportunities(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, opportunities)
	}
}

func GetOpportunity(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opportunity, err := service.GetOpportunity(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, opportunity)
	}
}

func UpdateOpportunity(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateOpportunityRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		opportunity, err := service.UpdateOpportunity(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, opportunity)
	}
}

func DeleteOpportunity(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteOpportunity(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// PromoteOpportunity converte a oportunidade em ação e devolve a ação criada
func PromoteOpportunity(service planning.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// corpo opcional
		var req domain.PromoteOpportunityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.OpportunityID = pathParam(r, "id")

		action, err := service.PromoteOpportunity(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, action)
	}
}
