package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
)

func CreateConsultancy(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var consultancy domain.Consultancy
		if !decodeBody(w, r, &consultancy) {
			return
		}

		created, err := service.CreateConsultancy(r.Context(), &consultancy)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

// ListConsultancies filtra por ?month= (regra de contenção) ou por ?client_id=
func ListConsultancies(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var (
			consultancies []*domain.Consultancy
			err           error
		)
		switch {
		case query.Get("client_id") != "":
			consultancies, err = service.ListByClient(r.Context(), query.Get("client_id"))
		case query.Get("month") != "":
			consultancies, err = service.ListByMonth(r.Context(), query.Get("month"))
		default:
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe month ou client_id", nil)
			return
		}
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, consultancies)
	}
}

func GetConsultancy(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consultancy, err := service.GetConsultancy(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, consultancy)
	}
}

func UpdateConsultancy(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateConsultancyRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		consultancy, err := service.UpdateConsultancy(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, consultancy)
	}
}

func DeleteConsultancy(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeleteConsultancy(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetDashboard(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dashboard)
	}
}

// GetMonthOverview consolida todas as consultorias do período informado no caminho
func GetMonthOverview(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := service.MonthOverview(r.Context(), pathParam(r, "month"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	}
}

func GetTimeline(service consulting.Consultant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		events, err := service.Timeline(r.Context(), pathParam(r, "id"), limit)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, events)
	}
}
