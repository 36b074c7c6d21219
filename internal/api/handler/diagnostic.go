package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
)

// SaveDiagnostic substitui o diagnóstico inteiro da consultoria
func SaveDiagnostic(service diagnosing.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var diagnostic domain.Diagnostic
		if !decodeBody(w, r, &diagnostic) {
			return
		}
		diagnostic.ConsultancyID = pathParam(r, "id")

		saved, err := service.SaveDiagnostic(r.Context(), &diagnostic)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, saved)
	}
}

func GetDiagnostic(service diagnosing.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		diagnostic, err := service.GetDiagnostic(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, diagnostic)
	}
}

func GetDiagnosticSummary(service diagnosing.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

func ListDiagnosticActions(service diagnosing.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actions, err := service.LinkedActions(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, actions)
	}
}

func CreateActionFromFinding(service diagnosing.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateActionFromFindingRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ConsultancyID = pathParam(r, "id")

		action, err := service.CreateActionFromFinding(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, action)
	}
}
