package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
)

func RegisterPerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var performance domain.Performance
		if !decodeBody(w, r, &performance) {
			return
		}

		saved, err := service.RegisterPerformance(r.Context(), &performance)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, saved)
	}
}

func ListPerformances(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := requiredQuery(w, r, "month")
		if !ok {
			return
		}

		performances, err := service.ListPerformances(r.Context(), month)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, performances)
	}
}

func GetClientPerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		performance, err := service.GetPerformance(r.Context(), pathParam(r, "id"), pathParam(r, "month"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, service.Evaluate(*performance))
	}
}

func GetClientRanking(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := service.GetClientRanking(r.Context(), pathParam(r, "id"), pathParam(r, "month"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	}
}

func GetClientHistory(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := service.ClientHistory(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}

func DeletePerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DeletePerformance(r.Context(), pathParam(r, "id")); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// EvaluatePerformance calcula score, faixa e indicadores sem gravar nada
func EvaluatePerformance(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var performance domain.Performance
		if !decodeBody(w, r, &performance) {
			return
		}

		writeJSON(w, r, http.StatusOK, service.Evaluate(performance))
	}
}

func GetRanking(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := requiredQuery(w, r, "month")
		if !ok {
			return
		}

		ranking, err := service.GetRanking(r.Context(), month)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	}
}

func BuildRanking(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := requiredQuery(w, r, "month")
		if !ok {
			return
		}

		ranking, err := service.BuildRanking(r.Context(), month)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	}
}
