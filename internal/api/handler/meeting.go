package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/domain"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
)

func SummarizeMeeting(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SummarizeMeetingRequest
		if !decodeBody(w, r, &req) {
			return
		}

		summary, err := service.SummarizeMeeting(r.Context(), &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}
