package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/consultorpro-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
	"github.com/vfg2006/consultorpro-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// requiredQuery escreve VAL_002 quando o parâmetro não foi enviado
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro "+name+" é obrigatório", nil)
		return "", false
	}
	return value, true
}

func intPathParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(pathParam(r, name))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return value, true
}

// errorCode extrai o código de API dos erros tipados dos casos de uso
func errorCode(err error) string {
	var (
		authErr        *authenticating.AuthError
		consultancyErr *consulting.ConsultancyError
		scoringErr     *scoring.ScoringError
		trackingErr    *tracking.TrackingError
		planningErr    *planning.PlanningError
		diagnosticErr  *diagnosing.DiagnosticError
		summaryErr     *summarizing.SummaryError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code
	case errors.As(err, &consultancyErr):
		return consultancyErr.Code
	case errors.As(err, &scoringErr):
		return scoringErr.Code
	case errors.As(err, &trackingErr):
		return trackingErr.Code
	case errors.As(err, &planningErr):
		return planningErr.Code
	case errors.As(err, &diagnosticErr):
		return diagnosticErr.Code
	case errors.As(err, &summaryErr):
		return summaryErr.Code
	}
	return apiErrors.ErrInternalServer
}

// writeUsecaseError responde com o código do erro. Detalhes de falhas internas só vão para o log.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorCode(err)

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		log.ForContext(r.Context()).WithError(err).WithField("code", code).Error("Erro ao processar requisição")
		if code != apiErrors.ErrExternalService {
			apiErrors.WriteError(w, code, "Erro interno ao processar requisição", nil)
			return
		}
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}
