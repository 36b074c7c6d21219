package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/consultorpro-api/internal/scheduler"
	"github.com/vfg2006/consultorpro-api/pkg/apiErrors"
)

// CronJobTypeAll dispara todos os agendadores registrados
const CronJobTypeAll = "all"

// CronJobs indexa os agendadores pelo nome usado na URL
type CronJobs map[string]scheduler.Job

func (c CronJobs) names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RunCronJob executa manualmente um agendador ou todos eles
func RunCronJob(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, name := range jobs.names() {
				jobs[name].TriggerManualSync()
			}
		} else {
			job, ok := jobs[cronType]
			if !ok || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(append(jobs.names(), CronJobTypeAll), ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de cada agendador
func GetCronStatus(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
