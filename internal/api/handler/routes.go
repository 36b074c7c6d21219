package handler

import (
	"net/http"

	"github.com/vfg2006/consultorpro-api/internal/api/handler/router"
	"github.com/vfg2006/consultorpro-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultorpro-api/internal/usecases/consulting"
	"github.com/vfg2006/consultorpro-api/internal/usecases/diagnosing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/planning"
	"github.com/vfg2006/consultorpro-api/internal/usecases/scoring"
	"github.com/vfg2006/consultorpro-api/internal/usecases/summarizing"
	"github.com/vfg2006/consultorpro-api/internal/usecases/tracking"
	"github.com/vfg2006/consultorpro-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

var (
	readers = middlewares{middleware.AllRoles()}
	editors = middlewares{middleware.Editors()}
	admins  = middlewares{middleware.AdminOnly()}
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: readers,
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: admins,
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: admins,
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: admins,
		},
	}
}

func Consultancies(service consulting.Consultant) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultancies",
			Method:      http.MethodGet,
			Handler:     ListConsultancies(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies",
			Method:      http.MethodPost,
			Handler:     CreateConsultancy(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/consultancies/:id",
			Method:      http.MethodGet,
			Handler:     GetConsultancy(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateConsultancy(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/consultancies/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteConsultancy(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/consultancies/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/timeline",
			Method:      http.MethodGet,
			Handler:     GetTimeline(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/months/:month/overview",
			Method:      http.MethodGet,
			Handler:     GetMonthOverview(service),
			Middlewares: readers,
		},
	}
}

func Performance(service scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance",
			Method:      http.MethodPost,
			Handler:     RegisterPerformance(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/performance",
			Method:      http.MethodGet,
			Handler:     ListPerformances(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/performance/score",
			Method:      http.MethodPost,
			Handler:     EvaluatePerformance(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/performance/ranking",
			Method:      http.MethodGet,
			Handler:     GetRanking(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/performance/ranking",
			Method:      http.MethodPost,
			Handler:     BuildRanking(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/performance/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePerformance(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/clients/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetClientHistory(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/clients/:id/performance/:month",
			Method:      http.MethodGet,
			Handler:     GetClientPerformance(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/clients/:id/ranking/:month",
			Method:      http.MethodGet,
			Handler:     GetClientRanking(service),
			Middlewares: readers,
		},
	}
}

func Goals(service tracking.GoalTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultancies/:id/goals",
			Method:      http.MethodGet,
			Handler:     ListGoals(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/goals",
			Method:      http.MethodPost,
			Handler:     CreateGoal(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodGet,
			Handler:     GetGoal(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodPut,
			Handler:     UpdateGoal(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteGoal(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/goals/:id/current-value",
			Method:      http.MethodPut,
			Handler:     UpdateGoalCurrentValue(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/goals/:id/status",
			Method:      http.MethodPut,
			Handler:     SetGoalStatus(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/at-risk-goals",
			Method:      http.MethodGet,
			Handler:     ListAtRiskGoals(service),
			Middlewares: readers,
		},
	}
}

func Actions(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultancies/:id/actions",
			Method:      http.MethodGet,
			Handler:     ListActions(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/actions",
			Method:      http.MethodPost,
			Handler:     CreateAction(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/consultancies/:id/matrix",
			Method:      http.MethodGet,
			Handler:     GetActionMatrix(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/actions/:id",
			Method:      http.MethodGet,
			Handler:     GetAction(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/actions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAction(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/actions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAction(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/actions/:id/move",
			Method:      http.MethodPost,
			Handler:     MoveAction(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/actions/:id/status",
			Method:      http.MethodPut,
			Handler:     SetActionStatus(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/quadrant",
			Method:      http.MethodGet,
			Handler:     ClassifyQuadrant(service),
			Middlewares: readers,
		},
	}
}

func Opportunities(service planning.Planner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultancies/:id/opportunities",
			Method:      http.MethodGet,
			Handler:     ListOpportunities(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/opportunities",
			Method:      http.MethodPost,
			Handler:     CreateOpportunity(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/opportunities/:id",
			Method:      http.MethodGet,
			Handler:     GetOpportunity(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/opportunities/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOpportunity(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/opportunities/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOpportunity(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/opportunities/:id/promote",
			Method:      http.MethodPost,
			Handler:     PromoteOpportunity(service),
			Middlewares: editors,
		},
	}
}

func Diagnostics(service diagnosing.Diagnoser) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consultancies/:id/diagnostic",
			Method:      http.MethodGet,
			Handler:     GetDiagnostic(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/diagnostic",
			Method:      http.MethodPut,
			Handler:     SaveDiagnostic(service),
			Middlewares: editors,
		},
		{
			Path:        "/v1/consultancies/:id/diagnostic/summary",
			Method:      http.MethodGet,
			Handler:     GetDiagnosticSummary(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/diagnostic/actions",
			Method:      http.MethodGet,
			Handler:     ListDiagnosticActions(service),
			Middlewares: readers,
		},
		{
			Path:        "/v1/consultancies/:id/diagnostic/actions",
			Method:      http.MethodPost,
			Handler:     CreateActionFromFinding(service),
			Middlewares: editors,
		},
	}
}

func Meetings(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meetings/summary",
			Method:      http.MethodPost,
			Handler:     SummarizeMeeting(service),
			Middlewares: editors,
		},
	}
}

func Cron(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: admins,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: admins,
		},
	}
}
