package httpapi

import (
	"net/http"

	"github.com/riskibarqy/school-tournament/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerTournamentRoutes(mux, handler)
	registerCompetitionRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournament", handler.GetTournament)
	mux.HandleFunc("PUT /v1/tournament/active-competition", handler.SetActiveCompetition)
	mux.HandleFunc("PUT /v1/tournament/schools", handler.ApplySchools)
	mux.HandleFunc("POST /v1/tournament/regenerate", handler.Regenerate)
	mux.HandleFunc("POST /v1/tournament/reset", handler.Reset)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competition}/schedule", handler.GetSchedule)
	mux.HandleFunc("PUT /v1/competitions/{competition}/matches/{matchID}/score", handler.RecordScore)
	mux.HandleFunc("DELETE /v1/competitions/{competition}/matches/{matchID}/score", handler.ClearScore)
	mux.HandleFunc("GET /v1/competitions/{competition}/standings", handler.GetStandings)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
