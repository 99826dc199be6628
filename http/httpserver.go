package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/codearena/backend/auth"
	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/logger"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/reconcile"
	"github.com/codearena/backend/team"
)

type HttpServer struct {
	judgeSrvc   *judge.JudgeSrvc
	problemSrvc *problem.ProblemSrvc
	teamSrvc    *team.TeamSrvc
	syncSrvc    *reconcile.SyncSrvc

	router *chi.Mux
	jwtKey []byte
}

func NewHttpServer(
	judgeSrvc *judge.JudgeSrvc,
	problemSrvc *problem.ProblemSrvc,
	teamSrvc *team.TeamSrvc,
	syncSrvc *reconcile.SyncSrvc,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	requestLogger := httplog.NewLogger("codearena", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(requestLogger))

	// handlers pull their logger from the request context so every
	// line carries the request id
	router.Use(func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3000,
	})

	router.Use(corsMiddleware.Handler)

	server := &HttpServer{
		judgeSrvc:   judgeSrvc,
		problemSrvc: problemSrvc,
		teamSrvc:    teamSrvc,
		syncSrvc:    syncSrvc,
		router:      router,
		jwtKey:      jwtKey,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// ServeHTTP makes the server usable directly in tests.
func (httpserver *HttpServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpserver.router.ServeHTTP(w, r)
}

func (httpserver *HttpServer) routes() {
	httpserver.router.Post("/submissions", httpserver.createSubmission)
	httpserver.router.Get("/submissions", httpserver.listSubmissions)
	httpserver.router.Get("/submissions/{submId}", httpserver.getSubmission)
	httpserver.router.Put("/submissions/callback", httpserver.judgeCallback)

	httpserver.router.Get("/problems", httpserver.listProblems)
	httpserver.router.Get("/problems/{problemId}", httpserver.getProblem)

	httpserver.router.Get("/teams/leaderboard", httpserver.leaderboard)

	httpserver.router.Group(func(r chi.Router) {
		r.Use(auth.GetJwtAuthMiddleware(httpserver.jwtKey))
		r.Use(requireAdmin)
		r.Post("/sync/problems", httpserver.syncProblems)
		r.Post("/sync/participants", httpserver.syncParticipants)
	})
}
