package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
)

func (httpserver *HttpServer) leaderboard(w http.ResponseWriter, r *http.Request) {
	teams, err := httpserver.teamSrvc.Leaderboard(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapLeaderboard(teams))
}
