package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
)

func (httpserver *HttpServer) listProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := httpserver.problemSrvc.List(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, problems)
}
