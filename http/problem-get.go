package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
	"github.com/go-chi/chi/v5"
)

func (httpserver *HttpServer) getProblem(w http.ResponseWriter, r *http.Request) {
	problemId := chi.URLParam(r, "problemId")

	prob, err := httpserver.problemSrvc.Get(r.Context(), problemId)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, prob)
}
