package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
)

func (httpserver *HttpServer) syncProblems(w http.ResponseWriter, r *http.Request) {
	report, err := httpserver.syncSrvc.SyncProblems(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, report)
}

func (httpserver *HttpServer) syncParticipants(w http.ResponseWriter, r *http.Request) {
	report, err := httpserver.syncSrvc.SyncParticipants(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, report)
}
