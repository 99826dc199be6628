package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
)

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	subms, err := httpserver.judgeSrvc.ListSubms(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := make([]submissionResponse, 0, len(subms))
	for _, subm := range subms {
		response = append(response, mapSubm(subm))
	}

	httpjson.WriteSuccessJson(w, response)
}
