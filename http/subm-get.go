package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (httpserver *HttpServer) getSubmission(w http.ResponseWriter, r *http.Request) {
	submId, err := uuid.Parse(chi.URLParam(r, "submId"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subm, err := httpserver.judgeSrvc.GetSubm(r.Context(), submId)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*subm))
}
