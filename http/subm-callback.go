package http

import (
	"encoding/json"
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/logger"
)

// judgeCallback receives the asynchronous verdict from the execution
// engine, correlated by token.
func (httpserver *HttpServer) judgeCallback(w http.ResponseWriter, r *http.Request) {
	type callbackRequest struct {
		Status struct {
			ID int `json:"id"`
		} `json:"status"`
		Stdout string `json:"stdout"`
		Token  string `json:"token"`
	}

	var request callbackRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	_, err := httpserver.judgeSrvc.HandleCallback(
		r.Context(), request.Token, request.Status.ID, request.Stdout)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]bool{"updated": true})
}
