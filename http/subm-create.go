package http

import (
	"encoding/json"
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/logger"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	type createSubmissionRequest struct {
		Code      string `json:"code"`
		Language  string `json:"language"`
		ProblemID string `json:"problemID"`
		TeamID    string `json:"teamID"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subm, err := httpserver.judgeSrvc.CreateSubmission(r.Context(), &judge.CreateSubmissionParams{
		Code:      request.Code,
		Language:  request.Language,
		ProblemID: request.ProblemID,
		TeamID:    request.TeamID,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubm(*subm))
}
