package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/codearena/backend/http"
	"github.com/codearena/backend/judge"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/reconcile"
	"github.com/codearena/backend/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test")

// setupHttpServer wires the whole stack against httptest upstreams.
// engineURL serves the execution engine; seederURL and registrationURL
// back the reconciliation endpoints.
func setupHttpServer(t *testing.T, engineURL, seederURL, registrationURL string) *http.HttpServer {
	t.Helper()
	ctx := context.Background()

	problemSrvc := problem.NewProblemSrvc(problem.NewInMemRepo())
	err := problemSrvc.ReplaceAll(ctx, []problem.Problem{{
		ID:         "p1",
		Name:       "A plus B",
		MaxPoints:  100,
		InputText:  "1 2",
		OutputText: "3",
		Multiplier: 1,
	}})
	require.NoError(t, err)

	teamRepo := team.NewInMemTeamRepo()
	teamSrvc := team.NewTeamSrvc(teamRepo, team.NewInMemParticipantRepo())
	err = teamRepo.ReplaceAll(ctx, []team.Team{{ID: "t1", Name: "t1", Points: 10}})
	require.NoError(t, err)

	judgeSrvc, err := judge.NewJudgeSrvc(
		judge.NewInMemRepo(),
		judge.NewExecHttpClient(engineURL),
		problemSrvc, teamSrvc,
		"http://backend.local/submissions/callback")
	require.NoError(t, err)

	syncSrvc := reconcile.NewSyncSrvc(
		reconcile.NewFetcher(4), problemSrvc, teamSrvc, judgeSrvc,
		seederURL, registrationURL, "")

	return http.NewHttpServer(judgeSrvc, problemSrvc, teamSrvc, syncSrvc, testJwtKey)
}

// newEngineServer fakes the execution engine's submission endpoint.
func newEngineServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, nethttp.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
}

func newJsonReq(method, path string, body any) *nethttp.Request {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doReq(handler nethttp.Handler, req *nethttp.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, nethttp.StatusOK, w.Code, "expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status)
	assert.Equal(t, expectedCode, errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)
}
