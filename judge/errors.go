package judge

import (
	"fmt"
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeUnsupportedLanguage = "unsupported_language"

func newErrUnsupportedLanguage(identifier string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnsupportedLanguage,
		fmt.Sprintf("code language %s is not accepted", identifier),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeProblemNotFound = "problem_not_found"

func newErrProblemNotFound(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		fmt.Sprintf("no problem with id %s", id),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTeamNotFound = "team_not_found"

func newErrTeamNotFound(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		fmt.Sprintf("no team with id %s", id),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeDispatchFailed = "dispatch_failed"

func newErrDispatchFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDispatchFailed,
		"execution engine did not accept the submission, try again later",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}

const ErrCodeUnknownToken = "unknown_token"

func newErrUnknownToken(token string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownToken,
		fmt.Sprintf("no submission with token %s", token),
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidStatusCode = "invalid_status_code"

func newErrInvalidStatusCode(id int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStatusCode,
		fmt.Sprintf("status id %d is outside the verdict table", id),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeVerdictAlreadyRecorded = "verdict_already_recorded"

func newErrVerdictAlreadyRecorded(token string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeVerdictAlreadyRecorded,
		fmt.Sprintf("submission with token %s already has a final verdict", token),
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		fmt.Sprintf("no submission with id %s", id),
	).SetHttpStatusCode(http.StatusNotFound)
}
