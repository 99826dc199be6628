package problem

import (
	"fmt"
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func newErrProblemNotFound(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		fmt.Sprintf("no problem with id %s", id),
	).SetHttpStatusCode(http.StatusNotFound)
}
