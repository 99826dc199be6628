package team

import (
	"fmt"
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeTeamNotFound = "team_not_found"

func newErrTeamNotFound(id string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		fmt.Sprintf("no team with id %s", id),
	).SetHttpStatusCode(http.StatusNotFound)
}
