package reconcile

import (
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeSeederUnavailable = "seeder_unavailable"

func newErrSeederUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSeederUnavailable,
		"cannot connect to seeder",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}

const ErrCodeRegistrationUnavailable = "registration_unavailable"

func newErrRegistrationUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRegistrationUnavailable,
		"cannot connect to registration source",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}
