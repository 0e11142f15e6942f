package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/team-generator/internal/db"
	"github.com/jonathan/team-generator/internal/interpret"
)

// HTTPStatus maps a pipeline failure to the HTTP status class the caller
// should see. Upstream refusal and capacity problems are client errors; a
// truncated answer asks the caller for a smaller request; unparseable model
// output and database failures are server faults.
func HTTPStatus(err error) int {
	var (
		refusal   *interpret.RefusalError
		context   *interpret.ContextExceededError
		truncated *interpret.TruncatedError
		parse     *interpret.ParseError
		query     *db.QueryError
	)
	switch {
	case errors.As(err, &refusal):
		return http.StatusUnprocessableEntity
	case errors.As(err, &context):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &truncated):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &parse):
		return http.StatusInternalServerError
	case errors.As(err, &query):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
