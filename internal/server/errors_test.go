package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/team-generator/internal/db"
	"github.com/jonathan/team-generator/internal/interpret"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"refusal", &interpret.RefusalError{}, http.StatusUnprocessableEntity},
		{"context exceeded", &interpret.ContextExceededError{}, http.StatusRequestEntityTooLarge},
		{"truncated", &interpret.TruncatedError{}, http.StatusRequestEntityTooLarge},
		{"parse failure", &interpret.ParseError{Message: "bad json"}, http.StatusInternalServerError},
		{"query failure", &db.QueryError{Operation: "team candidates", Cause: errors.New("closed")}, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	// Pipeline errors arrive wrapped; the mapping sees through the chain.
	err := fmt.Errorf("team generation model call failed: %w", &interpret.RefusalError{})
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(err))
}
