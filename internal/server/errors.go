// Package server provides the HTTP REST API for the outreach tracker.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/outreach-tracker/internal/schedule"
	"github.com/jonathan/outreach-tracker/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		unknownCompany *store.ErrUnknownCompany
		unknownMethod  *store.ErrUnknownMethod
		malformedDate  *store.ErrMalformedDate
		badReorder     *store.ErrBadReorder
		badPeriodicity *schedule.ErrInvalidPeriodicity
		fieldErrors    validator.ValidationErrors
	)

	switch {
	case errors.As(err, &unknownCompany), errors.As(err, &unknownMethod):
		return http.StatusNotFound
	case errors.As(err, &malformedDate), errors.As(err, &badReorder),
		errors.As(err, &badPeriodicity), errors.As(err, &fieldErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
