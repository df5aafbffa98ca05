package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"fincalc/finmath"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Class string `json:"class"`
}

// renderError maps the error taxonomy to HTTP statuses: shape
// violations are the client's request being malformed (400), domain
// errors are well-formed requests the math rejects (422).
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var invalidErr *finmath.InvalidArgumentError
	var domainErr *finmath.DomainError

	switch {
	case errors.As(err, &invalidErr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: err.Error(), Class: "invalid_argument"})
	case errors.As(err, &domainErr):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ErrorResponse{Error: err.Error(), Class: "domain_error"})
	default:
		zap.S().Named("http").Errorf("unexpected error: %v", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "internal error", Class: "internal"})
	}
}

func renderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg, Class: "invalid_argument"})
}
