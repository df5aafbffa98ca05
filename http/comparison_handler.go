package http

import (
	"net/http"

	"github.com/go-chi/render"

	"fincalc/domain"
	"fincalc/service"
)

type ComparisonHandler struct {
	service *service.ComparisonService
}

func NewComparisonHandler(service *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

func (h *ComparisonHandler) CompareRates(w http.ResponseWriter, r *http.Request) {
	var input domain.RateComparisonInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	result, err := h.service.CompareRates(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("rate_comparison")
	render.JSON(w, r, result)
}
