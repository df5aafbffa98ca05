package http

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"fincalc/domain"
	"fincalc/service"
)

var validate = validator.New()

type CalculatorHandler struct {
	service *service.CalculatorService
}

func NewCalculatorHandler(service *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

func (h *CalculatorHandler) PresentValue(w http.ResponseWriter, r *http.Request) {
	var input domain.PresentValueInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	result, err := h.service.PresentValue(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("present_value")
	render.JSON(w, r, result)
}

func (h *CalculatorHandler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var input domain.FutureValueInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	result, err := h.service.FutureValue(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("future_value")
	render.JSON(w, r, result)
}

func (h *CalculatorHandler) EffectiveRate(w http.ResponseWriter, r *http.Request) {
	var input domain.EffectiveRateInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	result, err := h.service.EffectiveRate(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("effective_rate")
	render.JSON(w, r, result)
}
