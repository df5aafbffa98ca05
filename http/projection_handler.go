package http

import (
	"net/http"

	"github.com/go-chi/render"

	"fincalc/domain"
	"fincalc/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

func (h *ProjectionHandler) Growth(w http.ResponseWriter, r *http.Request) {
	var input domain.GrowthProjectionInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		renderBadRequest(w, r, err.Error())
		return
	}

	result, err := h.service.Growth(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("growth_projection")
	render.JSON(w, r, result)
}

func (h *ProjectionHandler) CompoundingSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.CompoundingScheduleInput
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		renderBadRequest(w, r, "invalid request body")
		return
	}

	result, err := h.service.CompoundingSchedule(r.Context(), input)
	if err != nil {
		renderError(w, r, err)
		return
	}

	observeCalculation("compounding_schedule")
	render.JSON(w, r, result)
}
