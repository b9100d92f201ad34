// Package handler contains the HTTP handlers exposing the measurement engine.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/luwang-go/internal/application/dto"
	"github.com/hapkiduki/luwang-go/internal/application/port"
	"github.com/hapkiduki/luwang-go/internal/application/service"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/interfaces/http/middleware"
)

// MeasurementHandler serves area calculation, validation and conversion.
type MeasurementHandler struct {
	svc *service.MeasurementService
	log port.Logger
	now func() time.Time
}

// NewMeasurementHandler creates a new MeasurementHandler.
//
// Parameters:
//   - svc: the measurement service
//   - log: logger for request failures
//
// Returns:
//   - *MeasurementHandler: the handler
func NewMeasurementHandler(svc *service.MeasurementService, log port.Logger) *MeasurementHandler {
	return &MeasurementHandler{svc: svc, log: log, now: time.Now}
}

// Routes returns the measurement routes, to be mounted under /api/v1/measurements.
func (h *MeasurementHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/area", h.CalculateArea)
	r.Post("/validate", h.Validate)
	r.Get("/convert", h.Convert)
	r.Get("/shapes", h.Shapes)
	return r
}

// CalculateArea handles POST /area.
// Responds 400 for malformed requests, 422 when a field fails validation,
// and 200 otherwise, including incomplete input and impossible triangles.
func (h *MeasurementHandler) CalculateArea(w http.ResponseWriter, r *http.Request) {
	var req dto.AreaRequest
	if err := render.Bind(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shape, err := req.ToShape()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	out := h.svc.Calculate(r.Context(), shape)
	if !out.Calculated {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, withMeta(h, r, dto.NewValidationErrorResponse[any](dto.ValidationErrorsFrom(shape, out.Outcomes))))
		return
	}

	render.JSON(w, r, withMeta(h, r, dto.NewSuccessResponse(dto.NewAreaResponse(out, h.svc.LuwangAreaSqm()))))
}

// Validate handles POST /validate. It always responds 200 with every
// field's verdict; malformed requests get 400.
func (h *MeasurementHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.AreaRequest
	if err := render.Bind(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shape, err := req.ToShape()
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	render.JSON(w, r, withMeta(h, r, dto.NewSuccessResponse(dto.NewValidationResponse(measurement.ValidateShape(shape)))))
}

// Convert handles GET /convert?buhol=N.
func (h *MeasurementHandler) Convert(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("buhol")
	if raw == "" {
		h.badRequest(w, r, errors.New("query parameter buhol is required"))
		return
	}

	buhol, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		h.badRequest(w, r, errors.New("query parameter buhol must be a number"))
		return
	}

	conv, err := h.svc.Convert(buhol)
	if err != nil {
		var fe *measurement.FieldError
		if errors.As(err, &fe) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, withMeta(h, r, dto.NewValidationErrorResponse[any]([]dto.ValidationError{
				{Field: "buhol", Message: fe.Message, Value: raw},
			})))
			return
		}
		h.badRequest(w, r, err)
		return
	}

	render.JSON(w, r, withMeta(h, r, dto.NewSuccessResponse(dto.NewConversionResponse(conv))))
}

// Shapes handles GET /shapes.
func (h *MeasurementHandler) Shapes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dto.NewSuccessResponse(dto.ShapeCatalogue()))
}

func (h *MeasurementHandler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithContext(r.Context()).Debug("Rejected measurement request", "path", r.URL.Path, "error", err)
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, withMeta(h, r, dto.NewErrorResponse[any](dto.CodeBadRequest, err.Error())))
}

// withMeta stamps a response with the request ID and the handler clock.
func withMeta[T any](h *MeasurementHandler, r *http.Request, resp dto.APIResponse[T]) dto.APIResponse[T] {
	return resp.WithMeta(middleware.GetRequestID(r.Context()), h.now())
}
