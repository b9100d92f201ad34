package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/hapkiduki/luwang-go/internal/application/dto"
)

// Health returns the health check handler.
//
// Parameters:
//   - version: build version reported to callers
//   - started: process start time, for uptime
//   - luwangAreaSqm: the LuWang ratio in effect
//
// Returns:
//   - http.HandlerFunc: the handler
func Health(version string, started time.Time, luwangAreaSqm float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, dto.HealthResponse{
			Status:        "healthy",
			Version:       version,
			Uptime:        time.Since(started).Round(time.Second).String(),
			LuwangAreaSqm: luwangAreaSqm,
		})
	}
}

// NotFound handles 404 responses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, dto.NewErrorResponse[any](dto.CodeNotFound, "The requested resource was not found"))
}

// MethodNotAllowed handles 405 responses.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, dto.NewErrorResponse[any](dto.CodeMethodNotAllowed, "The requested method is not allowed for this resource"))
}
