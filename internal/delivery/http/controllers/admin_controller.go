package controllers

import (
	"log/slog"
	"net/http"

	"richmondtech/internal/delivery/http/helpers"
	"richmondtech/internal/domain"
	"richmondtech/internal/metric"
)

// SeedResponse is the response body for POST /admin/seed.
type SeedResponse struct {
	ItemsWritten int `json:"items_written"`
}

// SeedSuccessResponse is the success response envelope for POST /admin/seed (200).
type SeedSuccessResponse struct {
	Data  SeedResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AdminController struct {
	Logger *slog.Logger
	Seeder domain.Seeder
}

func NewAdminController(logger *slog.Logger, seeder domain.Seeder) *AdminController {
	return &AdminController{Logger: logger, Seeder: seeder}
}

// Seed godoc
// @Summary Reseed the demo dataset
// @Description Writes the fixed demo dataset. Safe to run repeatedly; records are keyed by fixed IDs.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SeedSuccessResponse "data contains the number of items written"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: store_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/seed [post]
func (c *AdminController) Seed(w http.ResponseWriter, r *http.Request) {
	metric.SeedRuns.Inc()
	written, err := c.Seeder.Seed(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "seed failed", "written", written, "err", err)
		status, code := helpers.StatusFromError(err)
		helpers.WriteJSONError(w, status, code, "seeding failed")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SeedResponse{ItemsWritten: written})
}
